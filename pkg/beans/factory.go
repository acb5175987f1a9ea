package beans

import (
	"reflect"
	"strings"

	"github.com/shuldan/ioc/pkg/errors"
)

// Factory builds fully wired component instances from their definitions.
type Factory interface {
	CreateBean(def Definition) (any, error)
}

type beanFactory struct {
	registry Registry
	catalog  *Catalog
}

func NewFactory(registry Registry, catalog *Catalog) Factory {
	return &beanFactory{
		registry: registry,
		catalog:  catalog,
	}
}

func (f *beanFactory) CreateBean(def Definition) (any, error) {
	return f.createBean(def, make(map[reflect.Type]bool))
}

// createBean carries the in-flight set of one root construction request
// down the recursive calls. The set belongs to this call chain only, so
// unrelated concurrent constructions cannot poison each other's cycle
// detection.
func (f *beanFactory) createBean(def Definition, building map[reflect.Type]bool) (any, error) {
	if def.Type == nil {
		return nil, ErrInvalidArgument.WithDetail("reason", "definition type must be non-nil")
	}

	qualifier := def.qualifierOrDefault()
	if def.Singleton {
		exists, err := f.registry.ContainsNamed(def.Type, qualifier)
		if err != nil {
			return nil, err
		}
		if exists {
			return f.registry.ResolveNamed(def.Type, qualifier)
		}
	}

	if building[def.Type] {
		return nil, ErrCyclicDependency.WithDetail("type", def.Type.String())
	}
	building[def.Type] = true
	defer delete(building, def.Type)

	bp, ok := f.catalog.Blueprint(def.Type, qualifier)
	if !ok {
		return nil, wrapCreation(def.Type, ErrNoBlueprint.WithDetail("type", def.Type.String()))
	}

	instance, err := f.instantiate(bp, building)
	if err != nil {
		return nil, wrapCreation(def.Type, err)
	}

	// Structural defects in injection targets abort construction before
	// the instance can be registered or partially injected.
	if err := validateInjectionTargets(bp); err != nil {
		return nil, wrapCreation(def.Type, err)
	}

	// Singletons are registered before field and setter injection so that
	// a cycle broken by field injection can resolve this instance from
	// the registry.
	if def.Singleton {
		if err := f.registry.RegisterNamed(def.Type, qualifier, instance); err != nil {
			return nil, wrapCreation(def.Type, err)
		}
	}

	if err := f.injectFields(bp, instance, building); err != nil {
		if def.Singleton {
			_ = f.registry.DeregisterNamed(def.Type, qualifier)
		}
		return nil, wrapCreation(def.Type, err)
	}
	if err := f.injectSetters(bp, instance, building); err != nil {
		if def.Singleton {
			_ = f.registry.DeregisterNamed(def.Type, qualifier)
		}
		return nil, wrapCreation(def.Type, err)
	}

	return instance, nil
}

func (f *beanFactory) instantiate(bp Blueprint, building map[reflect.Type]bool) (any, error) {
	ctor, err := selectConstructor(bp)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(ctor.Params))
	for i, param := range ctor.Params {
		dep, err := f.resolveDependency(param, building)
		if err != nil {
			return nil, err
		}
		args[i] = dep
	}

	return ctor.New(args)
}

// selectConstructor applies the selection policy: exactly one marked
// constructor wins, several marked ones are ambiguous, otherwise a
// zero-argument constructor is required.
func selectConstructor(bp Blueprint) (Constructor, error) {
	var marked []Constructor
	for _, ctor := range bp.Constructors {
		if ctor.Inject {
			marked = append(marked, ctor)
		}
	}

	if len(marked) == 1 {
		return marked[0], nil
	}
	if len(marked) > 1 {
		return Constructor{}, ErrAmbiguousConstructor.WithDetail("type", bp.Type.String())
	}

	for _, ctor := range bp.Constructors {
		if len(ctor.Params) == 0 {
			return ctor, nil
		}
	}
	return Constructor{}, ErrNoViableConstructor.WithDetail("type", bp.Type.String())
}

// resolveDependency consults the registry first, falls back to
// constructing the dependency from its own definition, and otherwise
// surfaces the registry's not-found failure untouched.
func (f *beanFactory) resolveDependency(dep Dependency, building map[reflect.Type]bool) (any, error) {
	if dep.Type == nil {
		return nil, ErrInvalidArgument.WithDetail("reason", "dependency type must be non-nil")
	}

	qualifier := dep.qualifierOrDefault()
	exists, err := f.registry.ContainsNamed(dep.Type, qualifier)
	if err != nil {
		return nil, err
	}
	if exists {
		return f.registry.ResolveNamed(dep.Type, qualifier)
	}

	if def, ok := f.catalog.Definition(dep.Type, qualifier); ok {
		return f.createBean(def, building)
	}

	return f.registry.ResolveNamed(dep.Type, qualifier)
}

func validateInjectionTargets(bp Blueprint) error {
	for _, field := range bp.Fields {
		if !field.Inject {
			continue
		}
		if field.Static {
			return ErrInvalidTarget.
				WithDetail("field", field.Name).
				WithDetail("type", bp.Type.String()).
				WithDetail("reason", "static fields cannot be injected")
		}
		if field.ReadOnly {
			return ErrInvalidTarget.
				WithDetail("field", field.Name).
				WithDetail("type", bp.Type.String()).
				WithDetail("reason", "read-only fields cannot be injected")
		}
	}
	return nil
}

func (f *beanFactory) injectFields(bp Blueprint, instance any, building map[reflect.Type]bool) error {
	for _, field := range bp.Fields {
		if !field.Inject {
			continue
		}
		value, err := f.resolveDependency(field.Dep, building)
		if err != nil {
			return err
		}
		if err := field.Assign(instance, value); err != nil {
			return err
		}
	}
	return nil
}

func (f *beanFactory) injectSetters(bp Blueprint, instance any, building map[reflect.Type]bool) error {
	for _, setter := range bp.Setters {
		if !isInjectableSetter(setter) {
			continue
		}
		value, err := f.resolveDependency(setter.Params[0], building)
		if err != nil {
			return err
		}
		if err := setter.Call(instance, []any{value}); err != nil {
			return err
		}
	}
	return nil
}

// A marked method that does not conform to the setter shape is skipped,
// not rejected.
func isInjectableSetter(setter Setter) bool {
	if !setter.Inject {
		return false
	}
	if !strings.HasPrefix(setter.Name, "Set") || len(setter.Params) != 1 {
		return false
	}
	if setter.Static {
		return false
	}
	return true
}

// wrapCreation adds the offending type and root cause once per
// construction. Not-found failures pass through unchanged, and an already
// wrapped failure from a nested construction is not wrapped again.
func wrapCreation(t reflect.Type, err error) error {
	if errors.Is(err, ErrBeanNotFound) || errors.Is(err, ErrBeanCreation) {
		return err
	}
	return ErrBeanCreation.
		WithDetail("type", t.String()).
		WithCause(err)
}
