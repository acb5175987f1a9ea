package beans

import (
	"reflect"
	"sort"
	"sync"
)

// Registry stores constructed components keyed by exact type identity and
// qualifier. All operations are safe for concurrent use; the unnamed
// variants delegate to the named ones with DefaultQualifier.
type Registry interface {
	Register(t reflect.Type, instance any) error
	RegisterNamed(t reflect.Type, qualifier string, instance any) error
	Resolve(t reflect.Type) (any, error)
	ResolveNamed(t reflect.Type, qualifier string) (any, error)
	Contains(t reflect.Type) (bool, error)
	ContainsNamed(t reflect.Type, qualifier string) (bool, error)
	Qualifiers(t reflect.Type) ([]string, error)
	Deregister(t reflect.Type) error
	DeregisterNamed(t reflect.Type, qualifier string) error
}

type beanRegistry struct {
	mu    sync.RWMutex
	beans map[reflect.Type]map[string]any
}

func NewRegistry() Registry {
	return &beanRegistry{
		beans: make(map[reflect.Type]map[string]any),
	}
}

func (r *beanRegistry) Register(t reflect.Type, instance any) error {
	return r.RegisterNamed(t, DefaultQualifier, instance)
}

func (r *beanRegistry) RegisterNamed(t reflect.Type, qualifier string, instance any) error {
	if t == nil {
		return ErrInvalidArgument.WithDetail("reason", "type must be non-nil")
	}
	if qualifier == "" {
		return ErrInvalidArgument.WithDetail("reason", "qualifier must be non-empty")
	}
	if instance == nil {
		return ErrInvalidArgument.WithDetail("reason", "instance must be non-nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	qualified, ok := r.beans[t]
	if !ok {
		qualified = make(map[string]any)
		r.beans[t] = qualified
	}
	qualified[qualifier] = instance
	return nil
}

func (r *beanRegistry) Resolve(t reflect.Type) (any, error) {
	return r.ResolveNamed(t, DefaultQualifier)
}

func (r *beanRegistry) ResolveNamed(t reflect.Type, qualifier string) (any, error) {
	if t == nil {
		return nil, ErrInvalidArgument.WithDetail("reason", "type must be non-nil")
	}
	if qualifier == "" {
		return nil, ErrInvalidArgument.WithDetail("reason", "qualifier must be non-empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	qualified, ok := r.beans[t]
	if !ok {
		return nil, ErrBeanNotFound.
			WithDetail("type", t.String()).
			WithDetail("qualifier", qualifier).
			WithDetail("reason", "no beans of this type")
	}
	instance, ok := qualified[qualifier]
	if !ok {
		return nil, ErrBeanNotFound.
			WithDetail("type", t.String()).
			WithDetail("qualifier", qualifier).
			WithDetail("reason", "no bean for this qualifier")
	}
	return instance, nil
}

func (r *beanRegistry) Contains(t reflect.Type) (bool, error) {
	return r.ContainsNamed(t, DefaultQualifier)
}

func (r *beanRegistry) ContainsNamed(t reflect.Type, qualifier string) (bool, error) {
	if t == nil {
		return false, ErrInvalidArgument.WithDetail("reason", "type must be non-nil")
	}
	if qualifier == "" {
		return false, ErrInvalidArgument.WithDetail("reason", "qualifier must be non-empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	qualified, ok := r.beans[t]
	if !ok {
		return false, nil
	}
	_, ok = qualified[qualifier]
	return ok, nil
}

func (r *beanRegistry) Qualifiers(t reflect.Type) ([]string, error) {
	if t == nil {
		return nil, ErrInvalidArgument.WithDetail("reason", "type must be non-nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	qualified := r.beans[t]
	result := make([]string, 0, len(qualified))
	for qualifier := range qualified {
		result = append(result, qualifier)
	}
	sort.Strings(result)
	return result, nil
}

func (r *beanRegistry) Deregister(t reflect.Type) error {
	return r.DeregisterNamed(t, DefaultQualifier)
}

func (r *beanRegistry) DeregisterNamed(t reflect.Type, qualifier string) error {
	if t == nil {
		return ErrInvalidArgument.WithDetail("reason", "type must be non-nil")
	}
	if qualifier == "" {
		return ErrInvalidArgument.WithDetail("reason", "qualifier must be non-empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	qualified, ok := r.beans[t]
	if !ok {
		return nil
	}
	delete(qualified, qualifier)
	if len(qualified) == 0 {
		delete(r.beans, t)
	}
	return nil
}
