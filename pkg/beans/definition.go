package beans

import "reflect"

// DefaultQualifier is the reserved name a component is stored under when
// its definition carries no explicit qualifier.
const DefaultQualifier = "__default__"

// Definition is the scanning-time record of a managed component: its
// concrete type, whether a single shared instance is kept in the registry,
// and an optional qualifier. An empty Qualifier means "no explicit
// qualifier" and is normalized to DefaultQualifier at the registry
// boundary.
type Definition struct {
	Type      reflect.Type
	Singleton bool
	Qualifier string
}

func (d Definition) qualifierOrDefault() string {
	if d.Qualifier == "" {
		return DefaultQualifier
	}
	return d.Qualifier
}

// Dependency is a single injection point: the type to resolve and the
// qualifier it was declared with (empty for the default).
type Dependency struct {
	Type      reflect.Type
	Qualifier string
}

func (d Dependency) qualifierOrDefault() string {
	if d.Qualifier == "" {
		return DefaultQualifier
	}
	return d.Qualifier
}

// Constructor describes one way to build a component. Inject marks it as
// the preferred constructor; New receives the resolved Params in order.
type Constructor struct {
	Inject bool
	Params []Dependency
	New    func(args []any) (any, error)
}

// Field describes a declared field of a component. Only fields with
// Inject set are touched by the factory. Static and ReadOnly report
// structural properties of the declaration; Assign writes the resolved
// dependency into the target instance.
type Field struct {
	Name     string
	Inject   bool
	Static   bool
	ReadOnly bool
	Dep      Dependency
	Assign   func(target, value any) error
}

// Setter describes a declared method of a component. A marked method is
// treated as an injectable setter only if it takes exactly one parameter,
// follows the Set naming convention and is not static; anything else is
// skipped.
type Setter struct {
	Name   string
	Inject bool
	Static bool
	Params []Dependency
	Call   func(target any, args []any) error
}

// Blueprint carries the full injection metadata for a component type.
// Components expose this metadata explicitly instead of being introspected
// at runtime, which also makes otherwise inaccessible constructors
// invokable through their New closures.
type Blueprint struct {
	Type         reflect.Type
	Constructors []Constructor
	Fields       []Field
	Setters      []Setter
}
