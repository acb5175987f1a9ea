package beans

import (
	"reflect"
	"sync"
)

// Scanner yields the component definitions discovered for a container.
// Discovery itself (walking a module tree, parsing markers) happens
// outside this package; the factory trusts whatever the scanner returns.
type Scanner interface {
	Scan() ([]Definition, error)
}

// Catalog is the in-process scanner: components are added explicitly with
// their definition and blueprint, and Scan yields definitions in
// registration order. Blueprints are kept per type and qualifier, since
// two qualified registrations of one type may construct differently.
type Catalog struct {
	mu          sync.RWMutex
	blueprints  map[reflect.Type]map[string]Blueprint
	definitions map[reflect.Type]map[string]Definition
	order       []Definition
}

var _ Scanner = (*Catalog)(nil)

func NewCatalog() *Catalog {
	return &Catalog{
		blueprints:  make(map[reflect.Type]map[string]Blueprint),
		definitions: make(map[reflect.Type]map[string]Definition),
	}
}

// Add registers a component. The blueprint's type must match the
// definition's type; a second definition for the same type and qualifier
// is rejected.
func (c *Catalog) Add(def Definition, bp Blueprint) error {
	if def.Type == nil {
		return ErrInvalidArgument.WithDetail("reason", "definition type must be non-nil")
	}
	if bp.Type != def.Type {
		return ErrInvalidArgument.WithDetail("reason", "blueprint type does not match definition type")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	qualifier := def.qualifierOrDefault()
	definitions, ok := c.definitions[def.Type]
	if !ok {
		definitions = make(map[string]Definition)
		c.definitions[def.Type] = definitions
	}
	if _, exists := definitions[qualifier]; exists {
		return ErrDuplicateBlueprint.
			WithDetail("type", def.Type.String()).
			WithDetail("qualifier", qualifier)
	}

	blueprints, ok := c.blueprints[def.Type]
	if !ok {
		blueprints = make(map[string]Blueprint)
		c.blueprints[def.Type] = blueprints
	}

	definitions[qualifier] = def
	blueprints[qualifier] = bp
	c.order = append(c.order, def)
	return nil
}

// Blueprint returns the injection metadata registered for a type and
// qualifier.
func (c *Catalog) Blueprint(t reflect.Type, qualifier string) (Blueprint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bp, ok := c.blueprints[t][qualifier]
	return bp, ok
}

// Definition returns the definition registered for a type and qualifier.
func (c *Catalog) Definition(t reflect.Type, qualifier string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.definitions[t][qualifier]
	return def, ok
}

func (c *Catalog) Scan() ([]Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Definition, len(c.order))
	copy(result, c.order)
	return result, nil
}
