package beans

import (
	"reflect"
	"sync"

	"github.com/shuldan/ioc/pkg/contracts"
)

// ApplicationContext is the container facade: Refresh constructs every
// singleton definition exactly once, lookups delegate to the registry.
type ApplicationContext interface {
	Refresh() error
	GetBean(t reflect.Type) (any, error)
	GetBeanNamed(t reflect.Type, qualifier string) (any, error)
	ContainsBean(t reflect.Type) (bool, error)
	ContainsBeanNamed(t reflect.Type, qualifier string) (bool, error)
	Registry() Registry
}

type applicationContext struct {
	registry  Registry
	factory   Factory
	scanner   Scanner
	logger    contracts.Logger
	mu        sync.Mutex
	refreshed bool
}

type ContextOption func(*applicationContext)

func WithLogger(logger contracts.Logger) ContextOption {
	return func(c *applicationContext) {
		c.logger = logger
	}
}

func NewApplicationContext(catalog *Catalog, opts ...ContextOption) ApplicationContext {
	registry := NewRegistry()
	ctx := &applicationContext{
		registry: registry,
		factory:  NewFactory(registry, catalog),
		scanner:  catalog,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Refresh runs under a mutex so racing callers cannot construct singletons
// twice. On failure the refreshed flag stays unset and singletons built
// before the failing one remain registered; there is no rollback.
func (c *applicationContext) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refreshed {
		return nil
	}

	definitions, err := c.scanner.Scan()
	if err != nil {
		return err
	}

	for _, def := range definitions {
		if !def.Singleton {
			continue
		}
		if _, err := c.factory.CreateBean(def); err != nil {
			if c.logger != nil {
				c.logger.Error("bean construction failed",
					"type", def.Type.String(),
					"qualifier", def.qualifierOrDefault(),
					"error", err)
			}
			return err
		}
		if c.logger != nil {
			c.logger.Debug("bean constructed",
				"type", def.Type.String(),
				"qualifier", def.qualifierOrDefault())
		}
	}

	c.refreshed = true
	if c.logger != nil {
		c.logger.Info("application context refreshed", "definitions", len(definitions))
	}
	return nil
}

func (c *applicationContext) GetBean(t reflect.Type) (any, error) {
	return c.registry.Resolve(t)
}

func (c *applicationContext) GetBeanNamed(t reflect.Type, qualifier string) (any, error) {
	return c.registry.ResolveNamed(t, qualifier)
}

func (c *applicationContext) ContainsBean(t reflect.Type) (bool, error) {
	return c.registry.Contains(t)
}

func (c *applicationContext) ContainsBeanNamed(t reflect.Type, qualifier string) (bool, error) {
	return c.registry.ContainsNamed(t, qualifier)
}

func (c *applicationContext) Registry() Registry {
	return c.registry
}
