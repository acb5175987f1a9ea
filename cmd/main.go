package main

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shuldan/ioc/pkg/beans"
	"github.com/shuldan/ioc/pkg/cache"
	"github.com/shuldan/ioc/pkg/config"
	"github.com/shuldan/ioc/pkg/contracts"
	"github.com/shuldan/ioc/pkg/logger"
	"github.com/shuldan/ioc/pkg/store"
)

var (
	configType    = reflect.TypeOf((*contracts.Config)(nil)).Elem()
	loggerType    = reflect.TypeOf((*contracts.Logger)(nil)).Elem()
	storeType     = reflect.TypeOf((*contracts.Store)(nil)).Elem()
	cacheType     = reflect.TypeOf((*contracts.Cache)(nil)).Elem()
	inventoryType = reflect.TypeOf(&inventoryService{})
)

// inventoryService is the demo component: constructor injection for the
// logger and store, setter injection for the default cache, field
// injection for the short-lived cache registered under its own qualifier.
type inventoryService struct {
	logger   contracts.Logger
	store    contracts.Store
	cache    contracts.Cache
	hotCache contracts.Cache
}

func newInventoryService(l contracts.Logger, s contracts.Store) *inventoryService {
	return &inventoryService{logger: l, store: s}
}

func (s *inventoryService) SetCache(c contracts.Cache) {
	s.cache = c
}

func (s *inventoryService) AddItem(ctx context.Context, name string) (store.UUID, error) {
	db, err := s.store.DB()
	if err != nil {
		return store.UUID{}, err
	}

	id := store.NewUUID()
	if _, err := db.ExecContext(ctx,
		"INSERT INTO items (id, name) VALUES (?, ?)", id.String(), name); err != nil {
		return store.UUID{}, err
	}

	if err := s.cache.Set(ctx, "item:"+id.String(), name, 10*time.Minute); err != nil {
		s.logger.Warn("cache write failed", "id", id.String(), "error", err)
	}
	if err := s.hotCache.Set(ctx, "latest-item", name, time.Minute); err != nil {
		s.logger.Warn("hot cache write failed", "error", err)
	}

	s.logger.Info("item added", "id", id.String(), "name", name)
	return id, nil
}

func buildCatalog(cfg contracts.Config, l contracts.Logger) (*beans.Catalog, error) {
	catalog := beans.NewCatalog()

	additions := []struct {
		def beans.Definition
		bp  beans.Blueprint
	}{
		{
			def: beans.Definition{Type: configType, Singleton: true},
			bp: beans.Blueprint{
				Type: configType,
				Constructors: []beans.Constructor{{
					New: func(args []any) (any, error) { return cfg, nil },
				}},
			},
		},
		{
			def: beans.Definition{Type: loggerType, Singleton: true},
			bp: beans.Blueprint{
				Type: loggerType,
				Constructors: []beans.Constructor{{
					New: func(args []any) (any, error) { return l, nil },
				}},
			},
		},
		{
			def: beans.Definition{Type: storeType, Singleton: true},
			bp: beans.Blueprint{
				Type: storeType,
				Constructors: []beans.Constructor{{
					Inject: true,
					Params: []beans.Dependency{{Type: configType}},
					New: func(args []any) (any, error) {
						s := store.FromConfig(args[0].(contracts.Config))
						if err := s.Connect(); err != nil {
							return nil, err
						}
						return s, nil
					},
				}},
			},
		},
		{
			def: beans.Definition{Type: cacheType, Singleton: true},
			bp: beans.Blueprint{
				Type: cacheType,
				Constructors: []beans.Constructor{{
					Inject: true,
					Params: []beans.Dependency{{Type: configType}},
					New: func(args []any) (any, error) {
						return cache.FromConfig(args[0].(contracts.Config))
					},
				}},
			},
		},
		{
			// A second cache under its own qualifier for short-lived entries.
			def: beans.Definition{Type: cacheType, Singleton: true, Qualifier: "hot"},
			bp: beans.Blueprint{
				Type: cacheType,
				Constructors: []beans.Constructor{{
					Inject: true,
					Params: []beans.Dependency{{Type: configType}},
					New: func(args []any) (any, error) {
						return cache.NewMemory(), nil
					},
				}},
			},
		},
		{
			def: beans.Definition{Type: inventoryType, Singleton: true},
			bp: beans.Blueprint{
				Type: inventoryType,
				Constructors: []beans.Constructor{{
					Inject: true,
					Params: []beans.Dependency{
						{Type: loggerType},
						{Type: storeType},
					},
					New: func(args []any) (any, error) {
						return newInventoryService(
							args[0].(contracts.Logger),
							args[1].(contracts.Store),
						), nil
					},
				}},
				Fields: []beans.Field{{
					Name:   "hotCache",
					Inject: true,
					Dep:    beans.Dependency{Type: cacheType, Qualifier: "hot"},
					Assign: func(target, value any) error {
						target.(*inventoryService).hotCache = value.(contracts.Cache)
						return nil
					},
				}},
				Setters: []beans.Setter{{
					Name:   "SetCache",
					Inject: true,
					Params: []beans.Dependency{{Type: cacheType}},
					Call: func(target any, args []any) error {
						target.(*inventoryService).SetCache(args[0].(contracts.Cache))
						return nil
					},
				}},
			},
		},
	}

	for _, a := range additions {
		if err := catalog.Add(a.def, a.bp); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func run() error {
	cfg, err := config.Load(config.NewChainLoader(
		config.NewYamlLoader("config.yaml", "config.yml"),
		config.NewEnvLoader("IOC_"),
	))
	if err != nil {
		cfg = config.NewMapConfig(map[string]any{})
	}

	l := logger.New(logger.WithColor())

	catalog, err := buildCatalog(cfg, l)
	if err != nil {
		return err
	}

	appCtx := beans.NewApplicationContext(catalog, beans.WithLogger(l))
	if err := appCtx.Refresh(); err != nil {
		return err
	}

	bean, err := appCtx.GetBean(storeType)
	if err != nil {
		return err
	}
	db, err := bean.(contracts.Store).DB()
	if err != nil {
		return err
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS items (id TEXT PRIMARY KEY, name TEXT)"); err != nil {
		return err
	}

	bean, err = appCtx.GetBean(inventoryType)
	if err != nil {
		return err
	}
	inventory := bean.(*inventoryService)

	ctx := context.Background()
	for _, name := range []string{"bolt", "washer", "nut"} {
		id, err := inventory.AddItem(ctx, name)
		if err != nil {
			return err
		}
		fmt.Printf("added %s as %s\n", name, id.String())
	}

	qualifiers, err := appCtx.Registry().Qualifiers(cacheType)
	if err != nil {
		return err
	}
	l.Info("caches registered", "qualifiers", qualifiers)

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
