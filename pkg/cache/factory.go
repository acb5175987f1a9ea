package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/shuldan/ioc/pkg/contracts"
)

// FromConfig reads the "cache" section of an application config and builds
// the matching implementation: "memory" (the default) or "redis".
func FromConfig(cfg contracts.Config) (contracts.Cache, error) {
	section, ok := cfg.GetSub("cache")
	if !ok {
		return NewMemory(), nil
	}

	driver := section.GetString("driver", "memory")
	switch driver {
	case "memory":
		return NewMemory(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     section.GetString("addr", "localhost:6379"),
			Password: section.GetString("password"),
			DB:       section.GetInt("db", 0),
		})
		return NewRedis(client), nil
	default:
		return nil, ErrUnsupportedDriver.WithDetail("driver", driver)
	}
}
