package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shuldan/ioc/pkg/contracts"
)

type redisCache struct {
	client redis.UniversalClient
}

var _ contracts.Cache = (*redisCache)(nil)

func NewRedis(client redis.UniversalClient) contracts.Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss.WithDetail("key", key)
	}
	if err != nil {
		return "", ErrReadFailed.
			WithDetail("key", key).
			WithCause(err)
	}
	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return ErrWriteFailed.
			WithDetail("key", key).
			WithCause(err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return ErrWriteFailed.
			WithDetail("key", key).
			WithCause(err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
