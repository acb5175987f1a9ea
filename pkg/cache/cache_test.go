package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shuldan/ioc/pkg/config"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "greeting", "hello", 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := c.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "hello" {
		t.Errorf("Expected hello, got %q", value)
	}

	if err := c.Delete(ctx, "greeting"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, "greeting"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	c := NewMemory()

	if _, err := c.Get(context.Background(), "absent"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "flash", "gone", time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "flash"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss after expiry, got %v", err)
	}
}

func TestFromConfig_Memory(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"cache": map[string]any{"driver": "memory"},
	})

	c, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if err := c.Set(context.Background(), "k", "v", 0); err != nil {
		t.Errorf("Set failed: %v", err)
	}
}

func TestFromConfig_DefaultsToMemory(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{})

	c, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if c == nil {
		t.Fatal("Expected a cache instance")
	}
}

func TestFromConfig_UnsupportedDriver(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"cache": map[string]any{"driver": "memcached"},
	})

	if _, err := FromConfig(cfg); !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("Expected ErrUnsupportedDriver, got %v", err)
	}
}
