package cache

import "github.com/shuldan/ioc/pkg/errors"

var newCacheCode = errors.WithPrefix("CACHE")

var (
	ErrCacheMiss         = newCacheCode().New("no cache entry for key {{.key}}")
	ErrUnsupportedDriver = newCacheCode().New("unsupported cache driver {{.driver}}")
	ErrReadFailed        = newCacheCode().New("failed to read key {{.key}}")
	ErrWriteFailed       = newCacheCode().New("failed to write key {{.key}}")
)
