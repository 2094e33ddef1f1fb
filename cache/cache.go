// Package cache holds read-through caches that sit in front of preference storage.
package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/hanumantha123456/portfolio"
)

// Backend names accepted by Open.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// RedisOptions carries connection settings for the redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Open returns the cache named by kind, or nil for "none" and "".
func Open(kind string, opts RedisOptions) (portfolio.Cache, error) {
	switch strings.ToLower(kind) {
	case "", BackendNone:
		return nil, nil
	case BackendMemory:
		return NewMemoryCache(), nil
	case BackendRedis:
		rc, err := NewRedisCache(opts)
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("%w: unknown cache backend %q", portfolio.ErrInvalidInput, kind)
	}
}
