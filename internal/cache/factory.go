package cache

import (
	"log/slog"
	"time"
)

// Config holds configuration for cache creation.
type Config struct {
	// Type is the cache backend type: "memory" or "redis"
	Type string

	// RedisURL is the Redis connection URL (only for redis type)
	RedisURL string

	// DefaultTTL is the default TTL for cache entries
	DefaultTTL time.Duration
}

// DefaultConfig returns default cache configuration.
func DefaultConfig() Config {
	return Config{
		Type:       "memory",
		DefaultTTL: time.Hour,
	}
}

// New creates a cache from the configuration. A failing Redis backend
// degrades to the memory cache with a warning rather than refusing to
// start: the cache is an optimization, not a dependency.
func New(cfg Config) Cache {
	if cfg.DefaultTTL == 0 {
		cfg.DefaultTTL = time.Hour
	}

	if cfg.Type == "redis" && cfg.RedisURL != "" {
		opts := DefaultRedisCacheOptions()
		opts.URL = cfg.RedisURL
		opts.DefaultTTL = cfg.DefaultTTL

		c, err := NewRedisCache(opts)
		if err == nil {
			return c
		}
		slog.Warn("redis cache unavailable, falling back to memory", "error", err)
	}

	return NewMemoryCache(cfg.DefaultTTL)
}
