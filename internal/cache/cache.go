// Package cache provides the caching layer for front-office FAQ reads.
package cache

import (
	"context"
	"time"
)

// Cache is the interface shared by the memory and Redis backends. All
// implementations must be thread-safe. Values are []byte so both backends
// store the same serialized form.
type Cache interface {
	// Get retrieves a value. Returns ErrCacheMiss when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified TTL. A TTL of 0 uses the
	// backend's default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries. Called on back-office writes so the
	// front office never serves stale content.
	Clear(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// Sweeper is an optional interface for backends that need periodic expired
// entry removal. The scheduler calls Sweep; Redis expires keys natively.
type Sweeper interface {
	Sweep()
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// FaqKey is the cache key of one question page.
func FaqKey(slug, locale string) string {
	return "faq-" + slug + "-" + locale
}

// CategoryKey is the cache key of one category page.
func CategoryKey(slug, locale string) string {
	return "faq-category-" + slug + "-" + locale
}

// LandingKey is the cache key of the landing page.
func LandingKey(locale string) string {
	return "faq-landing-" + locale
}

// SitemapKey is the cache key of one locale's sitemap.
func SitemapKey(locale string) string {
	return "faq-sitemap-" + locale
}
