// Package cache provides pluggable caching for rendered documents.
//
// Serialization is deterministic: equal scene bytes and options always
// produce byte-identical output, so memoizing documents under a content
// hash is sound. Three backends are provided:
//
//   - FileCache: directory-backed, used by the CLI
//   - RedisCache: shared backend for the HTTP server
//   - NullCache: disables caching without branching at call sites
//
// Keys are derived with [DocumentKey] from the scene bytes plus the
// options that affect output.
package cache

import (
	"context"
	"time"

	"github.com/jozzs/svgcast/pkg/observability"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl stores it without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Instrumented wraps a cache so hits, misses, and writes are reported to
// the registered observability hooks. keyType labels the events, e.g.
// "document".
func Instrumented(c Cache, keyType string) Cache {
	return &instrumented{inner: c, keyType: keyType}
}

type instrumented struct {
	inner   Cache
	keyType string
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, ok, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.inner.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	}
	return err
}

func (c *instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *instrumented) Close() error {
	return c.inner.Close()
}
