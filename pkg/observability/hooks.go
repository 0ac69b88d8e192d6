// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about document serialization and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSerializerHooks(&mySerializerHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Serializer().OnSerializeStart(objectCount)
//	// ... convert geometry ...
//	observability.Serializer().OnSerializeComplete(objectCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Serializer Hooks
// =============================================================================

// SerializerHooks receives events from the geometry-to-document pipeline.
type SerializerHooks interface {
	// OnSerializeStart is called once the convertible object set is known.
	OnSerializeStart(objects int)

	// OnSerializeComplete is called when document assembly finishes.
	OnSerializeComplete(objects int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSerializerHooks is a no-op implementation of SerializerHooks.
type NoopSerializerHooks struct{}

func (NoopSerializerHooks) OnSerializeStart(int)                          {}
func (NoopSerializerHooks) OnSerializeComplete(int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	serializerHooks SerializerHooks = NoopSerializerHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetSerializerHooks registers custom serializer hooks.
// This should be called once at application startup before any conversions.
func SetSerializerHooks(h SerializerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serializerHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Serializer returns the registered serializer hooks.
func Serializer() SerializerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serializerHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	serializerHooks = NoopSerializerHooks{}
	cacheHooks = NoopCacheHooks{}
}
