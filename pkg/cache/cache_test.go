package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jozzs/svgcast/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "doc:abc")
	if err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v", hit, err)
	}

	// Round-trip
	if err := c.Set(ctx, "doc:abc", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "doc:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = %q, hit=%v", data, hit)
	}

	// Delete
	if err := c.Delete(ctx, "doc:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "doc:abc"); hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "doc:abc"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "key", []byte("data"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	fc := c.(*FileCache)

	if err := c.Set(ctx, "a", []byte("1"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "b", []byte("2"), 0); err != nil {
		t.Fatal(err)
	}

	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("entry survived Clear")
	}
}

func TestHash(t *testing.T) {
	// Determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDocumentKey(t *testing.T) {
	scene := []byte(`{"shapes":[]}`)

	k1 := DocumentKey(scene, "mm", 10000)
	k2 := DocumentKey(scene, "mm", 10000)
	if k1 != k2 {
		t.Error("DocumentKey should be deterministic")
	}
	if !strings.HasPrefix(k1, "doc:") {
		t.Errorf("key %q lacks doc prefix", k1)
	}

	if DocumentKey(scene, "in", 10000) == k1 {
		t.Error("unit must affect the key")
	}
	if DocumentKey(scene, "mm", 100) == k1 {
		t.Error("decimals must affect the key")
	}
	if DocumentKey([]byte(`{"shapes":[{}]}`), "mm", 10000) == k1 {
		t.Error("scene bytes must affect the key")
	}
}

type countingCacheHooks struct {
	hits, misses, sets int
	lastSize           int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string) { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.sets++
	h.lastSize = size
}

func TestInstrumented(t *testing.T) {
	defer observability.Reset()
	rec := &countingCacheHooks{}
	observability.SetCacheHooks(rec)

	ctx := context.Background()
	inner, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := Instrumented(inner, "document")

	if _, _, err := c.Get(ctx, "key"); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "key", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Get(ctx, "key"); err != nil {
		t.Fatal(err)
	}

	if rec.misses != 1 || rec.hits != 1 || rec.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1 each", rec.hits, rec.misses, rec.sets)
	}
	if rec.lastSize != len("<svg/>") {
		t.Errorf("set size = %d", rec.lastSize)
	}
}
