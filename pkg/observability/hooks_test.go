package observability

import (
	"context"
	"testing"
	"time"
)

type recordingSerializerHooks struct {
	starts    int
	completes int
	lastErr   error
}

func (r *recordingSerializerHooks) OnSerializeStart(int) { r.starts++ }
func (r *recordingSerializerHooks) OnSerializeComplete(_ int, _ time.Duration, err error) {
	r.completes++
	r.lastErr = err
}

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	if _, ok := Serializer().(NoopSerializerHooks); !ok {
		t.Errorf("default serializer hooks = %T, want NoopSerializerHooks", Serializer())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("default cache hooks = %T, want NoopCacheHooks", Cache())
	}

	// No-op implementations must be safe to call.
	Serializer().OnSerializeStart(1)
	Serializer().OnSerializeComplete(1, time.Second, nil)
	Cache().OnCacheHit(context.Background(), "document")
	Cache().OnCacheMiss(context.Background(), "document")
	Cache().OnCacheSet(context.Background(), "document", 128)
}

func TestSetSerializerHooks(t *testing.T) {
	defer Reset()

	rec := &recordingSerializerHooks{}
	SetSerializerHooks(rec)

	Serializer().OnSerializeStart(3)
	Serializer().OnSerializeComplete(3, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 each", rec.starts, rec.completes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "document")
	Cache().OnCacheMiss(ctx, "document")
	Cache().OnCacheMiss(ctx, "document")
	Cache().OnCacheSet(ctx, "document", 64)

	if rec.hits != 1 || rec.misses != 2 || rec.sets != 1 {
		t.Errorf("hits = %d, misses = %d, sets = %d", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	rec := &recordingSerializerHooks{}
	SetSerializerHooks(rec)
	SetSerializerHooks(nil)

	Serializer().OnSerializeStart(1)
	if rec.starts != 1 {
		t.Error("nil registration must not replace existing hooks")
	}
}

func TestReset(t *testing.T) {
	SetSerializerHooks(&recordingSerializerHooks{})
	SetCacheHooks(&recordingCacheHooks{})
	Reset()

	if _, ok := Serializer().(NoopSerializerHooks); !ok {
		t.Error("Reset did not restore no-op serializer hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset did not restore no-op cache hooks")
	}
}
