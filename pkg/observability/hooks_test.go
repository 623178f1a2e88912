package observability

import (
	"context"
	"testing"
	"time"
)

// recordingRenderHooks counts render events for assertions.
type recordingRenderHooks struct {
	starts    int
	completes int
}

func (h *recordingRenderHooks) OnRenderStart(context.Context, []string) { h.starts++ }
func (h *recordingRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.completes++
}

// recordingCacheHooks counts cache events for assertions.
type recordingCacheHooks struct {
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// No-op hooks should not panic
	Render().OnRenderStart(ctx, []string{"html"})
	Render().OnRenderComplete(ctx, []string{"html"}, time.Second, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 100)
	Serve().OnRequest(ctx, "GET", "/")
	Serve().OnResponse(ctx, "GET", "/", 200, time.Millisecond)
}

func TestSetRenderHooks(t *testing.T) {
	Reset()
	defer Reset()

	h := &recordingRenderHooks{}
	SetRenderHooks(h)

	ctx := context.Background()
	Render().OnRenderStart(ctx, []string{"html"})
	Render().OnRenderComplete(ctx, []string{"html"}, time.Second, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 each", h.starts, h.completes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	defer Reset()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 42)

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hits = %d, misses = %d, sets = %d, want 1 each", h.hits, h.misses, h.sets)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	Reset()
	defer Reset()

	h := &recordingRenderHooks{}
	SetRenderHooks(h)
	SetRenderHooks(nil)

	Render().OnRenderStart(context.Background(), nil)
	if h.starts != 1 {
		t.Error("SetRenderHooks(nil) should keep the registered hooks")
	}
}

func TestReset(t *testing.T) {
	h := &recordingRenderHooks{}
	SetRenderHooks(h)
	Reset()

	Render().OnRenderStart(context.Background(), nil)
	if h.starts != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
