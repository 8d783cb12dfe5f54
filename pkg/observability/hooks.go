// Package observability provides hooks for metrics and request accounting.
//
// Libraries emit events through package-level hooks; the binary decides at
// startup what receives them. The defaults are no-ops, so nothing is
// recorded unless `serve` (or a test) registers an implementation.
//
// # Usage
//
// Register hooks at application startup:
//
//	stats := observability.NewCounters()
//	observability.SetPipelineHooks(stats)
//	observability.SetCacheHooks(stats)
//	observability.SetHTTPHooks(stats)
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, formats, duration, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from the rendering pipeline.
type PipelineHooks interface {
	OnLayoutComplete(ctx context.Context, bands int, duration time.Duration)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from artifact cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	// OnCacheSet reports the size in bytes of the stored artifact.
	OnCacheSet(ctx context.Context, format string, size int)
}

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnResponse is called once per request with the matched route pattern.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// Noop hooks discard every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration)              {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry is replaced as a whole; readers never see a half-updated set.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func update(fn func(*registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks registers h for pipeline events. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers h for cache events. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks registers h for HTTP events. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

func Pipeline() PipelineHooks { return current.Load().pipeline }
func Cache() CacheHooks       { return current.Load().cache }
func HTTP() HTTPHooks         { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	})
}
