package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters implements every hook interface with atomic counters. `serve`
// registers one and exposes a [Snapshot] at /api/stats.
type Counters struct {
	layouts      atomic.Int64
	renders      atomic.Int64
	renderErrors atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	cacheBytes   atomic.Int64
	requests     atomic.Int64
	serverErrors atomic.Int64
	started      time.Time
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{started: time.Now()}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Uptime       string `json:"uptime"`
	Layouts      int64  `json:"layouts"`
	Renders      int64  `json:"renders"`
	RenderErrors int64  `json:"render_errors"`
	CacheHits    int64  `json:"cache_hits"`
	CacheMisses  int64  `json:"cache_misses"`
	CacheBytes   int64  `json:"cache_bytes_written"`
	Requests     int64  `json:"requests"`
	ServerErrors int64  `json:"server_errors"`
}

// Snapshot reads all counters.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Uptime:       time.Since(c.started).Round(time.Second).String(),
		Layouts:      c.layouts.Load(),
		Renders:      c.renders.Load(),
		RenderErrors: c.renderErrors.Load(),
		CacheHits:    c.cacheHits.Load(),
		CacheMisses:  c.cacheMisses.Load(),
		CacheBytes:   c.cacheBytes.Load(),
		Requests:     c.requests.Load(),
		ServerErrors: c.serverErrors.Load(),
	}
}

func (c *Counters) OnLayoutComplete(context.Context, int, time.Duration) { c.layouts.Add(1) }
func (c *Counters) OnRenderStart(context.Context, []string)             {}

func (c *Counters) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	c.renders.Add(1)
	if err != nil {
		c.renderErrors.Add(1)
	}
}

func (c *Counters) OnCacheHit(context.Context, string)  { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string) { c.cacheMisses.Add(1) }

func (c *Counters) OnCacheSet(_ context.Context, _ string, size int) {
	c.cacheBytes.Add(int64(size))
}

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	c.requests.Add(1)
	if status >= 500 {
		c.serverErrors.Add(1)
	}
}

var (
	_ PipelineHooks = (*Counters)(nil)
	_ CacheHooks    = (*Counters)(nil)
	_ HTTPHooks     = (*Counters)(nil)
)
