package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tierpyramid/pkg/cache"
	"github.com/matzehuels/tierpyramid/pkg/observability"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Layout computes the geometry for c under opts without rendering.
func (r *Runner) Layout(c tier.Catalog, opts Options) (layout.Layout, error) {
	if err := opts.Validate(); err != nil {
		return layout.Layout{}, fmt.Errorf("invalid options: %w", err)
	}
	return layout.Compute(c.Levels, c.Groups, opts.Config(), opts.Selection(c)), nil
}

// Render runs layout and render for c with caching. Every requested
// format is looked up in the cache first; the misses are rendered
// together and stored with [cache.TTLArtifact].
func (r *Runner) Render(ctx context.Context, c tier.Catalog, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		CatalogHash: cache.Hash(c.Fingerprint()),
		Artifacts:   make(map[string][]byte, len(opts.Formats)),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	l := layout.Compute(c.Levels, c.Groups, opts.Config(), opts.Selection(c))
	result.Layout = l
	result.Stats.Bands = len(l.Bands)
	result.Stats.Brackets = len(l.Brackets)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, len(l.Bands), result.Stats.LayoutTime)

	opts.Logger.Debug("computed layout",
		"bands", len(l.Bands),
		"brackets", len(l.Brackets),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render, cache-aside per format
	renderStart := time.Now()
	var missing []string
	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(result.CatalogHash, opts.ArtifactKeyOpts(c, format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, format)
			result.Artifacts[format] = data
			result.CacheHits = append(result.CacheHits, format)
			continue
		}
		observability.Cache().OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}

	if len(missing) > 0 {
		renderOpts := opts
		renderOpts.Formats = missing
		observability.Pipeline().OnRenderStart(ctx, missing)
		start := time.Now()
		rendered, err := RenderArtifacts(ctx, c, l, renderOpts)
		observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		for format, data := range rendered {
			result.Artifacts[format] = data
			key := r.Keyer.ArtifactKey(result.CatalogHash, opts.ArtifactKeyOpts(c, format))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
				opts.Logger.Warn("cache write failed", "format", format, "err", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(result.CacheHits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
