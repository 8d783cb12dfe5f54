// Package pkg provides the core libraries for tierpyramid.
//
// # Overview
//
// Tierpyramid draws an ordered rating scale (AAA at the top, C at the
// bottom) as the horizontal bands of a pyramid frustum, with brackets on the
// right marking contiguous groups of tiers. The pkg directory is organized
// into these areas:
//
//  1. [tier] - The catalog: levels, groups, brands and derived details
//  2. [render/pyramid] - Geometry and output (layout, styles, sinks)
//  3. [render/nodelink] - The scale as a Graphviz chain
//  4. [pipeline] - Orchestration (catalog → layout → artifacts) with caching
//  5. [cache] - File, Redis and null artifact caches
//
// # Architecture
//
// The typical data flow:
//
//	Catalog (built-in or TOML/YAML/JSON file)
//	         ↓
//	    [tier] package (validate, details, bankability)
//	         ↓
//	    [render/pyramid/layout] package (bands, brackets, visual state)
//	         ↓
//	    [render/pyramid/sink] package (SVG/PNG/PDF/JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
//	    "github.com/matzehuels/tierpyramid/pkg/render/pyramid/sink"
//	    "github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles"
//	    "github.com/matzehuels/tierpyramid/pkg/tier"
//	)
//
//	c := tier.Default()
//	sel := layout.Selection{Selected: c.Index("BBB"), Hovered: layout.None}
//	l := layout.Compute(c.Levels, c.Groups, layout.DefaultConfig(), sel)
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Glow{}))
//
// Or with caching and every format at once:
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	res, _ := runner.Render(ctx, c, pipeline.Options{
//	    Selected: "BBB",
//	    Formats:  []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	})
//
// # Supporting Packages
//
// [errors] - Error codes shared by the CLI and the HTTP server.
//
// [observability] - Hooks for layout, render, cache and HTTP events, plus
// in-memory counters.
//
// [buildinfo] - Version information injected at build time.
//
// [tier]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/tier
// [render/pyramid]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/render/pyramid
// [render/pyramid/layout]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout
// [render/pyramid/sink]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/render/pyramid/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tierpyramid/pkg/buildinfo
package pkg
