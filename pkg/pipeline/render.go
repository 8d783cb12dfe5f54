package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/render/nodelink"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/sink"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles/handdrawn"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// svgTitle is the accessible title of every rendered pyramid.
const svgTitle = "Tier pyramid"

// RenderArtifacts renders l in every format of opts.Formats. Formats are
// rendered concurrently; the first failure cancels the rest.
// opts must already be validated.
func RenderArtifacts(ctx context.Context, c tier.Catalog, l layout.Layout, opts Options) (map[string][]byte, error) {
	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(ctx, c, l, opts, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, c tier.Catalog, l layout.Layout, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(nodelink.ToDOT(c, nodelinkOptions(l))), nil
	case FormatJSON:
		return renderJSON(c, l, opts)
	}
	if opts.IsNodelink() {
		return renderNodelink(ctx, c, l, opts, format)
	}
	return renderPyramid(ctx, c, l, opts, format)
}

// renderPyramid generates pyramid outputs.
func renderPyramid(ctx context.Context, c tier.Catalog, l layout.Layout, opts Options, format string) ([]byte, error) {
	svgOpts := buildSVGOptions(c, opts)
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(ctx, l, opts.Scale, svgOpts...)
	case FormatPDF:
		return sink.RenderPDF(ctx, l, svgOpts...)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported pyramid format: %s", format)
}

// renderNodelink generates scale-graph outputs through Graphviz.
func renderNodelink(ctx context.Context, c tier.Catalog, l layout.Layout, opts Options, format string) ([]byte, error) {
	dot := nodelink.ToDOT(c, nodelinkOptions(l))
	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported nodelink format: %s", format)
}

// renderJSON exports the layout together with the detail of the displayed
// level, if any.
func renderJSON(c tier.Catalog, l layout.Layout, opts Options) ([]byte, error) {
	jsonOpts := []sink.JSONOption{sink.WithJSONStyle(opts.Style)}
	if i := l.Selection.Display(); i != layout.None {
		jsonOpts = append(jsonOpts, sink.WithJSONDetail(c.DetailAt(i)))
	}
	return sink.RenderJSON(l, jsonOpts...)
}

func nodelinkOptions(l layout.Layout) nodelink.Options {
	o := nodelink.Options{Detailed: true}
	if b, ok := l.Band(l.Selection.Display()); ok {
		o.Selected = b.LevelID
	}
	return o
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(c tier.Catalog, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithTitle(svgTitle)}
	if c.Source != "" {
		svgOpts = append(svgOpts, sink.WithDescription(c.Source))
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}

	// Apply visual style
	switch opts.Style {
	case StyleHanddrawn:
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		svgOpts = append(svgOpts, sink.WithStyle(handdrawn.New(seed)))
	case StyleSimple:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Simple{}))
	default:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Glow{}))
	}
	return svgOpts
}
