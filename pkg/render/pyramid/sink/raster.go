package sink

import (
	"context"

	"github.com/matzehuels/tierpyramid/pkg/render"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
)

// DefaultScale doubles the SVG resolution for PNG output.
const DefaultScale = 2.0

// RenderPNG rasterizes the SVG of l. A scale <= 0 means [DefaultScale].
// Conversion shells out to rsvg-convert (librsvg).
func RenderPNG(ctx context.Context, l layout.Layout, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	return render.ToPNG(ctx, RenderSVG(l, opts...), scale)
}

// RenderPDF converts the SVG of l to a single-page PDF.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
