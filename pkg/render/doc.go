// Package render provides visualization rendering for tier catalogs.
//
// # Overview
//
// This package contains the rendering pipeline that turns a catalog and a
// selection into visual output. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Pyramid visualization (in [pyramid] subpackages)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both pyramid and node-link
// renderers use them. [Available] reports whether the tool is installed.
//
//	svg := sink.RenderSVG(l, opts...)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Pyramid Visualization
//
// Key pyramid subpackages:
//   - [pyramid/layout]: Band and bracket geometry
//   - [pyramid/sink]: Output formats (SVG, JSON, PDF, PNG)
//   - [pyramid/styles]: Visual styles (glow, simple, handdrawn)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the scale as a Graphviz diagram.
//
//	dot := nodelink.ToDOT(c, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [pyramid]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout
// [pyramid/layout]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout
// [pyramid/sink]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/sink
// [pyramid/styles]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles
// [nodelink]: github.com/matzehuels/tierpyramid/pkg/render/nodelink
package render
