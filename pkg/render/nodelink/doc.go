// Package nodelink renders a tier catalog as a node-link diagram.
//
// # Overview
//
// This package produces a Graphviz view of the scale: one box per level,
// filled with the level color and chained from best to worst, with every
// group drawn as a labelled cluster. It is an alternative to the pyramid
// when a plain diagram is preferred, e.g. for documentation.
//
// # Usage
//
// Convert a catalog to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(tier.Default(), nodelink.Options{Selected: "BBB"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: When true, node labels include the bankability percentage
//   - Selected: Level id drawn with a dark, thick outline
//
// # DOT Format
//
// [ToDOT] output is plain DOT source and can also be written to a .dot file
// and processed with the graphviz command line tools.
//
// [RenderSVG] uses the WebAssembly build of Graphviz bundled by
// github.com/goccy/go-graphviz, so no system installation is needed for SVG.
// PDF and PNG go through rsvg-convert like the pyramid sinks.
package nodelink
