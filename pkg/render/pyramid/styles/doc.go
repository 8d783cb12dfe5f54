// Package styles defines visual styles for pyramid rendering.
//
// # Overview
//
// A style decides how the shapes computed by the layout package are drawn.
// The geometry never changes between styles; only fills, strokes, filters
// and fonts do. This package provides:
//
//   - [Style]: The interface that all styles implement
//   - [Simple]: Flat fills and strokes, no filters
//   - [Glow]: Drop-shadow glows and a lifted selected band (the default)
//   - [handdrawn]: A sketchy, pencil-on-paper look (in subpackage)
//
// # The Style Interface
//
//   - RenderDefs: SVG <defs> section (filters, fonts)
//   - RenderBand: One band shape
//   - RenderLabel: The tier label centered in a band
//   - RenderBracket: A group bracket and its label lines
//
// Every style honors the band state it is given: opacity, stroke color and
// width come from the layout, so a selection looks the same in every style
// apart from decoration.
//
// # Usage
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Glow{}))
//
// [handdrawn]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles/handdrawn
package styles
