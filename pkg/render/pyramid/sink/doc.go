// Package sink provides output format renderers for pyramid layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - SVG: Scalable vector graphics, optionally interactive
//   - JSON: Layout data export for web clients and external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] draws every band, its tier label and every group bracket in
// a view box of (TotalWidth + BracketArea) x TotalHeight:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithStyle(styles.Glow{}),
//	    sink.WithInteraction(),
//	)
//
// # SVG Options
//
//   - [WithStyle]: Visual style ([styles.Simple], [styles.Glow] or [handdrawn.New])
//   - [WithInteraction]: Embed CSS and JS that re-apply hover and selection
//     rules in the browser
//   - [WithTitle], [WithDescription]: Accessible <title> and <desc> text
//
// Without options the selection baked into the layout is all the SVG shows.
//
// # JSON Output
//
// [RenderJSON] exports the layout as JSON: every band with its corners,
// path and state, every bracket, and the view box. [WithJSONDetail] adds
// the detail of the displayed level.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] generate SVG first, then convert it via
// [render.ToPDF] and [render.ToPNG].
//
// [handdrawn.New]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/styles/handdrawn
// [render.ToPDF]: github.com/matzehuels/tierpyramid/pkg/render
// [render.ToPNG]: github.com/matzehuels/tierpyramid/pkg/render
package sink
