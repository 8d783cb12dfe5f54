// Package layout computes the geometry of a tier pyramid.
//
// # Overview
//
// A pyramid is a truncated triangle (a frustum) cut into N horizontal bands
// of equal height, one per tier level. The narrow top edge belongs to the
// best level; the full-width bottom edge to the worst. [Compute] turns an
// ordered list of levels, their groups and a coordinate box into a complete
// [Layout] containing everything a renderer needs:
//
//   - One [Band] per level: corners, widths, a closed rounded-corner path
//     and the visual [State] for the current selection
//   - One [Bracket] per group: a tick-ended vertical line right of the
//     pyramid plus anchored label lines
//
// # Width Interpolation
//
// Band widths grow linearly with depth:
//
//	Width(y) = TopWidth + (y/TotalHeight) * (TotalWidth - TopWidth)
//
// so Width(0) is exactly TopWidth and Width(TotalHeight) exactly
// TotalWidth. Every band is centered on x = TotalWidth/2.
//
// # Selection
//
// A [Selection] carries the selected and hovered level indexes, [None]
// meaning no level. Out-of-range indexes are treated as None. [StateFor]
// derives opacity, stroke and glow from it: the selected and hovered bands
// stay opaque, the rest dim to [DimmedOpacity] once something is selected.
//
// # Building a Layout
//
//	c := tier.Default()
//	l := layout.Compute(c.Levels, c.Groups, layout.DefaultConfig(), layout.Selection{
//	    Selected: c.Index("AAA"),
//	    Hovered:  layout.None,
//	})
//
// Compute is pure: it never caches, never mutates its inputs and returns
// identical layouts for identical arguments. Renderers in
// [render/pyramid/sink] consume the result.
//
// [render/pyramid/sink]: github.com/matzehuels/tierpyramid/pkg/render/pyramid/sink
package layout
