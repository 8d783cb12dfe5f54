package layout

import (
	"strconv"
	"strings"
)

// pathBuilder accumulates SVG path commands with two-decimal coordinates.
type pathBuilder struct {
	sb strings.Builder
}

func (b *pathBuilder) cmd(c byte, pts ...Point) {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteByte(c)
	for _, p := range pts {
		b.sb.WriteByte(' ')
		b.sb.WriteString(coord(p.X))
		b.sb.WriteByte(',')
		b.sb.WriteString(coord(p.Y))
	}
}

func (b *pathBuilder) MoveTo(p Point)       { b.cmd('M', p) }
func (b *pathBuilder) LineTo(p Point)       { b.cmd('L', p) }
func (b *pathBuilder) QuadTo(ctrl, p Point) { b.cmd('Q', ctrl, p) }
func (b *pathBuilder) Close()               { b.cmd('Z') }
func (b *pathBuilder) String() string       { return b.sb.String() }

// coord formats a coordinate with two decimals, never as "-0.00".
func coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// bandPath traces the band outline clockwise from the top edge, rounding
// each corner with a quadratic curve whose control point is the corner.
// Radii longer than half an edge make neighbouring arcs overlap.
func bandPath(c Corners, r float64) string {
	p1, p2, p3, p4 := c.TopRight, c.BottomRight, c.BottomLeft, c.TopLeft
	down := p2.Sub(p1).Unit()
	up := p4.Sub(p3).Unit()

	var b pathBuilder
	b.MoveTo(p4.Offset(r, 0))
	b.LineTo(p1.Offset(-r, 0))
	b.QuadTo(p1, p1.Add(down.Scale(r)))
	b.LineTo(p2.Sub(down.Scale(r)))
	b.QuadTo(p2, p2.Offset(-r, 0))
	b.LineTo(p3.Offset(r, 0))
	b.QuadTo(p3, p3.Add(up.Scale(r)))
	b.LineTo(p4.Sub(up.Scale(r)))
	b.QuadTo(p4, p4.Offset(r, 0))
	b.Close()
	return b.String()
}

// bracketPath draws a vertical line at x from yTop to yBottom with ticks
// pointing back toward the pyramid.
func bracketPath(x, yTop, yBottom, tick float64) string {
	var b pathBuilder
	b.MoveTo(Point{x - tick, yTop})
	b.LineTo(Point{x, yTop})
	b.LineTo(Point{x, yBottom})
	b.LineTo(Point{x - tick, yBottom})
	return b.String()
}
