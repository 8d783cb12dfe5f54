package layout

import "math"

// Point is a position in user units; y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point           { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point           { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point       { return Point{p.X * k, p.Y * k} }
func (p Point) Len() float64                { return math.Hypot(p.X, p.Y) }
func (p Point) Offset(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Unit returns p scaled to length 1. The zero vector stays zero.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Corners are the four vertices of a band.
type Corners struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	BottomLeft  Point `json:"bottom_left"`
	BottomRight Point `json:"bottom_right"`
}
