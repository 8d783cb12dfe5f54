package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tierpyramid/pkg/tier"
)

const tol = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < tol }

func defaultLayout(sel Selection) Layout {
	c := tier.Default()
	return Compute(c.Levels, c.Groups, DefaultConfig(), sel)
}

func TestComputeBandCount(t *testing.T) {
	c := tier.Default()
	for _, n := range []int{1, 2, 5, 12} {
		l := Compute(c.Levels[:n], nil, DefaultConfig(), NoSelection())
		if len(l.Bands) != n {
			t.Fatalf("n=%d: got %d bands", n, len(l.Bands))
		}
		for i, b := range l.Bands {
			if b.Index != i || b.LevelID != c.Levels[i].ID {
				t.Errorf("n=%d: band %d = %s (index %d), want %s", n, i, b.LevelID, b.Index, c.Levels[i].ID)
			}
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	c := tier.Default()
	l := Compute(nil, c.Groups, DefaultConfig(), Select(3))
	if len(l.Bands) != 0 || len(l.Brackets) != 0 {
		t.Fatalf("got %d bands and %d brackets, want none", len(l.Bands), len(l.Brackets))
	}
	if l.Selection != NoSelection() {
		t.Errorf("Selection = %+v, want none", l.Selection)
	}
}

func TestWidthBoundaries(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"default", DefaultConfig()},
		{"wide", DefaultConfig().WithBox(1000, 300, 10, 5)},
		{"rectangle", DefaultConfig().WithBox(200, 200, 200, 0)},
		{"point top", DefaultConfig().WithBox(333, 777, 0, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Width(0); got != tt.cfg.TopWidth {
				t.Errorf("Width(0) = %v, want %v", got, tt.cfg.TopWidth)
			}
			if got := tt.cfg.Width(tt.cfg.TotalHeight); got != tt.cfg.TotalWidth {
				t.Errorf("Width(H) = %v, want %v", got, tt.cfg.TotalWidth)
			}
		})
	}
}

func TestComputeFirstBand(t *testing.T) {
	l := defaultLayout(NoSelection())
	b := l.Bands[0]

	if b.YTop != 0 || b.YBottom != 50 {
		t.Errorf("y = [%v, %v], want [0, 50]", b.YTop, b.YBottom)
	}
	if b.WidthTop != 80 {
		t.Errorf("WidthTop = %v, want 80", b.WidthTop)
	}
	if !approx(b.WidthBottom, 80+320.0/12) {
		t.Errorf("WidthBottom = %v, want 106.67", b.WidthBottom)
	}
	if b.Corners.TopLeft != (Point{X: 160, Y: 0}) || b.Corners.TopRight != (Point{X: 240, Y: 0}) {
		t.Errorf("top corners = %+v %+v", b.Corners.TopLeft, b.Corners.TopRight)
	}

	want := "M 180.00,0.00 L 220.00,0.00 Q 240.00,0.00 245.15,19.32 L 248.18,30.68 " +
		"Q 253.33,50.00 233.33,50.00 L 166.67,50.00 Q 146.67,50.00 151.82,30.68 " +
		"L 154.85,19.32 Q 160.00,0.00 180.00,0.00 Z"
	if b.Path != want {
		t.Errorf("Path =\n%s\nwant\n%s", b.Path, want)
	}
	if b.LabelAnchor != (Point{X: 200, Y: 25}) {
		t.Errorf("LabelAnchor = %+v, want {200 25}", b.LabelAnchor)
	}
}

func TestComputeGeometry(t *testing.T) {
	cfg := DefaultConfig().WithBox(500, 700, 60, 12)
	c := tier.Default()
	l := Compute(c.Levels[:7], nil, cfg, NoSelection())

	last := l.Bands[len(l.Bands)-1]
	if last.YBottom != cfg.TotalHeight || last.WidthBottom != cfg.TotalWidth {
		t.Errorf("last band bottom = %v wide at %v, want %v at %v", last.WidthBottom, last.YBottom, cfg.TotalWidth, cfg.TotalHeight)
	}

	prevRight := math.Inf(-1)
	for i, b := range l.Bands {
		if i > 0 && b.YTop != l.Bands[i-1].YBottom && !approx(b.YTop, l.Bands[i-1].YBottom) {
			t.Errorf("band %d starts at %v, previous ends at %v", i, b.YTop, l.Bands[i-1].YBottom)
		}
		if b.Corners.TopRight.X < prevRight || b.Corners.BottomRight.X < b.Corners.TopRight.X {
			t.Errorf("band %d: right edge moves left", i)
		}
		prevRight = b.Corners.BottomRight.X

		if !approx(b.Corners.TopLeft.X+b.Corners.TopRight.X, cfg.TotalWidth) ||
			!approx(b.Corners.BottomLeft.X+b.Corners.BottomRight.X, cfg.TotalWidth) {
			t.Errorf("band %d is not centered", i)
		}
		if !strings.HasPrefix(b.Path, "M ") || !strings.HasSuffix(b.Path, " Z") {
			t.Errorf("band %d: path %q is not closed", i, b.Path)
		}
		if got := strings.Count(b.Path, "Q "); got != 4 {
			t.Errorf("band %d: %d curves, want 4", i, got)
		}
	}
}

func TestComputeOversizedRadius(t *testing.T) {
	c := tier.Default()
	cfg := DefaultConfig().WithBox(100, 120, 20, 500)
	l := Compute(c.Levels, c.Groups, cfg, NoSelection())
	for _, b := range l.Bands {
		if strings.Contains(b.Path, "NaN") || strings.Contains(b.Path, "Inf") {
			t.Fatalf("band %d: path %q", b.Index, b.Path)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	sel := Selection{Selected: 2, Hovered: 7}
	a := defaultLayout(sel)
	b := defaultLayout(sel)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Compute is not deterministic (-first +second):\n%s", diff)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	c := tier.Default()
	before := tier.Default()
	l := Compute(c.Levels, c.Groups, DefaultConfig(), Select(0))
	l.Brackets[0].LabelLines[0] = "changed"
	if diff := cmp.Diff(before, c); diff != "" {
		t.Errorf("catalog mutated (-before +after):\n%s", diff)
	}
}

func TestComputeSelection(t *testing.T) {
	c := tier.Default()

	tests := []struct {
		name        string
		sel         Selection
		wantOpaque  []int
		wantSel     int
		wantHovered int
	}{
		{"idle", NoSelection(), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, None, None},
		{"select AAA", Select(c.Index("AAA")), []int{0}, 0, None},
		{"select and hover", Selection{Selected: 3, Hovered: 5}, []int{3, 5}, 3, 5},
		{"hover only", Selection{Selected: None, Hovered: 4}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, None, 4},
		{"unknown id", Select(c.Index("ZZZ")), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, None, None},
		{"out of range", Selection{Selected: 12, Hovered: 99}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, None, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compute(c.Levels, c.Groups, DefaultConfig(), tt.sel)
			opaque := map[int]bool{}
			for _, i := range tt.wantOpaque {
				opaque[i] = true
			}
			for _, b := range l.Bands {
				want := DimmedOpacity
				if opaque[b.Index] {
					want = 1
				}
				if b.State.Opacity != want {
					t.Errorf("band %d opacity = %v, want %v", b.Index, b.State.Opacity, want)
				}
				if b.State.Selected != (b.Index == tt.wantSel) {
					t.Errorf("band %d Selected = %v", b.Index, b.State.Selected)
				}
				if b.State.Hovered != (b.Index == tt.wantHovered) {
					t.Errorf("band %d Hovered = %v", b.Index, b.State.Hovered)
				}
			}
			if l.Selection.Selected != tt.wantSel || l.Selection.Hovered != tt.wantHovered {
				t.Errorf("Selection = %+v", l.Selection)
			}
		})
	}
}

func TestStateFor(t *testing.T) {
	tests := []struct {
		name     string
		i        int
		selected int
		hovered  int
		want     State
	}{
		{
			name: "idle", i: 0, selected: None, hovered: None,
			want: State{Opacity: 1, StrokeColor: "white", StrokeWidth: 2},
		},
		{
			name: "selected", i: 1, selected: 1, hovered: None,
			want: State{Opacity: 1, StrokeColor: "#1f2937", StrokeWidth: 2.5, Glow: "drop-shadow(0 0 10px #22c55e)", Selected: true},
		},
		{
			name: "hovered", i: 1, selected: None, hovered: 1,
			want: State{Opacity: 1, StrokeColor: "#d1d5db", StrokeWidth: 2, Glow: "drop-shadow(0 0 12px #22c55eA0)", Hovered: true},
		},
		{
			name: "selected and hovered", i: 1, selected: 1, hovered: 1,
			want: State{Opacity: 1, StrokeColor: "#1f2937", StrokeWidth: 2.5, Glow: "drop-shadow(0 0 10px #22c55e)", Selected: true, Hovered: true},
		},
		{
			name: "dimmed", i: 2, selected: 1, hovered: None,
			want: State{Opacity: 0.5, StrokeColor: "white", StrokeWidth: 2},
		},
		{
			name: "hovered while other selected", i: 2, selected: 1, hovered: 2,
			want: State{Opacity: 1, StrokeColor: "#d1d5db", StrokeWidth: 2, Glow: "drop-shadow(0 0 12px #22c55eA0)", Hovered: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StateFor(tt.i, tt.selected, tt.hovered, "#22c55e")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StateFor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectionDisplay(t *testing.T) {
	tests := []struct {
		sel  Selection
		want int
	}{
		{NoSelection(), None},
		{Select(2), 2},
		{Selection{Selected: 2, Hovered: 5}, 5},
		{Selection{Selected: None, Hovered: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.sel.Display(); got != tt.want {
			t.Errorf("%+v.Display() = %d, want %d", tt.sel, got, tt.want)
		}
	}
}

func TestComputeBrackets(t *testing.T) {
	l := defaultLayout(NoSelection())
	if len(l.Brackets) != 3 {
		t.Fatalf("got %d brackets, want 3", len(l.Brackets))
	}

	tests := []struct {
		group   string
		path    string
		anchor  Point
		lines   int
		yBottom float64
	}{
		{tier.GroupPremium, "M 410.00,0.00 L 420.00,0.00 L 420.00,150.00 L 410.00,150.00", Point{X: 432, Y: 65}, 2, 150},
		{tier.GroupTier2, "M 410.00,150.00 L 420.00,150.00 L 420.00,300.00 L 410.00,300.00", Point{X: 432, Y: 225}, 1, 300},
		{tier.GroupSpeculative, "M 410.00,300.00 L 420.00,300.00 L 420.00,600.00 L 410.00,600.00", Point{X: 432, Y: 450}, 1, 600},
	}
	for i, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			b := l.Brackets[i]
			if b.Group != tt.group {
				t.Errorf("Group = %q, want %q", b.Group, tt.group)
			}
			if b.Path != tt.path {
				t.Errorf("Path = %q, want %q", b.Path, tt.path)
			}
			if b.LabelAnchor != tt.anchor {
				t.Errorf("LabelAnchor = %+v, want %+v", b.LabelAnchor, tt.anchor)
			}
			if len(b.LabelLines) != tt.lines {
				t.Errorf("%d label lines, want %d", len(b.LabelLines), tt.lines)
			}
			if b.YBottom != tt.yBottom {
				t.Errorf("YBottom = %v, want %v", b.YBottom, tt.yBottom)
			}
		})
	}

	premium := l.Brackets[0]
	if got := premium.LineY(1, DefaultLabelFontSize); !approx(got, 65+24) {
		t.Errorf("LineY(1) = %v, want 89", got)
	}
}

func TestViewBox(t *testing.T) {
	w, h := defaultLayout(NoSelection()).ViewBox()
	if w != 550 || h != 600 {
		t.Errorf("ViewBox() = %v x %v, want 550 x 600", w, h)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"rectangle", DefaultConfig().WithBox(100, 100, 100, 0), false},
		{"zero width", DefaultConfig().WithBox(0, 600, 0, 20), true},
		{"negative height", DefaultConfig().WithBox(400, -1, 80, 20), true},
		{"top wider than bottom", DefaultConfig().WithBox(400, 600, 401, 20), true},
		{"negative radius", DefaultConfig().WithBox(400, 600, 80, -1), true},
		{"zero font", Config{TotalWidth: 1, TotalHeight: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{-0.001, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{106.666666, "106.67"},
		{-3.456, "-3.46"},
	}
	for _, tt := range tests {
		if got := coord(tt.in); got != tt.want {
			t.Errorf("coord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnitZero(t *testing.T) {
	if got := (Point{}).Unit(); got != (Point{}) {
		t.Errorf("zero Unit() = %+v", got)
	}
	if got := (Point{X: 3, Y: 4}).Unit(); !approx(got.X, 0.6) || !approx(got.Y, 0.8) {
		t.Errorf("Unit() = %+v, want {0.6 0.8}", got)
	}
}
