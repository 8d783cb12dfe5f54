package layout

import "github.com/matzehuels/tierpyramid/pkg/tier"

// Band is the computed geometry and appearance of one level.
type Band struct {
	Index       int     `json:"index"`
	LevelID     string  `json:"level_id"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Corners     Corners `json:"corners"`
	YTop        float64 `json:"y_top"`
	YBottom     float64 `json:"y_bottom"`
	WidthTop    float64 `json:"width_top"`
	WidthBottom float64 `json:"width_bottom"`
	Path        string  `json:"path"`
	LabelAnchor Point   `json:"label_anchor"`
	State       State   `json:"state"`
}

// Height returns the vertical span of the band.
func (b Band) Height() float64 { return b.YBottom - b.YTop }

// CenterY returns the vertical center of the band.
func (b Band) CenterY() float64 { return (b.YTop + b.YBottom) / 2 }

// Bracket marks the vertical extent of one group right of the pyramid.
type Bracket struct {
	Group       string   `json:"group"`
	StartLevel  int      `json:"start_level"`
	EndLevel    int      `json:"end_level"`
	YTop        float64  `json:"y_top"`
	YBottom     float64  `json:"y_bottom"`
	Path        string   `json:"path"`
	LabelLines  []string `json:"label_lines"`
	LabelAnchor Point    `json:"label_anchor"` // Baseline of the first label line
	Color       string   `json:"color"`
}

// LineY returns the y coordinate of label line k.
func (b Bracket) LineY(k int, fontSize float64) float64 {
	return b.LabelAnchor.Y + float64(k)*fontSize*labelLineSpacing
}

// Layout is the complete geometry of a pyramid for one selection.
type Layout struct {
	Config      Config    `json:"config"`
	Selection   Selection `json:"selection"`
	LevelHeight float64   `json:"level_height"`
	Bands       []Band    `json:"bands"`
	Brackets    []Bracket `json:"brackets"`
}

// Band returns the band at index i.
func (l Layout) Band(i int) (Band, bool) {
	if i < 0 || i >= len(l.Bands) {
		return Band{}, false
	}
	return l.Bands[i], true
}

// ViewBox returns the drawing size including the bracket area.
func (l Layout) ViewBox() (width, height float64) {
	return l.Config.ViewWidth(), l.Config.TotalHeight
}

// Compute lays out one band per level and one bracket per group.
//
// Indexes in sel outside [0, len(levels)) are treated as None. Compute does
// not validate cfg or groups; an empty level list yields a layout with no
// bands and no brackets.
func Compute(levels []tier.Level, groups []tier.Group, cfg Config, sel Selection) Layout {
	n := len(levels)
	sel = sel.Clamp(n)

	l := Layout{
		Config:      cfg,
		Selection:   sel,
		LevelHeight: cfg.LevelHeight(n),
		Bands:       make([]Band, 0, n),
		Brackets:    []Bracket{},
	}
	if n == 0 {
		return l
	}

	for i, lvl := range levels {
		l.Bands = append(l.Bands, computeBand(i, n, lvl, cfg, l.LevelHeight, sel))
	}
	for _, g := range groups {
		l.Brackets = append(l.Brackets, computeBracket(g, n, cfg, l.LevelHeight))
	}
	return l
}

func computeBand(i, n int, lvl tier.Level, cfg Config, lh float64, sel Selection) Band {
	yTop := float64(i) * lh
	yBottom := float64(i+1) * lh
	if i == n-1 {
		yBottom = cfg.TotalHeight
	}

	wTop := cfg.Width(yTop)
	wBottom := cfg.Width(yBottom)
	cx := cfg.CenterX()

	c := Corners{
		TopLeft:     Point{cx - wTop/2, yTop},
		TopRight:    Point{cx + wTop/2, yTop},
		BottomLeft:  Point{cx - wBottom/2, yBottom},
		BottomRight: Point{cx + wBottom/2, yBottom},
	}

	return Band{
		Index:       i,
		LevelID:     lvl.ID,
		Label:       lvl.DisplayLabel(),
		Color:       lvl.Color,
		Corners:     c,
		YTop:        yTop,
		YBottom:     yBottom,
		WidthTop:    wTop,
		WidthBottom: wBottom,
		Path:        bandPath(c, cfg.CornerRadius),
		LabelAnchor: Point{cx, yTop + lh/2},
		State:       StateFor(i, sel.Selected, sel.Hovered, lvl.Color),
	}
}

func computeBracket(g tier.Group, n int, cfg Config, lh float64) Bracket {
	yTop := float64(g.StartLevel) * lh
	yBottom := float64(g.EndLevel) * lh
	if g.EndLevel == n {
		yBottom = cfg.TotalHeight
	}
	x := cfg.BracketX()

	lines := len(g.LabelLines)
	mid := (yTop + yBottom) / 2
	firstY := mid
	if lines > 1 {
		firstY -= float64(lines-1) * cfg.LabelFontSize / 2
	}

	return Bracket{
		Group:       g.Name,
		StartLevel:  g.StartLevel,
		EndLevel:    g.EndLevel,
		YTop:        yTop,
		YBottom:     yBottom,
		Path:        bracketPath(x, yTop, yBottom, cfg.TickLength),
		LabelLines:  append([]string(nil), g.LabelLines...),
		LabelAnchor: Point{x + cfg.LabelOffset, firstY},
		Color:       g.Color,
	}
}
