package layout

import "github.com/matzehuels/tierpyramid/pkg/errors"

// Default geometry, in user units.
const (
	DefaultTotalWidth    = 400.0
	DefaultTotalHeight   = 600.0
	DefaultTopWidth      = 80.0
	DefaultCornerRadius  = 20.0
	DefaultBracketOffset = 20.0
	DefaultTickLength    = 10.0
	DefaultLabelOffset   = 12.0
	DefaultLabelFontSize = 20.0
	DefaultBracketArea   = 150.0
)

// labelLineSpacing is the distance between bracket label lines, in ems.
const labelLineSpacing = 1.2

// Config is the coordinate box and the fixed offsets of a pyramid.
type Config struct {
	TotalWidth   float64 `json:"total_width"`   // Width of the bottom edge
	TotalHeight  float64 `json:"total_height"`  // Height of the pyramid
	TopWidth     float64 `json:"top_width"`     // Width of the top edge
	CornerRadius float64 `json:"corner_radius"` // Rounding applied at every band corner

	BracketOffset float64 `json:"bracket_offset"`  // Gap between the pyramid box and the bracket line
	TickLength    float64 `json:"tick_length"`     // Length of the bracket end ticks
	LabelOffset   float64 `json:"label_offset"`    // Gap between the bracket line and its label
	LabelFontSize float64 `json:"label_font_size"` // Bracket label font size
	BracketArea   float64 `json:"bracket_area"`    // Extra view width reserved for brackets
}

// DefaultConfig returns the 400x600 pyramid with an 80 wide top.
func DefaultConfig() Config {
	return Config{
		TotalWidth:    DefaultTotalWidth,
		TotalHeight:   DefaultTotalHeight,
		TopWidth:      DefaultTopWidth,
		CornerRadius:  DefaultCornerRadius,
		BracketOffset: DefaultBracketOffset,
		TickLength:    DefaultTickLength,
		LabelOffset:   DefaultLabelOffset,
		LabelFontSize: DefaultLabelFontSize,
		BracketArea:   DefaultBracketArea,
	}
}

// WithBox returns a copy of c with the four primary dimensions replaced.
func (c Config) WithBox(width, height, topWidth, radius float64) Config {
	c.TotalWidth = width
	c.TotalHeight = height
	c.TopWidth = topWidth
	c.CornerRadius = radius
	return c
}

// Validate checks that the box describes a drawable frustum. Compute itself
// accepts any config; Validate is for values coming from users.
func (c Config) Validate() error {
	if c.TotalWidth <= 0 || c.TotalHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width and height must be positive (got %gx%g)", c.TotalWidth, c.TotalHeight)
	}
	if c.TopWidth < 0 || c.TopWidth > c.TotalWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "top width %g must be between 0 and width %g", c.TopWidth, c.TotalWidth)
	}
	if c.CornerRadius < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "corner radius %g cannot be negative", c.CornerRadius)
	}
	if c.LabelFontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "label font size %g must be positive", c.LabelFontSize)
	}
	if c.BracketOffset < 0 || c.TickLength < 0 || c.LabelOffset < 0 || c.BracketArea < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bracket offsets cannot be negative")
	}
	return nil
}

// Width returns the pyramid width at depth y.
func (c Config) Width(y float64) float64 {
	if c.TotalHeight == 0 {
		return c.TopWidth
	}
	return c.TopWidth + (y/c.TotalHeight)*(c.TotalWidth-c.TopWidth)
}

// LevelHeight returns the height of one band when the pyramid holds n levels.
func (c Config) LevelHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return c.TotalHeight / float64(n)
}

// ViewWidth is the width of the full drawing, pyramid plus bracket area.
func (c Config) ViewWidth() float64 { return c.TotalWidth + c.BracketArea }

// BracketX is the x coordinate of every bracket's vertical line.
func (c Config) BracketX() float64 { return c.TotalWidth + c.BracketOffset }

// CenterX is the vertical axis of the pyramid.
func (c Config) CenterX() float64 { return c.TotalWidth / 2 }
