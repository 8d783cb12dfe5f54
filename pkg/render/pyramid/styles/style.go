package styles

import "bytes"

// Style defines the visual appearance of a pyramid.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, fonts).
	RenderDefs(buf *bytes.Buffer)
	// RenderBand writes the SVG for a single band shape.
	RenderBand(buf *bytes.Buffer, b Band)
	// RenderLabel writes the tier label of a band.
	RenderLabel(buf *bytes.Buffer, b Band)
	// RenderBracket writes a group bracket and its label.
	RenderBracket(buf *bytes.Buffer, b Bracket)
}

// Band contains all data needed to render a single pyramid band.
type Band struct {
	ID          string  // Level identifier
	Index       int     // Position from the top
	Label       string  // Display text
	Path        string  // SVG path data of the outline
	Color       string  // Fill color
	CX, CY      float64 // Label anchor
	Opacity     float64 // Band opacity
	Stroke      string  // Outline color
	StrokeWidth float64 // Outline width
	Glow        string  // CSS drop-shadow filter, empty for none
	Selected    bool
	Hovered     bool
}

// Bracket contains the data needed to render a group bracket.
type Bracket struct {
	Group    string   // Group name
	Path     string   // SVG path data of the bracket line
	Lines    []string // Label lines, top to bottom
	X, Y     float64  // Anchor of the first label line
	FontSize float64  // Label font size
	Color    string   // Stroke and text color
}

// Label font settings shared by all styles.
const (
	LabelFontSize      = 26.0
	LabelColor         = "#1f2937"
	LabelHalo          = "white"
	LabelHaloWidth     = 0.75
	BracketStrokeWidth = 2.5
	BracketFontWeight  = 600
	lineSpacingEm      = 1.2
)
