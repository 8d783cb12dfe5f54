// Package pipeline turns a catalog into rendered pyramid artifacts.
//
// This package implements the load → layout → render pipeline shared by
// the CLI and the HTTP server. By centralizing this logic, both entry points
// apply the same defaults, the same validation and the same cache keys.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a catalog file, or use the built-in one
//  2. Layout: Compute band and bracket geometry for the current selection
//  3. Render: Generate output in various formats (SVG, JSON, PNG, PDF, DOT)
//
// Layouts are always recomputed; they are pure and cheap. Rendered artifacts
// are cached because PNG and PDF conversion shells out to rsvg-convert.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Selected: "AAA",
//	    Style:    "glow",
//	    Formats:  []string{"svg", "json"},
//	}
//	result, err := runner.Render(ctx, tier.Default(), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tierpyramid/pkg/cache"
	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	DefaultWidth        = layout.DefaultTotalWidth
	DefaultHeight       = layout.DefaultTotalHeight
	DefaultTopWidth     = layout.DefaultTopWidth
	DefaultCornerRadius = layout.DefaultCornerRadius

	// DefaultSeed seeds the hand-drawn style.
	DefaultSeed = uint64(42)

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0
)

// Visual styles.
const (
	StyleGlow      = "glow"
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// DefaultStyle is the default visual style.
const DefaultStyle = StyleGlow

// Visualization types.
const (
	VizTypePyramid  = "pyramid"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypePyramid

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// DefaultFormat is the format rendered when none is requested.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleGlow:      true,
	StyleSimple:    true,
	StyleHanddrawn: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypePyramid:  true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width        float64  `json:"width,omitempty"`
	Height       float64  `json:"height,omitempty"`
	TopWidth     float64  `json:"top_width,omitempty"`
	CornerRadius *float64 `json:"corner_radius,omitempty"` // nil means DefaultCornerRadius; 0 gives sharp corners
	Selected     string   `json:"selected,omitempty"`      // Level id; unknown ids select nothing
	Hovered      string   `json:"hovered,omitempty"`       // Level id; unknown ids hover nothing

	// Render options
	VizType     string   `json:"viz_type,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`
	Seed        uint64   `json:"seed,omitempty"`
	Scale       float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger `json:"-"`
	Refresh bool        `json:"-"` // Skip cache reads
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed geometry for the requested selection.
	Layout layout.Layout

	// CatalogHash is the content hash of the catalog.
	CatalogHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheHits lists the formats served from the cache.
	CacheHits []string

	// Stats contains timing information.
	Stats Stats
}

// Hit reports whether format came from the cache.
func (r *Result) Hit(format string) bool { return slices.Contains(r.CacheHits, format) }

// Stats contains pipeline execution statistics.
type Stats struct {
	Bands      int
	Brackets   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png, pdf, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: glow, simple, handdrawn)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type: %q (must be one of: pyramid, nodelink)", vizType)
	}
	return nil
}

// ParseFormats splits a comma-separated format list ("svg,json").
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero values. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.TopWidth == 0 {
		o.TopWidth = DefaultTopWidth
	}
	if o.CornerRadius == nil {
		o.CornerRadius = Float64(DefaultCornerRadius)
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return o.Config().Validate()
}

// Config returns the layout configuration for these options.
func (o *Options) Config() layout.Config {
	return layout.DefaultConfig().WithBox(o.Width, o.Height, o.TopWidth, o.radius())
}

func (o *Options) radius() float64 {
	if o.CornerRadius == nil {
		return DefaultCornerRadius
	}
	return *o.CornerRadius
}

// Float64 returns a pointer to v, for optional fields such as CornerRadius.
func Float64(v float64) *float64 { return &v }

// Selection resolves the selected and hovered ids against c.
// Unknown or empty ids resolve to no selection.
func (o *Options) Selection(c tier.Catalog) layout.Selection {
	return layout.Selection{
		Selected: c.Index(o.Selected),
		Hovered:  c.Index(o.Hovered),
	}
}

// IsNodelink returns true if this is a node-link visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// Ids are normalized through the catalog so that unknown ids share the
// key of "no selection".
func (o *Options) ArtifactKeyOpts(c tier.Catalog, format string) cache.ArtifactKeyOpts {
	sel := o.Selection(c)
	k := cache.ArtifactKeyOpts{
		Format:       format,
		VizType:      o.VizType,
		Style:        o.Style,
		Width:        o.Width,
		Height:       o.Height,
		TopWidth:     o.TopWidth,
		CornerRadius: o.radius(),
		Interactive:  o.Interactive,
	}
	if sel.Selected != layout.None {
		k.Selected = c.Levels[sel.Selected].ID
	}
	if sel.Hovered != layout.None {
		k.Hovered = c.Levels[sel.Hovered].ID
	}
	if o.Style == StyleHanddrawn {
		k.Seed = o.Seed
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
