package sink

import (
	"encoding/json"

	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style  string
	detail *tier.Detail
}

// WithJSONStyle records the style name in the JSON output so that clients
// can request the matching SVG.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONDetail includes the detail of the level a client should display,
// typically the hovered or selected one.
func WithJSONDetail(d tier.Detail) JSONOption {
	return func(r *jsonRenderer) { r.detail = &d }
}

type jsonOutput struct {
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	Style       string           `json:"style,omitempty"`
	Config      layout.Config    `json:"config"`
	Selection   jsonSelection    `json:"selection"`
	LevelHeight float64          `json:"level_height"`
	Bands       []layout.Band    `json:"bands"`
	Brackets    []layout.Bracket `json:"brackets"`
	Detail      *tier.Detail     `json:"detail,omitempty"`
}

type jsonSelection struct {
	Selected string `json:"selected,omitempty"`
	Hovered  string `json:"hovered,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. It does
// not modify l and is safe to call concurrently.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := l.ViewBox()
	out := jsonOutput{
		Width:       w,
		Height:      h,
		Style:       r.style,
		Config:      l.Config,
		Selection:   selectionIDs(l),
		LevelHeight: l.LevelHeight,
		Bands:       l.Bands,
		Brackets:    l.Brackets,
		Detail:      r.detail,
	}
	return json.MarshalIndent(out, "", "  ")
}

func selectionIDs(l layout.Layout) jsonSelection {
	var s jsonSelection
	if b, ok := l.Band(l.Selection.Selected); ok {
		s.Selected = b.LevelID
	}
	if b, ok := l.Band(l.Selection.Hovered); ok {
		s.Hovered = b.LevelID
	}
	return s
}
