package layout

import "fmt"

// None marks the absence of a selected or hovered level.
const None = -1

// Opacities and strokes of the three band states.
const (
	DimmedOpacity = 0.5

	SelectedStroke      = "#1f2937"
	SelectedStrokeWidth = 2.5
	HoveredStroke       = "#d1d5db"
	DefaultStroke       = "white"
	DefaultStrokeWidth  = 2.0
)

// Selection is the interaction state a layout is computed for.
type Selection struct {
	Selected int `json:"selected"`
	Hovered  int `json:"hovered"`
}

// NoSelection is the idle state.
func NoSelection() Selection { return Selection{Selected: None, Hovered: None} }

// Select returns a selection of level i with nothing hovered.
func Select(i int) Selection { return Selection{Selected: i, Hovered: None} }

// Clamp replaces indexes outside [0, n) with None.
func (s Selection) Clamp(n int) Selection {
	if s.Selected < 0 || s.Selected >= n {
		s.Selected = None
	}
	if s.Hovered < 0 || s.Hovered >= n {
		s.Hovered = None
	}
	return s
}

// Display is the level a detail view should show: the hovered one if any,
// otherwise the selected one.
func (s Selection) Display() int {
	if s.Hovered != None {
		return s.Hovered
	}
	return s.Selected
}

// State is the visual appearance of a band.
type State struct {
	Opacity     float64 `json:"opacity"`
	StrokeColor string  `json:"stroke_color"`
	StrokeWidth float64 `json:"stroke_width"`
	Glow        string  `json:"glow,omitempty"` // CSS filter, empty when the band does not glow
	Selected    bool    `json:"selected,omitempty"`
	Hovered     bool    `json:"hovered,omitempty"`
}

// StateFor derives the state of band i from the selected and hovered
// indexes; color tints the glow. Negative indexes mean nothing.
func StateFor(i, selected, hovered int, color string) State {
	isSelected := selected >= 0 && i == selected
	isHovered := hovered >= 0 && i == hovered

	st := State{
		Opacity:     1,
		StrokeColor: DefaultStroke,
		StrokeWidth: DefaultStrokeWidth,
		Selected:    isSelected,
		Hovered:     isHovered,
	}
	if selected >= 0 && !isSelected && !isHovered {
		st.Opacity = DimmedOpacity
	}

	switch {
	case isSelected:
		st.StrokeColor = SelectedStroke
		st.StrokeWidth = SelectedStrokeWidth
		st.Glow = fmt.Sprintf("drop-shadow(0 0 10px %s)", color)
	case isHovered:
		st.StrokeColor = HoveredStroke
		st.Glow = fmt.Sprintf("drop-shadow(0 0 12px %sA0)", color)
	}
	return st
}
