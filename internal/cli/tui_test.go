package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

func press(m BrowseModel, keys ...tea.KeyMsg) BrowseModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BrowseModel)
	}
	return m
}

var (
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyHelp     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
)

func TestBrowseModelInitialState(t *testing.T) {
	m := NewBrowseModel(tier.Default())
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
	if m.Hovered != layout.None {
		t.Errorf("Hovered = %d, want none", m.Hovered)
	}
	if m.Init() != nil {
		t.Error("Init() should not start a command")
	}
}

func TestBrowseModelKeys(t *testing.T) {
	tests := []struct {
		name         string
		keys         []tea.KeyMsg
		wantSelected int
		wantHovered  int
		wantBand     int
	}{
		{"no keys", nil, 0, layout.None, 0},
		{"down hovers next", []tea.KeyMsg{keyDown}, 0, 1, 0},
		{"up clamps at top", []tea.KeyMsg{keyUp, keyUp}, 0, 0, 0},
		{"down then select", []tea.KeyMsg{keyDown, keyDown, keyDown, keyEnter}, 3, layout.None, 1},
		{"select without hover keeps selection", []tea.KeyMsg{keyEnter}, 0, layout.None, 0},
		{"tab cycles band", []tea.KeyMsg{keyTab, keyTab}, 0, layout.None, 2},
		{"tab wraps", []tea.KeyMsg{keyTab, keyTab, keyTab}, 0, layout.None, 0},
		{"shift tab wraps back", []tea.KeyMsg{keyShiftTab}, 0, layout.None, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewBrowseModel(tier.Default()), tt.keys...)
			if m.Selected != tt.wantSelected {
				t.Errorf("Selected = %d, want %d", m.Selected, tt.wantSelected)
			}
			if m.Hovered != tt.wantHovered {
				t.Errorf("Hovered = %d, want %d", m.Hovered, tt.wantHovered)
			}
			if m.Band != tt.wantBand {
				t.Errorf("Band = %d, want %d", m.Band, tt.wantBand)
			}
		})
	}
}

func TestBrowseModelDownClampsAtBottom(t *testing.T) {
	m := NewBrowseModel(tier.Default())
	keys := make([]tea.KeyMsg, 20)
	for i := range keys {
		keys[i] = keyDown
	}
	m = press(m, keys...)
	if m.Hovered != 11 {
		t.Errorf("Hovered = %d, want 11", m.Hovered)
	}
}

func TestBrowseModelHoverWinsDisplay(t *testing.T) {
	m := press(NewBrowseModel(tier.Default()), keyDown, keyDown)
	if got := m.Selection().Display(); got != 2 {
		t.Errorf("Display() = %d, want hovered 2", got)
	}
	view := m.View()
	if !strings.Contains(view, "82.7%") {
		t.Errorf("view should show bankability of A (82.7%%):\n%s", view)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := NewBrowseModel(tier.Default())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowseModelHelpToggle(t *testing.T) {
	m := press(NewBrowseModel(tier.Default()), keyHelp)
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	m = press(m, keyHelp)
	if m.help.ShowAll {
		t.Error("second ? should collapse help")
	}
}

func TestBrowseModelSelectID(t *testing.T) {
	m := NewBrowseModel(tier.Default()).selectID("CC")
	if m.Selected != 9 {
		t.Errorf("Selected = %d, want 9", m.Selected)
	}
	if m.Band != 2 {
		t.Errorf("Band = %d, want 2", m.Band)
	}

	m = m.selectID("nope")
	if m.Selected != layout.None {
		t.Errorf("unknown id: Selected = %d, want none", m.Selected)
	}
	if !strings.Contains(m.View(), "Select a tier") {
		t.Error("view without selection should prompt for one")
	}
}

func TestBrowseModelView(t *testing.T) {
	m := NewBrowseModel(tier.Default())
	view := m.View()

	for _, want := range []string{"Bankability Tiers", "AAA", "CCC+", "Tier 1 Premium", "Jinko Solar", "100.0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBrowseModelEmptyCatalog(t *testing.T) {
	m := NewBrowseModel(tier.Catalog{})
	m = press(m, keyDown, keyEnter, keyTab)
	if m.Selected != layout.None || m.Hovered != layout.None {
		t.Errorf("empty catalog: selection = %+v", m.Selection())
	}
	_ = m.View()
}

func TestBrowseModelMouse(t *testing.T) {
	center := markerColumns + pyramidColumns/2
	motion := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
	}
	click := func(x, y int, b tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: b}
	}

	tests := []struct {
		name         string
		msgs         []tea.MouseMsg
		wantSelected int
		wantHovered  int
		wantBand     int
	}{
		{"motion hovers row", []tea.MouseMsg{motion(center, pyramidRow+3)}, 0, 3, 0},
		{"motion off the band clears hover", []tea.MouseMsg{motion(center, pyramidRow+3), motion(0, pyramidRow+3)}, 0, layout.None, 0},
		{"motion over title", []tea.MouseMsg{motion(center, 0)}, 0, layout.None, 0},
		{"motion below pyramid", []tea.MouseMsg{motion(center, pyramidRow+12)}, 0, layout.None, 0},
		{"left click selects", []tea.MouseMsg{click(center, pyramidRow+3, tea.MouseButtonLeft)}, 3, 3, 1},
		{"right click ignored", []tea.MouseMsg{click(center, pyramidRow+3, tea.MouseButtonRight)}, 0, layout.None, 0},
		{"click outside keeps selection", []tea.MouseMsg{click(1, pyramidRow+3, tea.MouseButtonLeft)}, 0, layout.None, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewBrowseModel(tier.Default())
			for _, msg := range tt.msgs {
				m, _ = m.Update(msg)
			}
			got := m.(BrowseModel)
			if got.Selected != tt.wantSelected {
				t.Errorf("Selected = %d, want %d", got.Selected, tt.wantSelected)
			}
			if got.Hovered != tt.wantHovered {
				t.Errorf("Hovered = %d, want %d", got.Hovered, tt.wantHovered)
			}
			if got.Band != tt.wantBand {
				t.Errorf("Band = %d, want %d", got.Band, tt.wantBand)
			}
		})
	}
}

func TestBandAtMatchesView(t *testing.T) {
	m := NewBrowseModel(tier.Default())
	m.Selected = layout.None
	lines := strings.Split(m.View(), "\n")
	for i, lvl := range m.Catalog.Levels {
		row := lines[pyramidRow+i]
		if !strings.Contains(row, lvl.DisplayLabel()) {
			t.Fatalf("row %d = %q, want band %s", pyramidRow+i, row, lvl.ID)
		}
		if got := m.bandAt(markerColumns+pyramidColumns/2, pyramidRow+i); got != i {
			t.Errorf("bandAt(center, row of %s) = %d, want %d", lvl.ID, got, i)
		}
	}
}
