package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tierpyramid/pkg/render/pyramid/layout"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// pyramidColumns is the terminal width of the widest band.
const pyramidColumns = 44

// Screen position of the first band row: below the title and a blank line,
// after the two-column selection marker.
const (
	pyramidRow    = 2
	markerColumns = 2
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// Key bindings
// =============================================================================

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	NextBand key.Binding
	PrevBand key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "hover up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "hover down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		NextBand: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next band"),
		),
		PrevBand: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev band"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.NextBand, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NextBand, k.PrevBand},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// BrowseModel - Interactive pyramid browser
// =============================================================================

// BrowseModel is the bubbletea model behind `tierpyramid browse`.
// Selection and hover are plain indexes; the pyramid is recomputed from them
// on every View, exactly like the SVG renderer does.
type BrowseModel struct {
	Catalog  tier.Catalog
	Selected int // level index, or layout.None
	Hovered  int // level index, or layout.None
	Band     int // index into Catalog.Groups for the brand list

	keys browseKeyMap
	help help.Model
	bar  progress.Model
}

// NewBrowseModel starts with the first tier selected.
func NewBrowseModel(c tier.Catalog) BrowseModel {
	sel := layout.None
	if c.Len() > 0 {
		sel = 0
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return BrowseModel{
		Catalog:  c,
		Selected: sel,
		Hovered:  layout.None,
		keys:     defaultBrowseKeys(),
		help:     help.New(),
		bar:      bar,
	}
}

// selectID selects the level with the given id. Unknown ids clear the
// selection.
func (m BrowseModel) selectID(id string) BrowseModel {
	m.Selected = m.Catalog.Index(id)
	if g := m.groupIndexOf(m.Selected); g >= 0 {
		m.Band = g
	}
	return m
}

// Selection returns the current selection.
func (m BrowseModel) Selection() layout.Selection {
	return layout.Selection{Selected: m.Selected, Hovered: m.Hovered}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := m.Catalog.Len()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if n > 0 {
				m.Hovered = max(m.cursor()-1, 0)
			}
		case key.Matches(msg, m.keys.Down):
			if n > 0 {
				m.Hovered = min(m.cursor()+1, n-1)
			}
		case key.Matches(msg, m.keys.Select):
			if m.Hovered != layout.None {
				m.Selected = m.Hovered
				m.Hovered = layout.None
				if g := m.groupIndexOf(m.Selected); g >= 0 {
					m.Band = g
				}
			}
		case key.Matches(msg, m.keys.NextBand):
			if len(m.Catalog.Groups) > 0 {
				m.Band = (m.Band + 1) % len(m.Catalog.Groups)
			}
		case key.Matches(msg, m.keys.PrevBand):
			if g := len(m.Catalog.Groups); g > 0 {
				m.Band = (m.Band - 1 + g) % g
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		i := m.bandAt(msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.Hovered = i
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && i != layout.None:
			m.Selected = i
			m.Hovered = i
			if g := m.groupIndexOf(i); g >= 0 {
				m.Band = g
			}
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// bandAt returns the level whose band is drawn at screen cell (x, y), or
// layout.None outside every band.
func (m BrowseModel) bandAt(x, y int) int {
	i := y - pyramidRow
	if i < 0 || i >= m.Catalog.Len() {
		return layout.None
	}
	l := layout.Compute(m.Catalog.Levels, m.Catalog.Groups, layout.DefaultConfig(), layout.NoSelection())
	if i >= len(l.Bands) {
		return layout.None
	}
	cols := bandColumns(l.Bands[i], l.Config.TotalWidth)
	gap := pyramidColumns - cols
	left := markerColumns + gap - int(math.Round(float64(gap)/2))
	if x < left || x >= left+cols {
		return layout.None
	}
	return i
}

func bandColumns(b layout.Band, total float64) int {
	return int(math.Round(b.WidthBottom / total * pyramidColumns))
}

// cursor is where hover movement starts from.
func (m BrowseModel) cursor() int {
	if d := m.Selection().Display(); d != layout.None {
		return d
	}
	return 0
}

func (m BrowseModel) groupIndexOf(i int) int {
	for gi, g := range m.Catalog.Groups {
		if g.Contains(i) {
			return gi
		}
	}
	return -1
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Bankability Tiers"))
	b.WriteString("\n\n")

	pyramid := m.viewPyramid()
	card := m.viewDetail()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pyramid, "  ", card))
	b.WriteString("\n\n")
	b.WriteString(m.viewBrands())
	b.WriteString("\n\n")
	if m.Catalog.Source != "" {
		b.WriteString(listDimStyle.Width(pyramidColumns * 2).Render(m.Catalog.Source))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// viewPyramid draws one terminal row per band, as wide as the band's
// bottom edge, followed by the group name on the group's first row.
func (m BrowseModel) viewPyramid() string {
	l := layout.Compute(m.Catalog.Levels, m.Catalog.Groups, layout.DefaultConfig(), m.Selection())
	total := l.Config.TotalWidth

	rows := make([]string, 0, len(l.Bands))
	for _, band := range l.Bands {
		cols := bandColumns(band, total)
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(band.Color)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Width(cols).
			Align(lipgloss.Center)
		if band.State.Opacity < 1 {
			style = style.Faint(true)
		}

		marker := "  "
		switch {
		case band.State.Selected:
			marker = listSelectedStyle.Render("▸ ")
		case band.State.Hovered:
			marker = listDimStyle.Render("› ")
		}

		row := lipgloss.PlaceHorizontal(pyramidColumns, lipgloss.Center, style.Render(band.Label))
		for _, br := range l.Brackets {
			if br.StartLevel == band.Index {
				row += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(br.Color)).Render("┐ "+strings.Join(br.LabelLines, " "))
			} else if br.EndLevel > band.Index && br.StartLevel < band.Index {
				row += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(br.Color)).Render("│")
			}
		}
		rows = append(rows, marker+row)
	}
	return strings.Join(rows, "\n")
}

// viewDetail renders the card of the displayed level.
func (m BrowseModel) viewDetail() string {
	i := m.Selection().Display()
	if i == layout.None || i >= m.Catalog.Len() {
		return cardStyle.Render(listDimStyle.Render("Select a tier"))
	}
	d := m.Catalog.DetailAt(i)

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(d.Color)).Render(d.DisplayLabel())
	b.WriteString(title)
	if d.Premium {
		b.WriteString("  " + StyleSuccess.Render("premium"))
	}
	b.WriteString("\n")
	b.WriteString(listNormalStyle.Width(36).Render(d.Description))
	b.WriteString("\n\n")
	if d.Group != "" {
		b.WriteString(listDimStyle.Render("Group  ") + lipgloss.NewStyle().Foreground(lipgloss.Color(d.GroupColor)).Render(d.Group))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render("Bankability  ") + StyleNumber.Render(fmt.Sprintf("%.1f%%", d.Bankability)))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(d.Bankability / 100))
	return cardStyle.Render(b.String())
}

// viewBrands lists the manufacturers of the filtered band.
func (m BrowseModel) viewBrands() string {
	if len(m.Catalog.Groups) == 0 {
		return ""
	}
	var b strings.Builder
	for gi, g := range m.Catalog.Groups {
		if gi > 0 {
			b.WriteString(listDimStyle.Render(" · "))
		}
		if gi == m.Band {
			b.WriteString(listSelectedStyle.Render(g.Name))
		} else {
			b.WriteString(listDimStyle.Render(g.Name))
		}
	}
	b.WriteString("\n")

	brands := m.Catalog.BrandsFor(m.Catalog.Groups[m.Band].Name)
	if len(brands) == 0 {
		b.WriteString(listDimStyle.Render("  no manufacturers listed"))
		return b.String()
	}
	names := make([]string, len(brands))
	for i, br := range brands {
		names[i] = br.Name
	}
	b.WriteString("  " + listNormalStyle.Render(strings.Join(names, ", ")))
	return b.String()
}
