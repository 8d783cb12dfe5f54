package tier

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tierpyramid/pkg/errors"
)

// NoLevel is the index returned for ids that are not part of a catalog.
const NoLevel = -1

// Level is one rung of the classification scale.
type Level struct {
	ID          string `json:"id" toml:"id" yaml:"id"`
	Label       string `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Color       string `json:"color" toml:"color" yaml:"color"`
}

// DisplayLabel returns the label, falling back to the id.
func (l Level) DisplayLabel() string {
	if l.Label != "" {
		return l.Label
	}
	return l.ID
}

// Group is a contiguous run of levels [StartLevel, EndLevel) shown under
// one bracket.
type Group struct {
	Name       string   `json:"name" toml:"name" yaml:"name"`
	LabelLines []string `json:"label_lines" toml:"label_lines" yaml:"label_lines"`
	StartLevel int      `json:"start_level" toml:"start_level" yaml:"start_level"`
	EndLevel   int      `json:"end_level" toml:"end_level" yaml:"end_level"`
	Color      string   `json:"color" toml:"color" yaml:"color"`
}

// Contains reports whether level index i falls inside the group.
func (g Group) Contains(i int) bool { return i >= g.StartLevel && i < g.EndLevel }

// Len returns the number of levels in the group.
func (g Group) Len() int { return g.EndLevel - g.StartLevel }

// Brand is an example manufacturer listed under a group.
type Brand struct {
	Name string `json:"name" toml:"name" yaml:"name"`
}

// Catalog is the complete, immutable data set behind a pyramid.
type Catalog struct {
	Source string             `json:"source,omitempty" toml:"source,omitempty" yaml:"source,omitempty"`
	Levels []Level            `json:"levels" toml:"levels" yaml:"levels"`
	Groups []Group            `json:"groups" toml:"groups" yaml:"groups"`
	Brands map[string][]Brand `json:"brands,omitempty" toml:"brands,omitempty" yaml:"brands,omitempty"`
}

// Len returns the number of levels.
func (c Catalog) Len() int { return len(c.Levels) }

// Index returns the position of the level with the given id, or NoLevel.
func (c Catalog) Index(id string) int {
	if id == "" {
		return NoLevel
	}
	return slices.IndexFunc(c.Levels, func(l Level) bool { return l.ID == id })
}

// Level returns the level with the given id.
func (c Catalog) Level(id string) (Level, bool) {
	i := c.Index(id)
	if i == NoLevel {
		return Level{}, false
	}
	return c.Levels[i], true
}

// GroupOf returns the group containing level index i.
func (c Catalog) GroupOf(i int) (Group, bool) {
	for _, g := range c.Groups {
		if g.Contains(i) {
			return g, true
		}
	}
	return Group{}, false
}

// Group returns the group with the given name.
func (c Catalog) Group(name string) (Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// GroupNames returns the group names in display order.
func (c Catalog) GroupNames() []string {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Name
	}
	return names
}

// BrandsFor returns the manufacturers listed under a group. Unknown groups
// yield an empty list.
func (c Catalog) BrandsFor(group string) []Brand {
	return slices.Clone(c.Brands[group])
}

// Bankability returns the bankability percentage of level index i in this
// catalog, or 0 when i is out of range.
func (c Catalog) Bankability(i int) float64 {
	if i < 0 || i >= len(c.Levels) {
		return 0
	}
	return Bankability(i, len(c.Levels))
}

// Bankability maps level index 0 to 100% and the last of n levels to 5%,
// linearly in between. A single-level scale is 100%.
func Bankability(index, n int) float64 {
	if n <= 1 {
		return 100
	}
	return 100 - (float64(index)/float64(n-1))*95
}

// Detail is everything a detail panel shows for one level.
type Detail struct {
	Level
	Index       int     `json:"index"`
	Group       string  `json:"group,omitempty"`
	GroupColor  string  `json:"group_color,omitempty"`
	Bankability float64 `json:"bankability"`
	Premium     bool    `json:"premium"`
}

// Detail returns the detail view for a level id.
func (c Catalog) Detail(id string) (Detail, bool) {
	i := c.Index(id)
	if i == NoLevel {
		return Detail{}, false
	}
	return c.DetailAt(i), true
}

// DetailAt returns the detail view for level index i. i must be in range.
func (c Catalog) DetailAt(i int) Detail {
	d := Detail{
		Level:       c.Levels[i],
		Index:       i,
		Bankability: c.Bankability(i),
	}
	if g, ok := c.GroupOf(i); ok {
		d.Group = g.Name
		d.GroupColor = g.Color
		d.Premium = len(c.Groups) > 0 && c.Groups[0].Name == g.Name
	}
	return d
}

// Validate checks the catalog invariants: unique well-formed level ids,
// hex colors, and groups that partition [0, N) in order.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		if err := errors.ValidateLevelID(l.ID); err != nil {
			return err
		}
		if seen[l.ID] {
			return errors.New(errors.ErrCodeInvalidCatalog, "duplicate level id %q", l.ID)
		}
		seen[l.ID] = true
		if err := errors.ValidateHexColor(l.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "level %d (%s)", i, l.ID)
		}
	}

	if err := validatePartition(c.Groups, len(c.Levels)); err != nil {
		return err
	}

	for name := range c.Brands {
		if _, ok := c.Group(name); !ok {
			return errors.New(errors.ErrCodeInvalidCatalog, "brands listed under unknown group %q", name)
		}
	}
	return nil
}

func validatePartition(groups []Group, n int) error {
	if len(groups) == 0 {
		return nil
	}
	next := 0
	names := make(map[string]bool, len(groups))
	for i, g := range groups {
		if g.Name == "" {
			return errors.New(errors.ErrCodeInvalidCatalog, "group %d has no name", i)
		}
		if names[g.Name] {
			return errors.New(errors.ErrCodeInvalidCatalog, "duplicate group name %q", g.Name)
		}
		names[g.Name] = true
		if err := errors.ValidateHexColor(g.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "group %q", g.Name)
		}
		if g.StartLevel != next {
			return errors.New(errors.ErrCodeInvalidCatalog, "group %q starts at %d, want %d", g.Name, g.StartLevel, next)
		}
		if g.EndLevel <= g.StartLevel {
			return errors.New(errors.ErrCodeInvalidCatalog, "group %q is empty (%d..%d)", g.Name, g.StartLevel, g.EndLevel)
		}
		next = g.EndLevel
	}
	if next != n {
		return errors.New(errors.ErrCodeInvalidCatalog, "groups end at %d, want %d levels", next, n)
	}
	return nil
}

// String implements fmt.Stringer for log output.
func (c Catalog) String() string {
	return fmt.Sprintf("catalog(%d levels, %d groups)", len(c.Levels), len(c.Groups))
}
