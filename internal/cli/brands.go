package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// brandsCommand lists the manufacturers of a tier group.
func (c *CLI) brandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "brands [band]",
		Short: "List manufacturers of a tier group (default: the first group)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			band := ""
			if len(args) == 1 {
				band = args[0]
			}
			fmt.Fprint(cmd.OutOrStdout(), brandList(cat, band))
			return nil
		},
	}
}

// brandList renders the brands of band, or of the first group when band is
// empty. Unknown bands list nothing.
func brandList(c tier.Catalog, band string) string {
	if band == "" && len(c.Groups) > 0 {
		band = c.Groups[0].Name
	}

	title := StyleTitle
	if g, ok := c.Group(band); ok {
		title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Color))
	}

	var b strings.Builder
	b.WriteString(title.Render(band) + "\n")
	brands := c.BrandsFor(band)
	if len(brands) == 0 {
		b.WriteString(StyleDim.Render("  no manufacturers listed") + "\n")
		if names := c.GroupNames(); len(names) > 0 {
			b.WriteString(StyleDim.Render("  groups: "+strings.Join(names, ", ")) + "\n")
		}
		return b.String()
	}
	for _, br := range brands {
		b.WriteString("  " + StyleDim.Render(statusInfo.icon) + " " + br.Name + "\n")
	}
	return b.String()
}
