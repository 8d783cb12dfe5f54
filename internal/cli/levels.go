package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// levelsCommand lists the tiers of the catalog.
func (c *CLI) levelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List tiers with their group and bankability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), levelsTable(cat))
			return nil
		},
	}
}

// levelsTable renders one row per level, top of the pyramid first.
func levelsTable(c tier.Catalog) string {
	rows := make([][]string, 0, c.Len())
	for i := range c.Levels {
		d := c.DetailAt(i)
		group := d.Group
		if group == "" {
			group = "—"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.DisplayLabel(),
			group,
			fmt.Sprintf("%5.1f%%", d.Bankability),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Tier", "Group", "Bankability").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= c.Len() {
				return base
			}
			switch col {
			case 0:
				return base.Foreground(colorDim)
			case 1:
				return base.Bold(true).Foreground(lipgloss.Color(c.Levels[row].Color))
			case 2:
				if g, ok := c.GroupOf(row); ok {
					return base.Foreground(lipgloss.Color(g.Color))
				}
			}
			return base
		})

	return t.Render()
}
