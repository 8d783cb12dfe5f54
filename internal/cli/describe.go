package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

const (
	detailWidth = 56
	barWidth    = 32
)

// describeCommand prints the detail card of one tier.
func (c *CLI) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe ID",
		Short: "Show the description, group and bankability of a tier",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return c.completeLevelIDs(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			d, ok := cat.Detail(args[0])
			if !ok {
				return errors.New(errors.ErrCodeLevelNotFound, "unknown tier %q (try 'tierpyramid levels')", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), detailCard(d, detailWidth))
			if cat.Source != "" {
				fmt.Fprintln(cmd.OutOrStdout(), sourceNote(cat.Source, detailWidth))
			}
			return nil
		},
	}
}

// detailCard renders a level as a bordered card with a bankability bar.
func detailCard(d tier.Detail, width int) string {
	color := lipgloss.Color(d.Color)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(d.DisplayLabel()))
	if d.Group != "" {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(d.GroupColor)).Render(d.Group))
	}
	if d.Premium {
		b.WriteString("  " + StyleSuccess.Render("premium"))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width - 4).Render(d.Description))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("Bankability "))
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%.1f%%", d.Bankability)))
	b.WriteString("\n")
	b.WriteString(bankabilityBar(d, barWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

// bankabilityBar draws the bankability as a static progress bar filled in
// the level color.
func bankabilityBar(d tier.Detail, width int) string {
	bar := progress.New(
		progress.WithSolidFill(d.Color),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(d.Bankability / 100)
}

func sourceNote(source string, width int) string {
	return StyleDim.Width(width).Render(source)
}

// completeLevelIDs offers the ids of the loaded catalog. Shell completion
// skips the persistent pre-run, so the config is read here.
func (c *CLI) completeLevelIDs(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	if err := c.applyConfig(); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids := make([]string, 0, cat.Len())
	for _, l := range cat.Levels {
		ids = append(ids, l.ID)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
