package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand starts the interactive tier browser.
func (c *CLI) browseCommand() *cobra.Command {
	var selected string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore the tiers interactively in the terminal",
		Long: `Explore the tiers interactively.

Move the hover with ↑/↓ or the mouse, select with enter or a click, switch
the manufacturer list between groups with tab and shift+tab. Press ? for all
keys and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			m := NewBrowseModel(cat)
			if selected != "" {
				m = m.selectID(selected)
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&selected, "selected", "", "level id selected at start")
	_ = cmd.RegisterFlagCompletionFunc("selected", c.completeLevelIDs)
	return cmd
}
