package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/media"
)

// pickCommand creates the pick command for interactive selection.
func (c *CLI) pickCommand() *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   "pick [directory]",
		Short: "Select media interactively, then launch",
		Long: `Select media interactively, then launch.

Scans the directory (default: the current one) for supported media and shows
a list. Space toggles entries, enter launches with the selection; with
nothing toggled, enter launches the entry under the cursor.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runPick(cmd.Context(), cmd, dir, flags)
		},
	}

	addLaunchFlags(cmd, &flags)

	return cmd
}

// runPick scans the directory, lets the user select, and hands the selection
// to the regular launch path.
func (c *CLI) runPick(ctx context.Context, cmd *cobra.Command, dir string, f launchFlags) error {
	assets, err := media.Discover([]string{dir}, func(format string, args ...any) {
		c.Logger.Debug(fmt.Sprintf(format, args...))
	})
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		printWarning("No importable media in %s", dir)
		return nil
	}

	p := tea.NewProgram(newPickModel(assets))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("selection: %w", err)
	}

	m, ok := finalModel.(pickModel)
	if !ok || !m.confirmed {
		printDetail("No selection made")
		return nil
	}

	return c.runOpen(ctx, cmd, m.Selection(), f)
}
