package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell with board context and autocomplete",
		Long: `Start an interactive shell session with an active board context,
autocomplete, and styled output. Commands apply to the active board
without repeating --board.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	p := tea.NewProgram(newShellModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
