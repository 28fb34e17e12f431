package cli

import (
	"github.com/mwhitman/draftboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Boards  service.BoardService
	Players service.PlayerService
	Rules   service.RuleService
	Draft   service.DraftService
	Matrix  service.MatrixService
	Advise  service.AdviseService
	Summary service.SummaryService
	Import  service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// pickers are skipped when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "draftboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "draftboard",
		Short: "Fantasy football draft-day decision board",
	}

	root.AddCommand(
		newBoardCmd(app),
		newPlayerCmd(app),
		newTakeCmd(app),
		newMarkCmd(app),
		newUndoCmd(app),
		newSlipCmd(app),
		newMatrixCmd(app),
		newAdviseCmd(app),
		newSummaryCmd(app),
		newPicksCmd(app),
		newShellCmd(app),
	)

	return root
}
