package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwhitman/draftboard/internal/cli/formatter"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/watch"
	"github.com/spf13/cobra"
)

func newPlayerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the player pool",
	}

	cmd.AddCommand(
		newPlayerAddCmd(app),
		newPlayerListCmd(app),
		newPlayerSearchCmd(app),
		newPlayerRemoveCmd(app),
		newPlayerImportCmd(app),
	)

	return cmd
}

func newPlayerAddCmd(app *App) *cobra.Command {
	var boardRef, name, team, posStr string
	var pts float64
	var bye int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a single player to a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}
			pos, err := domain.ParsePosition(posStr)
			if err != nil {
				return err
			}

			p := &domain.Player{
				BoardID:      b.ID,
				Name:         name,
				Team:         team,
				Position:     pos,
				ProjectedPts: pts,
			}
			if cmd.Flags().Changed("bye") {
				p.ByeWeek = &bye
			}

			if err := app.Players.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Added %s (%s %s, %.1f pts) to %s\n", p.Name, p.Team, p.Position, p.ProjectedPts, b.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&team, "team", "", "NFL team abbreviation")
	cmd.Flags().StringVar(&posStr, "pos", "", "Position (QB, RB, WR, TE, K, DST)")
	cmd.Flags().Float64Var(&pts, "pts", 0, "Projected season points")
	cmd.Flags().IntVar(&bye, "bye", 0, "Bye week (1-18)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

func newPlayerListCmd(app *App) *cobra.Command {
	var boardRef, posStr string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, best projection first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			var players []*domain.Player
			if posStr != "" {
				pos, err := domain.ParsePosition(posStr)
				if err != nil {
					return err
				}
				players, err = app.Players.ListAvailableByPosition(ctx, b.ID, pos)
				if err != nil {
					return err
				}
			} else {
				players, err = app.Players.ListByBoard(ctx, b.ID)
				if err != nil {
					return err
				}
				if !all {
					available := players[:0]
					for _, p := range players {
						if p.Available() {
							available = append(available, p)
						}
					}
					players = available
				}
			}

			if len(players) == 0 {
				fmt.Println("No players found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPlayerList(players))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().StringVar(&posStr, "pos", "", "Limit to one position")
	cmd.Flags().BoolVar(&all, "all", false, "Include drafted and squad players")

	return cmd
}

func newPlayerSearchCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search players by name (last name works)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			players, err := app.Players.SearchByName(ctx, b.ID, args[0])
			if err != nil {
				return err
			}
			if len(players) == 0 {
				fmt.Printf("No player matches %q.\n", args[0])
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPlayerList(players))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}

func newPlayerRemoveCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "remove QUERY",
		Short: "Remove a player from the pool entirely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			p, err := resolvePlayer(ctx, app, b.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Players.Delete(ctx, p.ID); err != nil {
				return err
			}

			fmt.Printf("Removed %s (%s %s) from the pool\n", p.Name, p.Team, p.Position)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}

func newPlayerImportCmd(app *App) *cobra.Command {
	var boardRef string
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import projections from a CSV sheet",
		Long: "Import projections from a CSV sheet, replacing the board's available players.\n" +
			"Drafted players and your squad are never touched. With --watch the file is\n" +
			"re-imported every time it changes, so an updating sheet stays live during the draft.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			runImport := func() error {
				result, err := app.Import.ImportProjectionsCSV(ctx, b.ID, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d players into %s (replaced %d available)\n",
					result.Imported, b.DisplayID(), result.Removed)
				if result.Skipped > 0 {
					fmt.Printf("Skipped %d already off the board\n", result.Skipped)
				}
				return nil
			}

			if err := runImport(); err != nil {
				return err
			}
			if !watchFile {
				return nil
			}

			watcher, err := watch.NewFileWatcher()
			if err != nil {
				return err
			}
			defer watcher.Stop()

			if err := watcher.Watch(args[0], func() {
				if err := runImport(); err != nil {
					fmt.Fprintf(os.Stderr, "re-import failed: %v\n", err)
				}
			}); err != nil {
				return err
			}

			fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", args[0])
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "Re-import whenever the file changes")

	return cmd
}
