package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhitman/draftboard/internal/cli/formatter"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/spf13/cobra"
)

func newTakeCmd(app *App) *cobra.Command {
	var boardRef, note string

	cmd := &cobra.Command{
		Use:   "take QUERY...",
		Short: "Draft a player onto your squad",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTake(app, boardRef, strings.Join(args, " "), domain.PickMine, note)
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().StringVar(&note, "note", "", "Note to attach to the pick")

	return cmd
}

func newMarkCmd(app *App) *cobra.Command {
	var boardRef, note string

	cmd := &cobra.Command{
		Use:   "mark QUERY...",
		Short: "Mark a player as drafted by another team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTake(app, boardRef, strings.Join(args, " "), domain.PickOther, note)
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().StringVar(&note, "note", "", "Note to attach to the pick")

	return cmd
}

func runTake(app *App, boardRef, query string, kind domain.PickKind, note string) error {
	ctx := context.Background()
	b, err := resolveBoard(ctx, app, boardRef)
	if err != nil {
		return err
	}

	p, err := resolvePlayer(ctx, app, b.ID, query)
	if err != nil {
		return err
	}

	pick, err := app.Draft.Take(ctx, p.ID, kind, note)
	if err != nil {
		return err
	}

	if kind == domain.PickMine {
		fmt.Printf("Pick #%d: %s (%s %s) joins your squad\n", pick.Overall, p.Name, p.Team, p.Position)
	} else {
		fmt.Printf("Pick #%d: %s (%s %s) is off the board\n", pick.Overall, p.Name, p.Team, p.Position)
	}
	return nil
}

func newUndoCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the most recent pick",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			pick, err := app.Draft.Undo(ctx, b.ID)
			if err != nil {
				return err
			}

			fmt.Printf("Undid pick #%d: %s is back on the board\n", pick.Overall, pick.PlayerName)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}

func newPicksCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "picks",
		Short: "Show the full draft log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			picks, err := app.Draft.ListPicks(ctx, b.ID)
			if err != nil {
				return err
			}
			if len(picks) == 0 {
				fmt.Println("No picks recorded yet.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPickLog(picks))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}
