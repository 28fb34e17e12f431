package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhitman/draftboard/internal/cli/formatter"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage draft boards",
	}

	cmd.AddCommand(
		newBoardAddCmd(app),
		newBoardListCmd(app),
		newBoardArchiveCmd(app),
		newBoardUnarchiveCmd(app),
		newBoardRemoveCmd(app),
		newBoardImportCmd(app),
	)

	return cmd
}

func newBoardAddCmd(app *App) *cobra.Command {
	var name, shortID string
	var season int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new draft board",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Board{
				ShortID: strings.ToUpper(shortID),
				Name:    name,
				Season:  season,
			}
			if err := app.Boards.Create(context.Background(), b); err != nil {
				return err
			}

			fmt.Printf("Created board %s [%s] with default position rules\n", b.Name, b.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (2-6 uppercase letters + 2-4 digits, e.g. FF26)")
	cmd.Flags().StringVar(&name, "name", "", "Board name")
	cmd.Flags().IntVar(&season, "season", 0, "Season year (e.g. 2026)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBoardListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List draft boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := app.Boards.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(boards) == 0 {
				fmt.Println("No boards found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatBoardList(boards))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived boards")

	return cmd
}

func newBoardArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := app.Boards.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Boards.Archive(ctx, b.ID); err != nil {
				return err
			}
			fmt.Printf("Archived board %s\n", b.DisplayID())
			return nil
		},
	}
}

func newBoardUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ID",
		Short: "Unarchive a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := app.Boards.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Boards.Unarchive(ctx, b.ID); err != nil {
				return err
			}
			fmt.Printf("Unarchived board %s\n", b.DisplayID())
			return nil
		},
	}
}

func newBoardRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a board and all its players, picks and rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := app.Boards.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Boards.Delete(ctx, b.ID, force); err != nil {
				return err
			}
			fmt.Printf("Removed board %s\n", b.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the board is not archived")

	return cmd
}

func newBoardImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a board from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportBoard(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported board %s [%s] — %d players, %d position rules\n",
				result.Board.Name, result.Board.ShortID,
				result.PlayerCount, result.RuleCount)
			return nil
		},
	}
}
