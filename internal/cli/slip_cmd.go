package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mwhitman/draftboard/internal/cli/formatter"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/spf13/cobra"
)

func newSlipCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slip",
		Short: "Manage per-position slips and roster limits",
		Long: "The slip of a position is how many players at that position you expect\n" +
			"to be drafted before your next turn. The matrix uses it to show the best\n" +
			"player likely to survive until you pick again.",
	}

	cmd.AddCommand(
		newSlipListCmd(app),
		newSlipSetCmd(app),
		newSlipLimitCmd(app),
	)

	return cmd
}

func newSlipListCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all position rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			rules, err := app.Rules.ListByBoard(ctx, b.ID)
			if err != nil {
				return err
			}

			headers := []string{"POS", "SLIP", "LIMIT"}
			rows := make([][]string, 0, len(rules))
			for _, r := range rules {
				rows = append(rows, []string{
					formatter.PositionBadge(r.Position),
					fmt.Sprintf("%d", r.Slip),
					fmt.Sprintf("%d", r.RosterLimit),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}

func newSlipSetCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "set POS N",
		Short: "Set the slip for a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			pos, err := domain.ParsePosition(args[0])
			if err != nil {
				return err
			}
			slip, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid slip %q: expected a number", args[1])
			}

			if err := app.Rules.SetSlip(ctx, b.ID, pos, slip); err != nil {
				return err
			}

			fmt.Printf("Set %s slip to %d on %s\n", pos, slip, b.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}

func newSlipLimitCmd(app *App) *cobra.Command {
	var boardRef string

	cmd := &cobra.Command{
		Use:   "limit POS N",
		Short: "Set the roster limit for a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			pos, err := domain.ParsePosition(args[0])
			if err != nil {
				return err
			}
			limit, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: expected a number", args[1])
			}

			if err := app.Rules.SetRosterLimit(ctx, b.ID, pos, limit); err != nil {
				return err
			}

			fmt.Printf("Set %s roster limit to %d on %s\n", pos, limit, b.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")

	return cmd
}
