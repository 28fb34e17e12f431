package cli

import (
	"context"
	"fmt"

	"github.com/mwhitman/draftboard/internal/cli/formatter"
	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/spf13/cobra"
)

func newMatrixCmd(app *App) *cobra.Command {
	var boardRef string
	var positions []string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show the decision matrix",
		Long: "For every position: the best available player, the best player expected\n" +
			"to survive the slip, and the dropoff between them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			req := contract.MatrixRequest{BoardID: b.ID}
			for _, s := range positions {
				pos, err := domain.ParsePosition(s)
				if err != nil {
					return err
				}
				req.Positions = append(req.Positions, pos)
			}

			resp, err := app.Matrix.GetMatrix(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatMatrix(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().StringSliceVar(&positions, "pos", nil, "Limit to these positions")

	return cmd
}

func newAdviseCmd(app *App) *cobra.Command {
	var boardRef string
	var limit int

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Rank positions by pick urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			resp, err := app.Advise.Advise(ctx, contract.AdviseRequest{BoardID: b.ID, Limit: limit})
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatAdvice(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N positions (0 = all)")

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var boardRef string
	var recent int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show squad fill, pool sizes and recent picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b, err := resolveBoard(ctx, app, boardRef)
			if err != nil {
				return err
			}

			resp, err := app.Summary.GetSummary(ctx, contract.SummaryRequest{BoardID: b.ID, RecentPicks: recent})
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&boardRef, "board", "", "Board short ID or UUID")
	cmd.Flags().IntVar(&recent, "recent", 10, "Number of recent picks to show (0 = all)")

	return cmd
}
