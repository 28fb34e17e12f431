package formatter

import (
	"fmt"
	"strings"

	"github.com/mwhitman/draftboard/internal/contract"
)

// FormatMatrix formats a MatrixResponse into the decision dashboard: one row
// per position showing squad fill, slip, the top player, the expected
// survivor at the slip, and the dropoff between them.
func FormatMatrix(resp *contract.MatrixResponse) string {
	var b strings.Builder

	headers := []string{"POS", "SQUAD", "SLIP", "LEFT", "TOP", "PTS", "LOWER", "PTS", "DROP"}
	rows := make([][]string, 0, len(resp.Columns))

	for _, col := range resp.Columns {
		top := Dim("--")
		topPts := Dim("--")
		if col.Top != nil {
			top = StyleFg.Render(col.Top.Name)
			topPts = Bold(FormatPoints(col.Top.ProjectedPts))
		}

		lower := Dim("--")
		lowerPts := Dim("--")
		if col.Lower != nil {
			lower = StyleFg.Render(col.Lower.Name)
			lowerPts = StyleFg.Render(FormatPoints(col.Lower.ProjectedPts))
		}

		drop := Dim("n/a")
		if col.HasDropoff {
			drop = dropoffStyled(col.Dropoff)
		}

		rows = append(rows, []string{
			PositionBadge(col.Position),
			SquadFill(col.SquadCount, col.RosterLimit),
			fmt.Sprintf("%d", col.Slip),
			fmt.Sprintf("%d", col.Available),
			top,
			topPts,
			lower,
			lowerPts,
			drop,
		})
	}

	b.WriteString(RenderTable(headers, rows))

	return RenderBox(fmt.Sprintf("Matrix — %s", resp.BoardName), b.String())
}

// dropoffStyled colors a dropoff by how painful waiting would be.
func dropoffStyled(drop float64) string {
	text := FormatPoints(drop)
	switch {
	case drop >= 40:
		return StyleRed.Render(text)
	case drop >= 15:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}
