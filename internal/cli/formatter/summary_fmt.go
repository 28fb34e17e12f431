package formatter

import (
	"fmt"
	"strings"

	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
)

// FormatSummary formats a SummaryResponse: squad fill per position, the
// remaining pool, and the tail of the pick log.
func FormatSummary(resp *contract.SummaryResponse) string {
	var b strings.Builder

	headers := []string{"POS", "SQUAD", "LEFT"}
	rows := make([][]string, 0, len(resp.Positions))
	for _, ps := range resp.Positions {
		rows = append(rows, []string{
			PositionBadge(ps.Position),
			SquadFill(ps.SquadCount, ps.RosterLimit),
			fmt.Sprintf("%d", ps.Available),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s available · %s picks logged · %s mine\n",
		Bold(fmt.Sprintf("%d", resp.TotalAvailable)),
		Bold(fmt.Sprintf("%d", resp.TotalPicks)),
		StyleBlue.Render(fmt.Sprintf("%d", resp.MyPicks))))

	if len(resp.RecentPicks) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recent picks") + "\n")
		for _, p := range resp.RecentPicks {
			b.WriteString(formatPickLine(p) + "\n")
		}
	}

	return RenderBox(fmt.Sprintf("%s [%s]", resp.BoardName, resp.BoardShortID), b.String())
}

func formatPickLine(p contract.PickEntry) string {
	kind := Dim("other")
	if p.Kind == domain.PickMine {
		kind = StyleBlue.Render("mine ★")
	}
	return fmt.Sprintf("  %s %s %s %s %s",
		Dim(fmt.Sprintf("#%d", p.Overall)),
		PositionBadge(p.Position),
		StyleFg.Render(p.PlayerName),
		kind,
		Dim(HumanTimestamp(p.PickedAt)))
}
