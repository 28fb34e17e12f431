package formatter

import (
	"fmt"
	"strings"

	"github.com/mwhitman/draftboard/internal/contract"
)

// FormatAdvice formats an AdviseResponse: positions ranked by pick urgency,
// the top recommendation highlighted first.
func FormatAdvice(resp *contract.AdviseResponse) string {
	var b strings.Builder

	if rec := firstPickable(resp.Advice); rec != nil {
		b.WriteString(fmt.Sprintf("%s %s",
			StyleGreen.Render("▶ Pick next:"),
			Bold(string(rec.Position))))
		if rec.Top != nil {
			b.WriteString(Dim(" — ") + StyleFg.Render(rec.Top.Name) +
				Dim(fmt.Sprintf(" (%s pts)", FormatPoints(rec.Top.ProjectedPts))))
		}
		b.WriteString("\n\n")
	}

	headers := []string{"POS", "SCORE", "DROP", "SQUAD", "TOP", "NOTE"}
	rows := make([][]string, 0, len(resp.Advice))
	for _, a := range resp.Advice {
		score := Dim("--")
		if !a.Skipped && a.HasDropoff {
			score = Bold(FormatPoints(a.Score))
		}
		drop := Dim("n/a")
		if a.HasDropoff {
			drop = dropoffStyled(a.Dropoff)
		}
		top := Dim("--")
		if a.Top != nil {
			top = StyleFg.Render(a.Top.Name)
		}
		note := ""
		if a.Reason != "" {
			note = Dim(a.Reason)
		}

		rows = append(rows, []string{
			PositionBadge(a.Position),
			score,
			drop,
			SquadFill(a.SquadCount, a.RosterLimit),
			top,
			note,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox(fmt.Sprintf("Advise — %s", resp.BoardName), b.String())
}

func firstPickable(advice []contract.PositionAdvice) *contract.PositionAdvice {
	for i := range advice {
		if !advice[i].Skipped && advice[i].Top != nil {
			return &advice[i]
		}
	}
	return nil
}
