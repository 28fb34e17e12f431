package formatter

import (
	"fmt"

	"github.com/mwhitman/draftboard/internal/domain"
)

// FormatBoardList renders the board list table.
func FormatBoardList(boards []*domain.Board) string {
	headers := []string{"ID", "NAME", "SEASON", "STATUS", "UUID"}
	rows := make([][]string, 0, len(boards))
	for _, b := range boards {
		rows = append(rows, []string{
			Bold(b.DisplayID()),
			StyleFg.Render(b.Name),
			fmt.Sprintf("%d", b.Season),
			BoardStatusPill(b.Status),
			TruncID(b.ID),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPlayerList renders a player table, ranked as given.
func FormatPlayerList(players []*domain.Player) string {
	headers := []string{"#", "NAME", "TEAM", "POS", "BYE", "PTS", "STATUS", "UUID"}
	rows := make([][]string, 0, len(players))
	for i, p := range players {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			StyleFg.Render(p.Name),
			Dim(p.Team),
			PositionBadge(p.Position),
			ByeWeek(p.ByeWeek),
			Bold(FormatPoints(p.ProjectedPts)),
			PlayerStatusPill(p.Status),
			TruncID(p.ID),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPickLog renders the full draft log.
func FormatPickLog(picks []*domain.Pick) string {
	headers := []string{"OVERALL", "POS", "PLAYER", "KIND", "WHEN", "NOTE"}
	rows := make([][]string, 0, len(picks))
	for _, p := range picks {
		kind := Dim(string(p.Kind))
		if p.Mine() {
			kind = StyleBlue.Render("mine ★")
		}
		note := ""
		if p.Note != "" {
			note = Dim(p.Note)
		}
		rows = append(rows, []string{
			Bold(fmt.Sprintf("#%d", p.Overall)),
			PositionBadge(p.Position),
			StyleFg.Render(p.PlayerName),
			kind,
			Dim(HumanTimestamp(p.CreatedAt)),
			note,
		})
	}
	return RenderTable(headers, rows)
}
