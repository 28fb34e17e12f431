package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatPoints renders projected points with one decimal place.
func FormatPoints(pts float64) string {
	return fmt.Sprintf("%.1f", pts)
}

// SquadFill renders "count/limit" with urgency coloring: green when there is
// room, dim once the limit is reached.
func SquadFill(count, limit int) string {
	text := fmt.Sprintf("%d/%d", count, limit)
	if limit > 0 && count >= limit {
		return StyleDim.Render(text)
	}
	return StyleGreen.Render(text)
}

// ByeWeek renders a bye week, or a dimmed placeholder when unknown.
func ByeWeek(week *int) string {
	if week == nil {
		return Dim("--")
	}
	return StyleFg.Render(fmt.Sprintf("%d", *week))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}
