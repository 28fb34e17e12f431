package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitman/draftboard/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PositionColor returns the lipgloss style used for the given position.
func PositionColor(pos domain.Position) lipgloss.Style {
	switch pos {
	case domain.PosQB:
		return StyleRed
	case domain.PosRB:
		return StyleGreen
	case domain.PosWR:
		return StyleBlue
	case domain.PosTE:
		return StyleYellow
	case domain.PosK:
		return StylePurple
	default:
		return StyleFg
	}
}

// PositionBadge returns the position abbreviation in its color.
func PositionBadge(pos domain.Position) string {
	return PositionColor(pos).Render(string(pos))
}

// PlayerStatusPill returns a colored status indicator for a player.
func PlayerStatusPill(status domain.PlayerStatus) string {
	switch status {
	case domain.PlayerAvailable:
		return StyleGreen.Render("● Available")
	case domain.PlayerMine:
		return StyleBlue.Render("★ Squad")
	case domain.PlayerDrafted:
		return StyleDim.Render("✖ Drafted")
	default:
		return StyleDim.Render(string(status))
	}
}

// BoardStatusPill returns a colored status indicator for a board.
func BoardStatusPill(status domain.BoardStatus) string {
	switch status {
	case domain.BoardActive:
		return StyleGreen.Render("● Active")
	case domain.BoardArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
