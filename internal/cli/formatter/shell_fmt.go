package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	logo := StylePurple.Render("  draftboard")
	b.WriteString("\n")
	b.WriteString(logo + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Pick a board with 'use <id>', then commands apply to it automatically.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("matrix") + StyleDim.Render("         Show the decision matrix") + "\n")
	b.WriteString("  " + StyleGreen.Render("take allen") + StyleDim.Render("     Draft a player onto your squad") + "\n")
	b.WriteString("  " + StyleGreen.Render("mark allen") + StyleDim.Render("     Player went to another team") + "\n")
	b.WriteString("  " + StyleGreen.Render("slip set RB 3") + StyleDim.Render("  Update the RB slip") + "\n")
	b.WriteString("  " + StyleGreen.Render("advise") + StyleDim.Render("         Where should the next pick go?") + "\n")
	b.WriteString("  " + StyleGreen.Render("help") + StyleDim.Render("           Show all commands") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tab for autocomplete. Type 'help' for all commands.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Navigation",
			commands: [][]string{
				{"boards", "List all active boards"},
				{"use <id>", "Set active board (no args to clear)"},
				{"summary", "Show squad fill and recent picks"},
			},
		},
		{
			title: "Draft Day",
			commands: [][]string{
				{"matrix [pos]", "Show the decision matrix"},
				{"advise", "Rank positions by pick urgency"},
				{"take <name>", "Draft a player onto your squad"},
				{"mark <name>", "Player went to another team"},
				{"undo", "Reverse the most recent pick"},
				{"picks", "Show the full draft log"},
			},
		},
		{
			title: "Tuning",
			commands: [][]string{
				{"slip list", "Show slips and roster limits"},
				{"slip set <pos> <n>", "Set the slip for a position"},
				{"slip limit <pos> <n>", "Set the roster limit"},
			},
		},
		{
			title: "Pool",
			commands: [][]string{
				{"player search <name>", "Search players by name"},
				{"player list --pos RB", "Ranked available players"},
				{"player import <file>", "Import a projections CSV"},
				{"board import <file>", "Import a whole board from JSON"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Quit draftboard"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}

	b.WriteString("\n" + StyleDim.Render(
		"All board/player/slip subcommands are available.\n"+
			"Tab for autocomplete. Active board context is auto-applied."))

	return RenderBox("Commands", b.String())
}
