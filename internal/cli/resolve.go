package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mwhitman/draftboard/internal/domain"
)

// resolveBoard resolves the board a command operates on. Priority: the
// --board flag value, the DRAFTBOARD_BOARD environment variable, then the
// only active board if there is exactly one.
func resolveBoard(ctx context.Context, app *App, ref string) (*domain.Board, error) {
	if ref == "" {
		ref = os.Getenv("DRAFTBOARD_BOARD")
	}
	if ref != "" {
		return app.Boards.Resolve(ctx, ref)
	}

	boards, err := app.Boards.List(ctx, false)
	if err != nil {
		return nil, err
	}
	switch len(boards) {
	case 0:
		return nil, fmt.Errorf("no boards exist yet (create one with `draftboard board add`)")
	case 1:
		return boards[0], nil
	default:
		return nil, fmt.Errorf("multiple boards exist; pick one with --board or DRAFTBOARD_BOARD")
	}
}

// resolvePlayer finds a single player by name query. Last-name fragments
// work because matching is a case-insensitive substring search. When several
// players match and the terminal is interactive, a picker is shown;
// otherwise the matches are listed in the error.
func resolvePlayer(ctx context.Context, app *App, boardID, query string) (*domain.Player, error) {
	matches, err := app.Players.SearchByName(ctx, boardID, query)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no player matches %q", query)
	case 1:
		return matches[0], nil
	}

	if app.interactive() {
		return pickPlayer(matches)
	}

	names := make([]string, 0, len(matches))
	for _, p := range matches {
		names = append(names, fmt.Sprintf("%s (%s %s)", p.Name, p.Team, p.Position))
	}
	return nil, fmt.Errorf("%q is ambiguous: %s", query, strings.Join(names, ", "))
}

// pickPlayer shows a huh select over the matched players.
func pickPlayer(matches []*domain.Player) (*domain.Player, error) {
	byID := make(map[string]*domain.Player, len(matches))
	options := make([]huh.Option[string], 0, len(matches))
	for _, p := range matches {
		byID[p.ID] = p
		label := fmt.Sprintf("%s — %s %s, %.1f pts", p.Name, p.Team, p.Position, p.ProjectedPts)
		if !p.Available() {
			label += " (off the board)"
		}
		options = append(options, huh.NewOption(label, p.ID))
	}

	var chosen string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which player?").
				Options(options...).
				Value(&chosen),
		),
	).WithTheme(draftboardHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return byID[chosen], nil
}
