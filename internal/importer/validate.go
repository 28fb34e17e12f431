package importer

import (
	"fmt"
	"strings"

	"github.com/mwhitman/draftboard/internal/domain"
)

// ValidateBoardSchema checks the import schema before conversion.
// Returns a slice of all validation errors found.
func ValidateBoardSchema(schema *BoardSchema) []error {
	var errs []error

	if schema.Board.Name == "" {
		errs = append(errs, fmt.Errorf("board.name is required"))
	}
	// Convert uppercases the short ID, so validate the uppercased form:
	// "ff26" is fine here for the same reason it is fine on `board add`.
	if schema.Board.ShortID == "" {
		errs = append(errs, fmt.Errorf("board.short_id is required"))
	} else if err := domain.ValidateShortID(strings.ToUpper(schema.Board.ShortID)); err != nil {
		errs = append(errs, fmt.Errorf("board.short_id: %w", err))
	}
	if schema.Board.Season < 0 {
		errs = append(errs, fmt.Errorf("board.season must not be negative"))
	}

	seen := make(map[string]bool)
	for i, r := range schema.Rules {
		pos, err := domain.ParsePosition(r.Position)
		if err != nil {
			errs = append(errs, fmt.Errorf("rules[%d]: %w", i, err))
			continue
		}
		if seen[string(pos)] {
			errs = append(errs, fmt.Errorf("rules[%d]: duplicate position %s", i, pos))
		}
		seen[string(pos)] = true
		if r.Slip != nil && *r.Slip < 0 {
			errs = append(errs, fmt.Errorf("rules[%d]: slip must be >= 0, got %d", i, *r.Slip))
		}
		if r.RosterLimit != nil && *r.RosterLimit < 0 {
			errs = append(errs, fmt.Errorf("rules[%d]: roster_limit must be >= 0, got %d", i, *r.RosterLimit))
		}
	}

	if len(schema.Players) == 0 {
		errs = append(errs, fmt.Errorf("players: at least one player is required"))
	}
	for i, p := range schema.Players {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("players[%d]: name is required", i))
		}
		if _, err := domain.ParsePosition(p.Position); err != nil {
			errs = append(errs, fmt.Errorf("players[%d] (%s): %w", i, p.Name, err))
		}
		if p.ProjectedPts < 0 {
			errs = append(errs, fmt.Errorf("players[%d] (%s): projected_pts must not be negative", i, p.Name))
		}
		if p.ByeWeek != nil && (*p.ByeWeek < 1 || *p.ByeWeek > 18) {
			errs = append(errs, fmt.Errorf("players[%d] (%s): bye_week %d out of range 1-18", i, p.Name, *p.ByeWeek))
		}
	}

	return errs
}
