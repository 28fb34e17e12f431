package domain

import "fmt"

// PositionRule holds the per-position draft settings for a board: the slip
// (how many players at this position the user expects to be drafted before
// their next turn) and the roster limit for the user's squad.
type PositionRule struct {
	BoardID     string
	Position    Position
	Slip        int
	RosterLimit int
}

// Validate checks the rule's invariants.
func (r *PositionRule) Validate() error {
	if r.Slip < 0 {
		return fmt.Errorf("slip for %s must be >= 0, got %d", r.Position, r.Slip)
	}
	if r.RosterLimit < 0 {
		return fmt.Errorf("roster limit for %s must be >= 0, got %d", r.Position, r.RosterLimit)
	}
	return nil
}

// DefaultRosterLimits is the default squad size per position, used when a
// board is created without explicit limits.
var DefaultRosterLimits = map[Position]int{
	PosQB:  2,
	PosRB:  5,
	PosWR:  5,
	PosTE:  2,
	PosK:   1,
	PosDST: 1,
}

// DefaultRules builds the default rule set for a new board: slip 0
// everywhere and the standard roster limits.
func DefaultRules(boardID string) []*PositionRule {
	rules := make([]*PositionRule, 0, len(AllPositions))
	for _, pos := range AllPositions {
		rules = append(rules, &PositionRule{
			BoardID:     boardID,
			Position:    pos,
			Slip:        0,
			RosterLimit: DefaultRosterLimits[pos],
		})
	}
	return rules
}
