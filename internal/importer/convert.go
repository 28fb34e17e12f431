package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitman/draftboard/internal/domain"
)

// GeneratedBoard holds the domain objects produced from an import file,
// ready for persistence in one transaction.
type GeneratedBoard struct {
	Board   *domain.Board
	Rules   []*domain.PositionRule
	Players []*domain.Player
}

// Convert transforms a validated BoardSchema into domain objects.
// Call ValidateBoardSchema first; Convert assumes the schema is valid.
func Convert(schema *BoardSchema) *GeneratedBoard {
	now := time.Now().UTC()

	board := &domain.Board{
		ID:        uuid.New().String(),
		ShortID:   strings.ToUpper(schema.Board.ShortID),
		Name:      schema.Board.Name,
		Season:    schema.Board.Season,
		Status:    domain.BoardActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Start from defaults, then overlay the file's rules.
	rulesByPos := make(map[domain.Position]*domain.PositionRule)
	for _, r := range domain.DefaultRules(board.ID) {
		rulesByPos[r.Position] = r
	}
	for _, r := range schema.Rules {
		pos, _ := domain.ParsePosition(r.Position)
		rule := rulesByPos[pos]
		if r.Slip != nil {
			rule.Slip = *r.Slip
		}
		if r.RosterLimit != nil {
			rule.RosterLimit = *r.RosterLimit
		}
	}
	rules := make([]*domain.PositionRule, 0, len(domain.AllPositions))
	for _, pos := range domain.AllPositions {
		rules = append(rules, rulesByPos[pos])
	}

	players := make([]*domain.Player, 0, len(schema.Players))
	for _, p := range schema.Players {
		pos, _ := domain.ParsePosition(p.Position)
		players = append(players, &domain.Player{
			ID:           uuid.New().String(),
			BoardID:      board.ID,
			Name:         p.Name,
			Team:         strings.ToUpper(p.Team),
			Position:     pos,
			ByeWeek:      p.ByeWeek,
			ProjectedPts: p.ProjectedPts,
			Status:       domain.PlayerAvailable,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return &GeneratedBoard{Board: board, Rules: rules, Players: players}
}
