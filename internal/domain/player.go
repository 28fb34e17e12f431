package domain

import (
	"strings"
	"time"
)

// Player is one draftable player on a board. Players are keyed by ID, never
// by ranking position, so removing one player cannot disturb another.
type Player struct {
	ID           string
	BoardID      string
	Name         string
	Team         string
	Position     Position
	ByeWeek      *int
	ProjectedPts float64
	Status       PlayerStatus
	DraftedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Available reports whether the player is still on the board.
func (p *Player) Available() bool {
	return p.Status == PlayerAvailable
}

// MatchesName reports whether query matches the player's name,
// case-insensitively. A query matching any part of the name matches the
// player, so searching by last name works.
func (p *Player) MatchesName(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Name), q)
}
