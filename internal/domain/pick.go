package domain

import "time"

// Pick is one entry in a board's draft log. Player name and position are
// copied onto the pick so the log stays intact even if the player row is
// later purged; PlayerID is a plain reference, not a foreign key.
type Pick struct {
	ID         string
	BoardID    string
	PlayerID   string
	PlayerName string
	Position   Position
	Kind       PickKind
	Overall    int
	Note       string
	CreatedAt  time.Time
}

// Mine reports whether this pick went to the user's squad.
func (p *Pick) Mine() bool {
	return p.Kind == PickMine
}
