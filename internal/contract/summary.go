package contract

import (
	"time"

	"github.com/mwhitman/draftboard/internal/domain"
)

// SummaryRequest asks for the draft summary of one board.
type SummaryRequest struct {
	BoardID string
	// RecentPicks caps the pick log tail included; 0 means all picks.
	RecentPicks int
}

// PositionSummary is the per-position line of the summary.
type PositionSummary struct {
	Position    domain.Position
	SquadCount  int
	RosterLimit int
	Available   int
}

// PickEntry is one line of the draft log.
type PickEntry struct {
	Overall    int
	PlayerName string
	Position   domain.Position
	Kind       domain.PickKind
	PickedAt   time.Time
}

// SummaryResponse is the full draft summary: squad fill, remaining pool
// sizes, and the tail of the pick log.
type SummaryResponse struct {
	GeneratedAt    time.Time
	BoardName      string
	BoardShortID   string
	Positions      []PositionSummary
	TotalAvailable int
	TotalPicks     int
	MyPicks        int
	RecentPicks    []PickEntry
}
