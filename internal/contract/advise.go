package contract

import (
	"time"

	"github.com/mwhitman/draftboard/internal/domain"
)

// AdviseRequest asks where the next pick should go.
type AdviseRequest struct {
	BoardID string
	// Limit caps the number of returned recommendations; 0 means all.
	Limit int
}

// PositionAdvice is one scored position.
type PositionAdvice struct {
	Position    domain.Position
	Score       float64
	Dropoff     float64
	HasDropoff  bool
	Top         *PlayerCell
	Lower       *PlayerCell
	SquadCount  int
	RosterLimit int
	Slip        int
	Skipped     bool
	Reason      string
}

// AdviseResponse ranks positions by pick urgency.
type AdviseResponse struct {
	GeneratedAt time.Time
	BoardName   string
	Advice      []PositionAdvice
	Warnings    []string
}
