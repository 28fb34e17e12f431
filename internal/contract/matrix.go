// Package contract defines the request and response types for the board's
// read models: the decision matrix, the pick advisor, and the draft summary.
package contract

import (
	"time"

	"github.com/mwhitman/draftboard/internal/domain"
)

// MatrixRequest asks for the decision matrix of one board.
type MatrixRequest struct {
	BoardID string
	// Positions limits the matrix to a subset; empty means all positions.
	Positions []domain.Position
}

// MatrixColumn is the decision matrix for a single position.
type MatrixColumn struct {
	Position    domain.Position
	SquadCount  int
	RosterLimit int
	Slip        int
	Available   int

	// Top is the best available player; nil when the position is empty.
	Top *PlayerCell
	// Lower is the best player expected to survive the slip; nil when the
	// slip reaches past the remaining players.
	Lower *PlayerCell
	// Dropoff is Top minus Lower points; valid only when HasDropoff.
	Dropoff    float64
	HasDropoff bool
}

// PlayerCell is the matrix view of one player.
type PlayerCell struct {
	ID           string
	Name         string
	Team         string
	ProjectedPts float64
	ByeWeek      *int
}

// MatrixResponse is the full decision matrix.
type MatrixResponse struct {
	GeneratedAt time.Time
	BoardName   string
	Columns     []MatrixColumn
}

type ErrorCode string

const (
	ErrNoBoard       ErrorCode = "NO_BOARD"
	ErrNoPlayers     ErrorCode = "NO_PLAYERS"
	ErrInvalidSlip   ErrorCode = "INVALID_SLIP"
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is a typed read-model error.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}
