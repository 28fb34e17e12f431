package repository

import (
	"context"

	"github.com/mwhitman/draftboard/internal/domain"
)

// PositionStatusCount is one row of a board-wide GROUP BY over players,
// used by the summary and matrix read models.
type PositionStatusCount struct {
	Position domain.Position
	Status   domain.PlayerStatus
	Count    int
}

type BoardRepo interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Board, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Board, error)
	Update(ctx context.Context, b *domain.Board) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PlayerRepo interface {
	Create(ctx context.Context, p *domain.Player) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Player, error)
	// ListAvailableByPosition returns available players at the position,
	// ordered by projected points descending (name ascending on ties).
	ListAvailableByPosition(ctx context.Context, boardID string, pos domain.Position) ([]*domain.Player, error)
	ListByStatus(ctx context.Context, boardID string, status domain.PlayerStatus) ([]*domain.Player, error)
	SearchByName(ctx context.Context, boardID, query string) ([]*domain.Player, error)
	Update(ctx context.Context, p *domain.Player) error
	SetStatus(ctx context.Context, id string, status domain.PlayerStatus) error
	StatusCounts(ctx context.Context, boardID string) ([]PositionStatusCount, error)
	Delete(ctx context.Context, id string) error
	// DeleteAvailableByBoard removes only untouched players; drafted and
	// mine rows survive. Used by projections re-import.
	DeleteAvailableByBoard(ctx context.Context, boardID string) error
}

type PickRepo interface {
	Create(ctx context.Context, p *domain.Pick) error
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Pick, error)
	Latest(ctx context.Context, boardID string) (*domain.Pick, error)
	NextOverall(ctx context.Context, boardID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type RuleRepo interface {
	Upsert(ctx context.Context, r *domain.PositionRule) error
	Get(ctx context.Context, boardID string, pos domain.Position) (*domain.PositionRule, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.PositionRule, error)
	SetSlip(ctx context.Context, boardID string, pos domain.Position, slip int) error
}
