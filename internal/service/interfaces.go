package service

import (
	"context"

	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/importer"
)

type BoardService interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Board, error)
	// Resolve accepts either a short ID or a full UUID and returns the board.
	Resolve(ctx context.Context, ref string) (*domain.Board, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Board, error)
	Update(ctx context.Context, b *domain.Board) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type PlayerService interface {
	Create(ctx context.Context, p *domain.Player) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Player, error)
	ListAvailableByPosition(ctx context.Context, boardID string, pos domain.Position) ([]*domain.Player, error)
	SearchByName(ctx context.Context, boardID, query string) ([]*domain.Player, error)
	Update(ctx context.Context, p *domain.Player) error
	Delete(ctx context.Context, id string) error
}

type RuleService interface {
	ListByBoard(ctx context.Context, boardID string) ([]*domain.PositionRule, error)
	Get(ctx context.Context, boardID string, pos domain.Position) (*domain.PositionRule, error)
	SetSlip(ctx context.Context, boardID string, pos domain.Position, slip int) error
	SetRosterLimit(ctx context.Context, boardID string, pos domain.Position, limit int) error
}

// DraftService records the live draft: players leaving the board and the
// pick log that tracks them.
type DraftService interface {
	// Take marks a player as gone from the board and appends a pick to the
	// log. kind decides whether the player lands on the user's squad.
	Take(ctx context.Context, playerID string, kind domain.PickKind, note string) (*domain.Pick, error)
	// Undo reverses the most recent pick on the board, restoring the player
	// to available if the player row still exists.
	Undo(ctx context.Context, boardID string) (*domain.Pick, error)
	ListPicks(ctx context.Context, boardID string) ([]*domain.Pick, error)
}

type MatrixService interface {
	GetMatrix(ctx context.Context, req contract.MatrixRequest) (*contract.MatrixResponse, error)
}

type AdviseService interface {
	Advise(ctx context.Context, req contract.AdviseRequest) (*contract.AdviseResponse, error)
}

type SummaryService interface {
	GetSummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}

// ImportResult holds the outcome of a board import.
type ImportResult struct {
	Board       *domain.Board
	RuleCount   int
	PlayerCount int
}

// ProjectionImportResult holds the outcome of a projections CSV import
// into an existing board.
type ProjectionImportResult struct {
	Board    *domain.Board
	Imported int
	// Removed counts the available players replaced by the re-import;
	// drafted and squad players are never touched.
	Removed int
	// Skipped counts sheet rows ignored because the player is already
	// drafted or on the squad.
	Skipped int
}

type ImportService interface {
	ImportBoard(ctx context.Context, filePath string) (*ImportResult, error)
	ImportBoardFromSchema(ctx context.Context, schema *importer.BoardSchema) (*ImportResult, error)
	// ImportProjectionsCSV replaces a board's available player pool with the
	// rows of a projections sheet.
	ImportProjectionsCSV(ctx context.Context, boardID, filePath string) (*ProjectionImportResult, error)
}
