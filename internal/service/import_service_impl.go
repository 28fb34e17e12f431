package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/importer"
	"github.com/mwhitman/draftboard/internal/repository"
)

type importService struct {
	boards   repository.BoardRepo
	players  repository.PlayerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(
	boards repository.BoardRepo,
	players repository.PlayerRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		boards:   boards,
		players:  players,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportBoard(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadBoardSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportBoardFromSchema(ctx, schema)
}

// ImportBoardFromSchema persists the whole board in one transaction. A
// validation failure or a mid-import error leaves the database untouched.
func (s *importService) ImportBoardFromSchema(ctx context.Context, schema *importer.BoardSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	var boardRef string
	var playerCount int
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-board",
			BoardRef:  boardRef,
			Rows:      playerCount,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if errs := importer.ValidateBoardSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)
	boardRef = generated.Board.ShortID
	playerCount = len(generated.Players)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBoards := repository.NewSQLiteBoardRepo(tx)
		txRules := repository.NewSQLiteRuleRepo(tx)
		txPlayers := repository.NewSQLitePlayerRepo(tx)

		if err := txBoards.Create(ctx, generated.Board); err != nil {
			return fmt.Errorf("creating board: %w", err)
		}
		for _, rule := range generated.Rules {
			if err := txRules.Upsert(ctx, rule); err != nil {
				return fmt.Errorf("creating rule for %s: %w", rule.Position, err)
			}
		}
		for _, player := range generated.Players {
			if err := txPlayers.Create(ctx, player); err != nil {
				return fmt.Errorf("creating player %q: %w", player.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Board:       generated.Board,
		RuleCount:   len(generated.Rules),
		PlayerCount: len(generated.Players),
	}, nil
}

// ImportProjectionsCSV refreshes a board's player pool from a projections
// sheet. Only available players are replaced; drafted and squad players
// keep their rows so the pick log and roster stay intact, and sheet rows
// naming them are skipped rather than re-inserted as available.
func (s *importService) ImportProjectionsCSV(ctx context.Context, boardID, filePath string) (result *ProjectionImportResult, err error) {
	startedAt := time.Now().UTC()
	var rowCount int
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-projections",
			BoardRef:  boardID,
			Rows:      rowCount,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	b, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	rows, err := importer.ParseProjectionsCSV(filePath)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &contract.Error{Code: contract.ErrNoPlayers, Message: "projections sheet has no player rows"}
	}
	rowCount = len(rows)

	var removed, skipped int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlayers := repository.NewSQLitePlayerRepo(tx)

		counts, err := txPlayers.StatusCounts(ctx, b.ID)
		if err != nil {
			return err
		}
		for _, c := range counts {
			if c.Status == domain.PlayerAvailable {
				removed += c.Count
			}
		}

		// Players already off the board must not come back just because
		// the sheet still lists them.
		taken := make(map[string]bool)
		for _, status := range []domain.PlayerStatus{domain.PlayerMine, domain.PlayerDrafted} {
			gone, err := txPlayers.ListByStatus(ctx, b.ID, status)
			if err != nil {
				return err
			}
			for _, p := range gone {
				taken[playerKey(p.Name, p.Position)] = true
			}
		}

		if err := txPlayers.DeleteAvailableByBoard(ctx, b.ID); err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, row := range rows {
			if taken[playerKey(row.Name, row.Position)] {
				skipped++
				continue
			}
			player := &domain.Player{
				ID:           uuid.New().String(),
				BoardID:      b.ID,
				Name:         row.Name,
				Team:         row.Team,
				Position:     row.Position,
				ByeWeek:      row.ByeWeek,
				ProjectedPts: row.ProjectedPts,
				Status:       domain.PlayerAvailable,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := txPlayers.Create(ctx, player); err != nil {
				return fmt.Errorf("creating player %q: %w", player.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ProjectionImportResult{
		Board:    b,
		Imported: len(rows) - skipped,
		Removed:  removed,
		Skipped:  skipped,
	}, nil
}

// playerKey identifies a player across sheets. Sites disagree on name
// casing, so matching is case-insensitive on name plus position.
func playerKey(name string, pos domain.Position) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + string(pos)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
