package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type draftService struct {
	picks repository.PickRepo
	uow   db.UnitOfWork
}

func NewDraftService(picks repository.PickRepo, uow db.UnitOfWork) DraftService {
	return &draftService{picks: picks, uow: uow}
}

// Take flips the player's status and appends the pick in one transaction,
// so the pick log and the board can never disagree.
func (s *draftService) Take(ctx context.Context, playerID string, kind domain.PickKind, note string) (*domain.Pick, error) {
	var pick *domain.Pick

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlayers := repository.NewSQLitePlayerRepo(tx)
		txPicks := repository.NewSQLitePickRepo(tx)

		player, err := txPlayers.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if !player.Available() {
			return fmt.Errorf("%s is already off the board", player.Name)
		}

		status := domain.PlayerDrafted
		if kind == domain.PickMine {
			status = domain.PlayerMine
		}
		if err := txPlayers.SetStatus(ctx, player.ID, status); err != nil {
			return err
		}

		overall, err := txPicks.NextOverall(ctx, player.BoardID)
		if err != nil {
			return err
		}

		pick = &domain.Pick{
			ID:         uuid.New().String(),
			BoardID:    player.BoardID,
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Position:   player.Position,
			Kind:       kind,
			Overall:    overall,
			Note:       note,
			CreatedAt:  time.Now().UTC(),
		}
		return txPicks.Create(ctx, pick)
	})
	if err != nil {
		return nil, err
	}
	return pick, nil
}

// Undo deletes the latest pick and restores the player. A pick whose player
// row is gone (removed after a projections re-import) still undoes cleanly;
// there is just no player left to restore.
func (s *draftService) Undo(ctx context.Context, boardID string) (*domain.Pick, error) {
	var undone *domain.Pick

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlayers := repository.NewSQLitePlayerRepo(tx)
		txPicks := repository.NewSQLitePickRepo(tx)

		pick, err := txPicks.Latest(ctx, boardID)
		if err != nil {
			return err
		}

		if _, err := txPlayers.GetByID(ctx, pick.PlayerID); err == nil {
			if err := txPlayers.SetStatus(ctx, pick.PlayerID, domain.PlayerAvailable); err != nil {
				return err
			}
		}

		if err := txPicks.Delete(ctx, pick.ID); err != nil {
			return err
		}
		undone = pick
		return nil
	})
	if err != nil {
		return nil, err
	}
	return undone, nil
}

func (s *draftService) ListPicks(ctx context.Context, boardID string) ([]*domain.Pick, error) {
	return s.picks.ListByBoard(ctx, boardID)
}
