package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type boardService struct {
	boards repository.BoardRepo
	uow    db.UnitOfWork
}

func NewBoardService(boards repository.BoardRepo, uow db.UnitOfWork) BoardService {
	return &boardService{boards: boards, uow: uow}
}

// Create persists the board together with its default position rules, so a
// fresh board always has a slip and roster limit for every position.
func (s *boardService) Create(ctx context.Context, b *domain.Board) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.ShortID = strings.ToUpper(b.ShortID)
	if err := b.ValidateShortID(); err != nil {
		return err
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = domain.BoardActive
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBoards := repository.NewSQLiteBoardRepo(tx)
		txRules := repository.NewSQLiteRuleRepo(tx)

		if err := txBoards.Create(ctx, b); err != nil {
			return err
		}
		for _, rule := range domain.DefaultRules(b.ID) {
			if err := txRules.Upsert(ctx, rule); err != nil {
				return fmt.Errorf("seeding rule for %s: %w", rule.Position, err)
			}
		}
		return nil
	})
}

func (s *boardService) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	return s.boards.GetByID(ctx, id)
}

func (s *boardService) GetByShortID(ctx context.Context, shortID string) (*domain.Board, error) {
	return s.boards.GetByShortID(ctx, strings.ToUpper(shortID))
}

// Resolve tries the ref as a short ID first, then as a full board ID.
func (s *boardService) Resolve(ctx context.Context, ref string) (*domain.Board, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("board reference is required")
	}
	if b, err := s.boards.GetByShortID(ctx, strings.ToUpper(ref)); err == nil {
		return b, nil
	}
	b, err := s.boards.GetByID(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("no board matches %q", ref)
	}
	return b, nil
}

func (s *boardService) List(ctx context.Context, includeArchived bool) ([]*domain.Board, error) {
	return s.boards.List(ctx, includeArchived)
}

func (s *boardService) Update(ctx context.Context, b *domain.Board) error {
	b.UpdatedAt = time.Now().UTC()
	return s.boards.Update(ctx, b)
}

func (s *boardService) Archive(ctx context.Context, id string) error {
	return s.boards.Archive(ctx, id)
}

func (s *boardService) Unarchive(ctx context.Context, id string) error {
	return s.boards.Unarchive(ctx, id)
}

func (s *boardService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		b, err := s.boards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b.Status != domain.BoardArchived {
			return fmt.Errorf("board must be archived before deletion (use --force to override)")
		}
	}
	return s.boards.Delete(ctx, id)
}
