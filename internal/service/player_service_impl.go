package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type playerService struct {
	players repository.PlayerRepo
}

func NewPlayerService(players repository.PlayerRepo) PlayerService {
	return &playerService{players: players}
}

func (s *playerService) Create(ctx context.Context, p *domain.Player) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.ProjectedPts < 0 {
		return fmt.Errorf("projected points must not be negative, got %.1f", p.ProjectedPts)
	}
	p.Team = strings.ToUpper(p.Team)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.PlayerAvailable
	}
	return s.players.Create(ctx, p)
}

func (s *playerService) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	return s.players.GetByID(ctx, id)
}

func (s *playerService) ListByBoard(ctx context.Context, boardID string) ([]*domain.Player, error) {
	return s.players.ListByBoard(ctx, boardID)
}

func (s *playerService) ListAvailableByPosition(ctx context.Context, boardID string, pos domain.Position) ([]*domain.Player, error) {
	return s.players.ListAvailableByPosition(ctx, boardID, pos)
}

func (s *playerService) SearchByName(ctx context.Context, boardID, query string) ([]*domain.Player, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}
	return s.players.SearchByName(ctx, boardID, query)
}

func (s *playerService) Update(ctx context.Context, p *domain.Player) error {
	p.UpdatedAt = time.Now().UTC()
	return s.players.Update(ctx, p)
}

func (s *playerService) Delete(ctx context.Context, id string) error {
	return s.players.Delete(ctx, id)
}
