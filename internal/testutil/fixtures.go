package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitman/draftboard/internal/domain"
)

var testShortIDCounter atomic.Int64

// Board options
type BoardOption func(*domain.Board)

func WithBoardShortID(id string) BoardOption {
	return func(b *domain.Board) {
		b.ShortID = id
	}
}

func WithSeason(year int) BoardOption {
	return func(b *domain.Board) {
		b.Season = year
	}
}

func WithBoardStatus(s domain.BoardStatus) BoardOption {
	return func(b *domain.Board) {
		b.Status = s
	}
}

func NewTestBoard(name string, opts ...BoardOption) *domain.Board {
	now := time.Now().UTC()
	b := &domain.Board{
		ID:        uuid.New().String(),
		ShortID:   fmt.Sprintf("FF%02d", testShortIDCounter.Add(1)),
		Name:      name,
		Season:    2026,
		Status:    domain.BoardActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Player options
type PlayerOption func(*domain.Player)

func WithPoints(pts float64) PlayerOption {
	return func(p *domain.Player) {
		p.ProjectedPts = pts
	}
}

func WithTeam(team string) PlayerOption {
	return func(p *domain.Player) {
		p.Team = team
	}
}

func WithByeWeek(week int) PlayerOption {
	return func(p *domain.Player) {
		p.ByeWeek = &week
	}
}

func WithStatus(s domain.PlayerStatus) PlayerOption {
	return func(p *domain.Player) {
		p.Status = s
		if s != domain.PlayerAvailable {
			now := time.Now().UTC()
			p.DraftedAt = &now
		}
	}
}

func NewTestPlayer(boardID, name string, pos domain.Position, opts ...PlayerOption) *domain.Player {
	now := time.Now().UTC()
	p := &domain.Player{
		ID:           uuid.New().String(),
		BoardID:      boardID,
		Name:         name,
		Team:         "FA",
		Position:     pos,
		ProjectedPts: 100,
		Status:       domain.PlayerAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick options
type PickOption func(*domain.Pick)

func WithPickKind(k domain.PickKind) PickOption {
	return func(p *domain.Pick) {
		p.Kind = k
	}
}

func WithOverall(n int) PickOption {
	return func(p *domain.Pick) {
		p.Overall = n
	}
}

func NewTestPick(boardID string, player *domain.Player, opts ...PickOption) *domain.Pick {
	p := &domain.Pick{
		ID:         uuid.New().String(),
		BoardID:    boardID,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Position:   player.Position,
		Kind:       domain.PickOther,
		Overall:    1,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
