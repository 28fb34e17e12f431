package service

import (
	"context"
	"time"

	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type summaryService struct {
	boards   repository.BoardRepo
	players  repository.PlayerRepo
	picks    repository.PickRepo
	rules    repository.RuleRepo
	observer UseCaseObserver
}

func NewSummaryService(
	boards repository.BoardRepo,
	players repository.PlayerRepo,
	picks repository.PickRepo,
	rules repository.RuleRepo,
	observers ...UseCaseObserver,
) SummaryService {
	return &summaryService{
		boards:   boards,
		players:  players,
		picks:    picks,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *summaryService) GetSummary(ctx context.Context, req contract.SummaryRequest) (resp *contract.SummaryResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "summary",
			BoardRef:  req.BoardID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	b, err := s.boards.GetByID(ctx, req.BoardID)
	if err != nil {
		return nil, &contract.Error{Code: contract.ErrNoBoard, Message: err.Error()}
	}

	counts, err := s.players.StatusCounts(ctx, req.BoardID)
	if err != nil {
		return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
	}

	squad := make(map[domain.Position]int)
	available := make(map[domain.Position]int)
	totalAvailable := 0
	for _, c := range counts {
		switch c.Status {
		case domain.PlayerMine:
			squad[c.Position] += c.Count
		case domain.PlayerAvailable:
			available[c.Position] += c.Count
			totalAvailable += c.Count
		}
	}

	rules, err := s.rules.ListByBoard(ctx, req.BoardID)
	if err != nil {
		return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
	}
	limits := make(map[domain.Position]int, len(rules))
	for _, r := range rules {
		limits[r.Position] = r.RosterLimit
	}

	positions := make([]contract.PositionSummary, 0, len(domain.AllPositions))
	for _, pos := range domain.AllPositions {
		positions = append(positions, contract.PositionSummary{
			Position:    pos,
			SquadCount:  squad[pos],
			RosterLimit: limits[pos],
			Available:   available[pos],
		})
	}

	allPicks, err := s.picks.ListByBoard(ctx, req.BoardID)
	if err != nil {
		return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
	}

	myPicks := 0
	for _, p := range allPicks {
		if p.Mine() {
			myPicks++
		}
	}

	recent := allPicks
	if req.RecentPicks > 0 && len(recent) > req.RecentPicks {
		recent = recent[len(recent)-req.RecentPicks:]
	}
	entries := make([]contract.PickEntry, 0, len(recent))
	for _, p := range recent {
		entries = append(entries, contract.PickEntry{
			Overall:    p.Overall,
			PlayerName: p.PlayerName,
			Position:   p.Position,
			Kind:       p.Kind,
			PickedAt:   p.CreatedAt,
		})
	}

	return &contract.SummaryResponse{
		GeneratedAt:    time.Now().UTC(),
		BoardName:      b.Name,
		BoardShortID:   b.ShortID,
		Positions:      positions,
		TotalAvailable: totalAvailable,
		TotalPicks:     len(allPicks),
		MyPicks:        myPicks,
		RecentPicks:    entries,
	}, nil
}
