package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mwhitman/draftboard/internal/board"
	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type adviseService struct {
	boards   repository.BoardRepo
	players  repository.PlayerRepo
	rules    repository.RuleRepo
	observer UseCaseObserver
}

func NewAdviseService(
	boards repository.BoardRepo,
	players repository.PlayerRepo,
	rules repository.RuleRepo,
	observers ...UseCaseObserver,
) AdviseService {
	return &adviseService{
		boards:   boards,
		players:  players,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *adviseService) Advise(ctx context.Context, req contract.AdviseRequest) (resp *contract.AdviseResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "advise",
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

	squadCounts, err := squadCountsByPosition(ctx, s.players, req.BoardID)
	if err != nil {
		return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
	}

	var warnings []string
	inputs := make([]board.AdviceInput, 0, len(domain.AllPositions))
	for _, pos := range domain.AllPositions {
		rule, err := s.rules.Get(ctx, req.BoardID, pos)
		if err != nil {
			return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
		}

		available, err := s.players.ListAvailableByPosition(ctx, req.BoardID, pos)
		if err != nil {
			return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
		}

		ranking := board.NewRanking(pos, available)
		if len(ranking.Players) > 0 && rule.Slip >= len(ranking.Players) {
			warnings = append(warnings, fmt.Sprintf("%s: slip %d exceeds the %d players left", pos, rule.Slip, len(ranking.Players)))
		}

		inputs = append(inputs, board.AdviceInput{
			Position:    pos,
			Ranking:     ranking,
			Slip:        rule.Slip,
			SquadCount:  squadCounts[pos],
			RosterLimit: rule.RosterLimit,
		})
	}

	scored := board.RankPositions(inputs)
	if req.Limit > 0 && len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}

	advice := make([]contract.PositionAdvice, 0, len(scored))
	for _, sp := range scored {
		advice = append(advice, contract.PositionAdvice{
			Position:    sp.Input.Position,
			Score:       sp.Score,
			Dropoff:     sp.Dropoff,
			HasDropoff:  sp.HasDrop,
			Top:         playerCell(sp.Input.Ranking.Top()),
			Lower:       playerCell(sp.Input.Ranking.Lower(sp.Input.Slip)),
			SquadCount:  sp.Input.SquadCount,
			RosterLimit: sp.Input.RosterLimit,
			Slip:        sp.Input.Slip,
			Skipped:     sp.Skipped,
			Reason:      sp.Reason,
		})
	}

	return &contract.AdviseResponse{
		GeneratedAt: time.Now().UTC(),
		BoardName:   b.Name,
		Advice:      advice,
		Warnings:    warnings,
	}, nil
}
