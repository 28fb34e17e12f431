package service

import (
	"context"
	"time"

	"github.com/mwhitman/draftboard/internal/board"
	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type matrixService struct {
	boards   repository.BoardRepo
	players  repository.PlayerRepo
	rules    repository.RuleRepo
	observer UseCaseObserver
}

func NewMatrixService(
	boards repository.BoardRepo,
	players repository.PlayerRepo,
	rules repository.RuleRepo,
	observers ...UseCaseObserver,
) MatrixService {
	return &matrixService{
		boards:   boards,
		players:  players,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *matrixService) GetMatrix(ctx context.Context, req contract.MatrixRequest) (resp *contract.MatrixResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "matrix",
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

	positions := req.Positions
	if len(positions) == 0 {
		positions = domain.AllPositions
	}

	columns := make([]contract.MatrixColumn, 0, len(positions))
	for _, pos := range positions {
		rule, err := s.rules.Get(ctx, req.BoardID, pos)
		if err != nil {
			return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
		}

		available, err := s.players.ListAvailableByPosition(ctx, req.BoardID, pos)
		if err != nil {
			return nil, &contract.Error{Code: contract.ErrInternalError, Message: err.Error()}
		}

		columns = append(columns, buildMatrixColumn(pos, available, rule, squadCounts[pos]))
	}

	return &contract.MatrixResponse{
		GeneratedAt: time.Now().UTC(),
		BoardName:   b.Name,
		Columns:     columns,
	}, nil
}

func buildMatrixColumn(pos domain.Position, available []*domain.Player, rule *domain.PositionRule, squadCount int) contract.MatrixColumn {
	ranking := board.NewRanking(pos, available)

	col := contract.MatrixColumn{
		Position:    pos,
		SquadCount:  squadCount,
		RosterLimit: rule.RosterLimit,
		Slip:        rule.Slip,
		Available:   len(ranking.Players),
		Top:         playerCell(ranking.Top()),
		Lower:       playerCell(ranking.Lower(rule.Slip)),
	}
	if drop, ok := ranking.Dropoff(rule.Slip); ok {
		col.Dropoff = drop
		col.HasDropoff = true
	}
	return col
}

func playerCell(p *domain.Player) *contract.PlayerCell {
	if p == nil {
		return nil
	}
	return &contract.PlayerCell{
		ID:           p.ID,
		Name:         p.Name,
		Team:         p.Team,
		ProjectedPts: p.ProjectedPts,
		ByeWeek:      p.ByeWeek,
	}
}

// squadCountsByPosition reduces the board-wide status counts to the number
// of squad players per position.
func squadCountsByPosition(ctx context.Context, players repository.PlayerRepo, boardID string) (map[domain.Position]int, error) {
	counts, err := players.StatusCounts(ctx, boardID)
	if err != nil {
		return nil, err
	}
	squad := make(map[domain.Position]int, len(domain.AllPositions))
	for _, c := range counts {
		if c.Status == domain.PlayerMine {
			squad[c.Position] += c.Count
		}
	}
	return squad, nil
}
