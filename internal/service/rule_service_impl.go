package service

import (
	"context"
	"fmt"

	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/repository"
)

type ruleService struct {
	rules repository.RuleRepo
}

func NewRuleService(rules repository.RuleRepo) RuleService {
	return &ruleService{rules: rules}
}

func (s *ruleService) ListByBoard(ctx context.Context, boardID string) ([]*domain.PositionRule, error) {
	return s.rules.ListByBoard(ctx, boardID)
}

func (s *ruleService) Get(ctx context.Context, boardID string, pos domain.Position) (*domain.PositionRule, error) {
	return s.rules.Get(ctx, boardID, pos)
}

func (s *ruleService) SetSlip(ctx context.Context, boardID string, pos domain.Position, slip int) error {
	if slip < 0 {
		return &contract.Error{
			Code:    contract.ErrInvalidSlip,
			Message: fmt.Sprintf("slip for %s must be >= 0, got %d", pos, slip),
		}
	}
	return s.rules.SetSlip(ctx, boardID, pos, slip)
}

func (s *ruleService) SetRosterLimit(ctx context.Context, boardID string, pos domain.Position, limit int) error {
	if limit < 0 {
		return fmt.Errorf("roster limit for %s must be >= 0, got %d", pos, limit)
	}
	rule, err := s.rules.Get(ctx, boardID, pos)
	if err != nil {
		return err
	}
	rule.RosterLimit = limit
	return s.rules.Upsert(ctx, rule)
}
