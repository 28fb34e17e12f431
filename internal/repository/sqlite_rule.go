package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
)

// SQLiteRuleRepo implements RuleRepo using a SQLite database.
type SQLiteRuleRepo struct {
	db db.DBTX
}

// NewSQLiteRuleRepo creates a new SQLiteRuleRepo.
func NewSQLiteRuleRepo(conn db.DBTX) *SQLiteRuleRepo {
	return &SQLiteRuleRepo{db: conn}
}

func (r *SQLiteRuleRepo) Upsert(ctx context.Context, rule *domain.PositionRule) error {
	query := `INSERT INTO position_rules (board_id, position, slip, roster_limit)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(board_id, position) DO UPDATE
		SET slip = excluded.slip, roster_limit = excluded.roster_limit`
	_, err := r.db.ExecContext(ctx, query,
		rule.BoardID,
		string(rule.Position),
		rule.Slip,
		rule.RosterLimit,
	)
	if err != nil {
		return fmt.Errorf("upserting position rule: %w", err)
	}
	return nil
}

func (r *SQLiteRuleRepo) Get(ctx context.Context, boardID string, pos domain.Position) (*domain.PositionRule, error) {
	query := `SELECT board_id, position, slip, roster_limit FROM position_rules
		WHERE board_id = ? AND position = ?`
	row := r.db.QueryRowContext(ctx, query, boardID, string(pos))

	var rule domain.PositionRule
	var posStr string
	err := row.Scan(&rule.BoardID, &posStr, &rule.Slip, &rule.RosterLimit)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no rule for position %s", pos)
		}
		return nil, fmt.Errorf("scanning position rule: %w", err)
	}
	rule.Position = domain.Position(posStr)
	return &rule, nil
}

func (r *SQLiteRuleRepo) ListByBoard(ctx context.Context, boardID string) ([]*domain.PositionRule, error) {
	query := `SELECT board_id, position, slip, roster_limit FROM position_rules
		WHERE board_id = ?`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing position rules: %w", err)
	}
	defer rows.Close()

	byPos := make(map[domain.Position]*domain.PositionRule)
	for rows.Next() {
		var rule domain.PositionRule
		var posStr string
		if err := rows.Scan(&rule.BoardID, &posStr, &rule.Slip, &rule.RosterLimit); err != nil {
			return nil, fmt.Errorf("scanning position rule: %w", err)
		}
		rule.Position = domain.Position(posStr)
		byPos[rule.Position] = &rule
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating position rules: %w", err)
	}

	// Return in canonical display order.
	var rules []*domain.PositionRule
	for _, pos := range domain.AllPositions {
		if rule, ok := byPos[pos]; ok {
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

func (r *SQLiteRuleRepo) SetSlip(ctx context.Context, boardID string, pos domain.Position, slip int) error {
	query := `UPDATE position_rules SET slip = ? WHERE board_id = ? AND position = ?`
	res, err := r.db.ExecContext(ctx, query, slip, boardID, string(pos))
	if err != nil {
		return fmt.Errorf("setting slip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no rule for position %s", pos)
	}
	return nil
}
