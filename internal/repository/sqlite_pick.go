package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
)

// SQLitePickRepo implements PickRepo using a SQLite database.
type SQLitePickRepo struct {
	db db.DBTX
}

// NewSQLitePickRepo creates a new SQLitePickRepo.
func NewSQLitePickRepo(conn db.DBTX) *SQLitePickRepo {
	return &SQLitePickRepo{db: conn}
}

const pickColumns = `id, board_id, player_id, player_name, position, kind, overall, note, created_at`

func (r *SQLitePickRepo) Create(ctx context.Context, p *domain.Pick) error {
	query := `INSERT INTO picks (` + pickColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.BoardID,
		p.PlayerID,
		p.PlayerName,
		string(p.Position),
		string(p.Kind),
		p.Overall,
		p.Note,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pick: %w", err)
	}
	return nil
}

func (r *SQLitePickRepo) ListByBoard(ctx context.Context, boardID string) ([]*domain.Pick, error) {
	query := `SELECT ` + pickColumns + ` FROM picks WHERE board_id = ? ORDER BY overall`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing picks: %w", err)
	}
	defer rows.Close()

	var picks []*domain.Pick
	for rows.Next() {
		p, err := scanPickRow(rows)
		if err != nil {
			return nil, err
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating picks: %w", err)
	}
	return picks, nil
}

func (r *SQLitePickRepo) Latest(ctx context.Context, boardID string) (*domain.Pick, error) {
	query := `SELECT ` + pickColumns + ` FROM picks
		WHERE board_id = ? ORDER BY overall DESC LIMIT 1`
	p, err := scanPickRow(r.db.QueryRowContext(ctx, query, boardID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no picks recorded")
	}
	return p, err
}

func (r *SQLitePickRepo) NextOverall(ctx context.Context, boardID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(overall), 0) + 1 FROM picks WHERE board_id = ?`
	if err := r.db.QueryRowContext(ctx, query, boardID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next overall: %w", err)
	}
	return next, nil
}

func (r *SQLitePickRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM picks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting pick: %w", err)
	}
	return nil
}

type pickScanner interface {
	Scan(dest ...any) error
}

func scanPickRow(s pickScanner) (*domain.Pick, error) {
	var p domain.Pick
	var posStr, kindStr, createdAtStr string

	err := s.Scan(
		&p.ID, &p.BoardID, &p.PlayerID, &p.PlayerName,
		&posStr, &kindStr, &p.Overall, &p.Note,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning pick: %w", err)
	}

	p.Position = domain.Position(posStr)
	p.Kind = domain.PickKind(kindStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return &p, nil
}
