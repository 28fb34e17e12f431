package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
)

// SQLiteBoardRepo implements BoardRepo using a SQLite database.
type SQLiteBoardRepo struct {
	db db.DBTX
}

// NewSQLiteBoardRepo creates a new SQLiteBoardRepo.
func NewSQLiteBoardRepo(conn db.DBTX) *SQLiteBoardRepo {
	return &SQLiteBoardRepo{db: conn}
}

const boardColumns = `id, short_id, name, season, status, archived_at, created_at, updated_at`

func (r *SQLiteBoardRepo) Create(ctx context.Context, b *domain.Board) error {
	query := `INSERT INTO boards (` + boardColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ShortID,
		b.Name,
		b.Season,
		string(b.Status),
		nullableTimeToString(b.ArchivedAt, time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting board: %w", err)
	}
	return nil
}

func (r *SQLiteBoardRepo) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = ?`
	return r.scanBoard(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteBoardRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE UPPER(short_id) = UPPER(?)`
	return r.scanBoard(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *SQLiteBoardRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE archived_at IS NULL ORDER BY created_at`
	if includeArchived {
		query = `SELECT ` + boardColumns + ` FROM boards ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	defer rows.Close()

	var boards []*domain.Board
	for rows.Next() {
		b, err := r.scanBoardFromRows(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating boards: %w", err)
	}
	return boards, nil
}

func (r *SQLiteBoardRepo) Update(ctx context.Context, b *domain.Board) error {
	query := `UPDATE boards SET short_id = ?, name = ?, season = ?, status = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.ShortID,
		b.Name,
		b.Season,
		string(b.Status),
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating board: %w", err)
	}
	return nil
}

func (r *SQLiteBoardRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE boards SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, now, now, id); err != nil {
		return fmt.Errorf("archiving board: %w", err)
	}
	return nil
}

func (r *SQLiteBoardRepo) Unarchive(ctx context.Context, id string) error {
	query := `UPDATE boards SET status = 'active', archived_at = NULL, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), id); err != nil {
		return fmt.Errorf("unarchiving board: %w", err)
	}
	return nil
}

func (r *SQLiteBoardRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}
	return nil
}

type boardScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteBoardRepo) scanBoard(row *sql.Row) (*domain.Board, error) {
	b, err := scanBoardRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("board not found")
	}
	return b, err
}

func (r *SQLiteBoardRepo) scanBoardFromRows(rows *sql.Rows) (*domain.Board, error) {
	return scanBoardRow(rows)
}

func scanBoardRow(s boardScanner) (*domain.Board, error) {
	var b domain.Board
	var statusStr, createdAtStr, updatedAtStr string
	var archivedAtStr sql.NullString

	err := s.Scan(
		&b.ID, &b.ShortID, &b.Name, &b.Season,
		&statusStr, &archivedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning board: %w", err)
	}

	b.Status = domain.BoardStatus(statusStr)
	b.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)

	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &b, nil
}
