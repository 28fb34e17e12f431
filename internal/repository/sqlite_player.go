package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/domain"
)

// SQLitePlayerRepo implements PlayerRepo using a SQLite database.
type SQLitePlayerRepo struct {
	db db.DBTX
}

// NewSQLitePlayerRepo creates a new SQLitePlayerRepo.
func NewSQLitePlayerRepo(conn db.DBTX) *SQLitePlayerRepo {
	return &SQLitePlayerRepo{db: conn}
}

const playerColumns = `id, board_id, name, team, position, bye_week, projected_pts, status, drafted_at, created_at, updated_at`

func (r *SQLitePlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (` + playerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.BoardID,
		p.Name,
		p.Team,
		string(p.Position),
		nullableIntToValue(p.ByeWeek),
		p.ProjectedPts,
		string(p.Status),
		nullableTimeToString(p.DraftedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting player: %w", err)
	}
	return nil
}

func (r *SQLitePlayerRepo) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = ?`
	p, err := scanPlayerRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found")
	}
	return p, err
}

func (r *SQLitePlayerRepo) ListByBoard(ctx context.Context, boardID string) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players
		WHERE board_id = ?
		ORDER BY position, projected_pts DESC, name`
	return r.queryPlayers(ctx, query, boardID)
}

func (r *SQLitePlayerRepo) ListAvailableByPosition(ctx context.Context, boardID string, pos domain.Position) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players
		WHERE board_id = ? AND position = ? AND status = 'available'
		ORDER BY projected_pts DESC, name`
	return r.queryPlayers(ctx, query, boardID, string(pos))
}

func (r *SQLitePlayerRepo) ListByStatus(ctx context.Context, boardID string, status domain.PlayerStatus) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players
		WHERE board_id = ? AND status = ?
		ORDER BY position, projected_pts DESC, name`
	return r.queryPlayers(ctx, query, boardID, string(status))
}

func (r *SQLitePlayerRepo) SearchByName(ctx context.Context, boardID, query string) ([]*domain.Player, error) {
	// LIKE with no wildcards in the user input: escape % and _ so a
	// literal search can't turn into a pattern.
	escaped := escapeLike(query)
	q := `SELECT ` + playerColumns + ` FROM players
		WHERE board_id = ? AND name LIKE ? ESCAPE '\'
		ORDER BY projected_pts DESC, name`
	return r.queryPlayers(ctx, q, boardID, "%"+escaped+"%")
}

func (r *SQLitePlayerRepo) Update(ctx context.Context, p *domain.Player) error {
	query := `UPDATE players SET name = ?, team = ?, position = ?, bye_week = ?, projected_pts = ?, status = ?, drafted_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Team,
		string(p.Position),
		nullableIntToValue(p.ByeWeek),
		p.ProjectedPts,
		string(p.Status),
		nullableTimeToString(p.DraftedAt, time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating player: %w", err)
	}
	return nil
}

func (r *SQLitePlayerRepo) SetStatus(ctx context.Context, id string, status domain.PlayerStatus) error {
	now := nowUTC()
	var draftedAt interface{}
	if status != domain.PlayerAvailable {
		draftedAt = now
	}
	query := `UPDATE players SET status = ?, drafted_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), draftedAt, now, id)
	if err != nil {
		return fmt.Errorf("setting player status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("player not found")
	}
	return nil
}

func (r *SQLitePlayerRepo) StatusCounts(ctx context.Context, boardID string) ([]PositionStatusCount, error) {
	query := `SELECT position, status, COUNT(*) FROM players
		WHERE board_id = ?
		GROUP BY position, status`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("counting players: %w", err)
	}
	defer rows.Close()

	var counts []PositionStatusCount
	for rows.Next() {
		var c PositionStatusCount
		var posStr, statusStr string
		if err := rows.Scan(&posStr, &statusStr, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}
		c.Position = domain.Position(posStr)
		c.Status = domain.PlayerStatus(statusStr)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count rows: %w", err)
	}
	return counts, nil
}

func (r *SQLitePlayerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	return nil
}

func (r *SQLitePlayerRepo) DeleteAvailableByBoard(ctx context.Context, boardID string) error {
	query := `DELETE FROM players WHERE board_id = ? AND status = 'available'`
	if _, err := r.db.ExecContext(ctx, query, boardID); err != nil {
		return fmt.Errorf("deleting available players: %w", err)
	}
	return nil
}

func (r *SQLitePlayerRepo) queryPlayers(ctx context.Context, query string, args ...any) ([]*domain.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	var players []*domain.Player
	for rows.Next() {
		p, err := scanPlayerRow(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating players: %w", err)
	}
	return players, nil
}

type playerScanner interface {
	Scan(dest ...any) error
}

func scanPlayerRow(s playerScanner) (*domain.Player, error) {
	var p domain.Player
	var posStr, statusStr, createdAtStr, updatedAtStr string
	var byeWeek sql.NullInt64
	var draftedAtStr sql.NullString

	err := s.Scan(
		&p.ID, &p.BoardID, &p.Name, &p.Team,
		&posStr, &byeWeek, &p.ProjectedPts,
		&statusStr, &draftedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning player: %w", err)
	}

	p.Position = domain.Position(posStr)
	p.Status = domain.PlayerStatus(statusStr)
	p.ByeWeek = nullIntToPtr(byeWeek)
	p.DraftedAt = parseNullableTime(draftedAtStr, time.RFC3339)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
