package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillPositionRules(db); err != nil {
		return fmt.Errorf("backfilling position rules: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS boards (
		id          TEXT PRIMARY KEY,
		short_id    TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		season      INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','archived')),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_boards_short_id ON boards(short_id) WHERE short_id != ''`,

	`CREATE TABLE IF NOT EXISTS players (
		id            TEXT PRIMARY KEY,
		board_id      TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		team          TEXT NOT NULL DEFAULT '',
		position      TEXT NOT NULL
		              CHECK(position IN ('QB','RB','WR','TE','K','DST')),
		bye_week      INTEGER,
		projected_pts REAL NOT NULL DEFAULT 0,
		status        TEXT NOT NULL DEFAULT 'available'
		              CHECK(status IN ('available','drafted','mine')),
		drafted_at    TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_players_board ON players(board_id)`,
	`CREATE INDEX IF NOT EXISTS idx_players_board_position ON players(board_id, position, status)`,

	// picks.player_id carries no foreign key: the pick log is append-only
	// and must survive purging player rows.
	`CREATE TABLE IF NOT EXISTS picks (
		id          TEXT PRIMARY KEY,
		board_id    TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		player_id   TEXT NOT NULL,
		player_name TEXT NOT NULL,
		position    TEXT NOT NULL
		            CHECK(position IN ('QB','RB','WR','TE','K','DST')),
		kind        TEXT NOT NULL
		            CHECK(kind IN ('mine','other')),
		overall     INTEGER NOT NULL CHECK(overall > 0),
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_picks_board_overall ON picks(board_id, overall)`,

	`CREATE TABLE IF NOT EXISTS position_rules (
		board_id     TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		position     TEXT NOT NULL
		             CHECK(position IN ('QB','RB','WR','TE','K','DST')),
		slip         INTEGER NOT NULL DEFAULT 0 CHECK(slip >= 0),
		roster_limit INTEGER NOT NULL DEFAULT 0 CHECK(roster_limit >= 0),
		PRIMARY KEY (board_id, position)
	)`,
}

// defaultRosterLimits mirrors domain.DefaultRosterLimits. Duplicated here
// so the db package stays dependency-free below the domain layer.
var defaultRosterLimits = map[string]int{
	"QB": 2, "RB": 5, "WR": 5, "TE": 2, "K": 1, "DST": 1,
}

// migrateBackfillPositionRules inserts a default rule row for every
// board/position pair that is missing one. Idempotent: existing rows are
// left untouched. Covers boards created before the rules table existed.
func migrateBackfillPositionRules(db *sql.DB) error {
	ctx := context.Background()

	for pos, limit := range defaultRosterLimits {
		query := `INSERT INTO position_rules (board_id, position, slip, roster_limit)
			SELECT b.id, ?, 0, ?
			FROM boards b
			WHERE NOT EXISTS (
				SELECT 1 FROM position_rules r
				WHERE r.board_id = b.id AND r.position = ?
			)`
		if _, err := db.ExecContext(ctx, query, pos, limit, pos); err != nil {
			return fmt.Errorf("seeding %s rules: %w", pos, err)
		}
	}
	return nil
}
