package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"boards", "players", "picks", "position_rules"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_boards_short_id",
		"idx_players_board",
		"idx_players_board_position",
		"idx_picks_board_overall",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_BackfillsPositionRules(t *testing.T) {
	db := openTestDB(t)

	// Insert a board directly, bypassing the service layer that would seed rules.
	_, err := db.Exec(`INSERT INTO boards (id, short_id, name, created_at, updated_at)
		VALUES ('b1', 'FF25', 'Main', '2026-08-30T00:00:00Z', '2026-08-30T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM position_rules WHERE board_id = 'b1'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 6, count, "one rule per position")

	// Re-running must not duplicate or reset rows.
	_, err = db.Exec(`UPDATE position_rules SET slip = 4 WHERE board_id = 'b1' AND position = 'RB'`)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	var slip int
	err = db.QueryRow(`SELECT slip FROM position_rules WHERE board_id = 'b1' AND position = 'RB'`).Scan(&slip)
	require.NoError(t, err)
	assert.Equal(t, 4, slip)
}

func TestMigrate_RejectsNegativeSlip(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO boards (id, short_id, name, created_at, updated_at)
		VALUES ('b1', 'FF25', 'Main', '2026-08-30T00:00:00Z', '2026-08-30T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE position_rules SET slip = -1 WHERE board_id = 'b1' AND position = 'QB'`)
	assert.Error(t, err, "CHECK(slip >= 0) should reject negative slip")
}
