package testutil

import (
	"database/sql"
	"testing"

	"github.com/mwhitman/draftboard/internal/db"
)

// NewTestDB opens an in-memory draftboard database with the full schema
// applied and closes it when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in the UnitOfWork the services expect.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
