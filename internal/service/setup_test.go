package service

import (
	"testing"

	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/repository"
	"github.com/mwhitman/draftboard/internal/testutil"
)

func setupRepos(t *testing.T) (
	*repository.SQLiteBoardRepo,
	*repository.SQLitePlayerRepo,
	*repository.SQLitePickRepo,
	*repository.SQLiteRuleRepo,
	db.UnitOfWork,
) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteBoardRepo(database),
		repository.NewSQLitePlayerRepo(database),
		repository.NewSQLitePickRepo(database),
		repository.NewSQLiteRuleRepo(database),
		testutil.NewTestUoW(database)
}
