package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mwhitman/draftboard/internal/cli"
	"github.com/mwhitman/draftboard/internal/db"
	"github.com/mwhitman/draftboard/internal/repository"
	"github.com/mwhitman/draftboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.draftboard/draftboard.db
	dbPath := os.Getenv("DRAFTBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".draftboard", "draftboard.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	boardRepo := repository.NewSQLiteBoardRepo(database)
	playerRepo := repository.NewSQLitePlayerRepo(database)
	pickRepo := repository.NewSQLitePickRepo(database)
	ruleRepo := repository.NewSQLiteRuleRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging for the read services.
	var observers []service.UseCaseObserver
	if os.Getenv("DRAFTBOARD_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Boards:  service.NewBoardService(boardRepo, uow),
		Players: service.NewPlayerService(playerRepo),
		Rules:   service.NewRuleService(ruleRepo),
		Draft:   service.NewDraftService(pickRepo, uow),
		Matrix:  service.NewMatrixService(boardRepo, playerRepo, ruleRepo, observers...),
		Advise:  service.NewAdviseService(boardRepo, playerRepo, ruleRepo, observers...),
		Summary: service.NewSummaryService(boardRepo, playerRepo, pickRepo, ruleRepo, observers...),
		Import:  service.NewImportService(boardRepo, playerRepo, uow, observers...),
	}

	// Detect interactive terminal for the ambiguous-match picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
