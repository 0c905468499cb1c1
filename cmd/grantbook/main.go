package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/artscollective/grantbook/internal/cli"
	"github.com/artscollective/grantbook/internal/config"
	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/repository"
	"github.com/artscollective/grantbook/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	settingsPath := config.Path()
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}

	dbPath, err := config.DBPath(settings)
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	budgetRepo := repository.NewSQLiteBudgetRepo(database)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if config.UseCaseLogging(settings) {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects:     service.NewProjectService(projectRepo, budgetRepo, uow),
		Budget:       service.NewBudgetService(uow, observers...),
		Adjust:       service.NewAdjustmentService(uow, observers...),
		Snapshots:    service.NewSnapshotService(snapshotRepo, uow, observers...),
		Import:       service.NewImportService(uow, observers...),
		Settings:     settings,
		SettingsPath: settingsPath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// loadDotEnv applies GRANTBOOK_* overrides from an optional env file.
// A missing file is fine; an unreadable or malformed one is not.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}
