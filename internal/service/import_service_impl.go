package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/importer"
	"github.com/artscollective/grantbook/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: combineObservers(observers)}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportProjectFromSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	fields := map[string]any{"project": schema.Project.Name}
	defer observe(ctx, s.observer, "import-project", time.Now().UTC(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
	}

	var gen *importer.GeneratedProject
	gen, err = importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return persistGenerated(ctx, tx, gen)
	})
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		Project:          gen.Project,
		BudgetItemCount:  gen.BudgetItemCount(),
		VenueCount:       len(gen.Venues),
		EventCount:       len(gen.Events),
		TicketCount:      len(gen.Tickets),
		TaskCount:        len(gen.Tasks),
		ActivityCount:    len(gen.Activities),
		ExpenseCount:     len(gen.Expenses),
		SaleSessionCount: len(gen.SaleSessions),
		TransactionCount: len(gen.Transactions),
	}
	fields["project_id"] = gen.Project.ID
	fields["event_count"] = result.EventCount
	return result, nil
}

func persistGenerated(ctx context.Context, tx db.DBTX, gen *importer.GeneratedProject) error {
	if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, gen.Project); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	if err := repository.NewSQLiteBudgetRepo(tx).Save(ctx, gen.Project.ID, gen.Project.Budget); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	venues := repository.NewSQLiteVenueRepo(tx)
	for i := range gen.Venues {
		if err := venues.Create(ctx, &gen.Venues[i]); err != nil {
			return fmt.Errorf("creating venue %q: %w", gen.Venues[i].Name, err)
		}
	}

	events := repository.NewSQLiteEventRepo(tx)
	for i := range gen.Events {
		if err := events.Create(ctx, &gen.Events[i]); err != nil {
			return fmt.Errorf("creating event %q: %w", gen.Events[i].Title, err)
		}
	}

	tickets := repository.NewSQLiteTicketRepo(tx)
	for i := range gen.Tickets {
		if err := tickets.Create(ctx, &gen.Tickets[i]); err != nil {
			return fmt.Errorf("creating ticket %q: %w", gen.Tickets[i].TicketTypeName, err)
		}
	}

	tasks := repository.NewSQLiteTaskRepo(tx)
	for i := range gen.Tasks {
		if err := tasks.Create(ctx, &gen.Tasks[i]); err != nil {
			return fmt.Errorf("creating task %q: %w", gen.Tasks[i].Title, err)
		}
	}

	activities := repository.NewSQLiteActivityRepo(tx)
	for i := range gen.Activities {
		if err := activities.Create(ctx, &gen.Activities[i]); err != nil {
			return fmt.Errorf("creating activity: %w", err)
		}
	}

	expenses := repository.NewSQLiteExpenseRepo(tx)
	for i := range gen.Expenses {
		if err := expenses.Create(ctx, &gen.Expenses[i]); err != nil {
			return fmt.Errorf("creating direct expense: %w", err)
		}
	}

	sales := repository.NewSQLiteSaleRepo(tx)
	for i := range gen.SaleSessions {
		if err := sales.CreateSession(ctx, &gen.SaleSessions[i]); err != nil {
			return fmt.Errorf("creating sale session %q: %w", gen.SaleSessions[i].Name, err)
		}
	}
	for i := range gen.Transactions {
		if err := sales.CreateTransaction(ctx, &gen.Transactions[i]); err != nil {
			return fmt.Errorf("creating sales transaction: %w", err)
		}
	}
	return nil
}
