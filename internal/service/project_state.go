package service

import (
	"context"
	"fmt"

	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
)

// projectState is every read source of one project, loaded in a single
// transaction so the calculators see one consistent snapshot.
type projectState struct {
	project *domain.Project
	inputs  budget.Inputs
}

func loadProjectState(ctx context.Context, uow db.UnitOfWork, projectID string) (*projectState, error) {
	var st projectState
	err := uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if p.Budget, err = repository.NewSQLiteBudgetRepo(tx).Load(ctx, projectID); err != nil {
			return fmt.Errorf("loading budget: %w", err)
		}

		in := budget.Inputs{ProjectID: projectID, Budget: &p.Budget}
		if in.Tasks, err = repository.NewSQLiteTaskRepo(tx).ListByProject(ctx, projectID); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		if in.Activities, err = repository.NewSQLiteActivityRepo(tx).ListByProject(ctx, projectID); err != nil {
			return fmt.Errorf("loading activities: %w", err)
		}
		if in.Expenses, err = repository.NewSQLiteExpenseRepo(tx).ListByProject(ctx, projectID); err != nil {
			return fmt.Errorf("loading direct expenses: %w", err)
		}
		if err := loadTicketSources(ctx, tx, projectID, &in); err != nil {
			return err
		}
		sales := repository.NewSQLiteSaleRepo(tx)
		if in.Sessions, err = sales.ListSessionsForProject(ctx, projectID); err != nil {
			return fmt.Errorf("loading sale sessions: %w", err)
		}
		if in.Transactions, err = sales.ListTransactionsForProject(ctx, projectID); err != nil {
			return fmt.Errorf("loading sales transactions: %w", err)
		}

		st.project = p
		st.inputs = in
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// loadTicketSources fills the events, venues and tickets of in.
func loadTicketSources(ctx context.Context, tx db.DBTX, projectID string, in *budget.Inputs) error {
	var err error
	if in.Events, err = repository.NewSQLiteEventRepo(tx).ListByProject(ctx, projectID); err != nil {
		return fmt.Errorf("loading events: %w", err)
	}
	if in.Venues, err = repository.NewSQLiteVenueRepo(tx).ListForProject(ctx, projectID); err != nil {
		return fmt.Errorf("loading venues: %w", err)
	}
	if in.Tickets, err = repository.NewSQLiteTicketRepo(tx).ListByProject(ctx, projectID); err != nil {
		return fmt.Errorf("loading tickets: %w", err)
	}
	return nil
}
