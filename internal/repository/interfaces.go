package repository

import (
	"context"

	"github.com/artscollective/grantbook/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// FindByIDPrefix resolves a full ID or a unique prefix of one.
	FindByIDPrefix(ctx context.Context, prefix string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// BudgetRepo persists a project's DetailedBudget. Save replaces every line;
// the Update methods write a single user-editable field.
type BudgetRepo interface {
	Load(ctx context.Context, projectID string) (domain.DetailedBudget, error)
	Save(ctx context.Context, projectID string, b domain.DetailedBudget) error
	UpdateItemActual(ctx context.Context, projectID, itemID string, actual *float64) error
	UpdateItemStatus(ctx context.Context, projectID, itemID string, status domain.BudgetItemStatus) error
	UpdateTicketActual(ctx context.Context, projectID string, actual float64) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Activity, error)
}

type ExpenseRepo interface {
	Create(ctx context.Context, e *domain.DirectExpense) error
	ListByProject(ctx context.Context, projectID string) ([]domain.DirectExpense, error)
}

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	// ListForProject returns the venues hosting any of the project's events.
	ListForProject(ctx context.Context, projectID string) ([]domain.Venue, error)
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Event, error)
}

type TicketRepo interface {
	Create(ctx context.Context, t *domain.EventTicket) error
	ListByProject(ctx context.Context, projectID string) ([]domain.EventTicket, error)
}

type SaleRepo interface {
	CreateSession(ctx context.Context, s *domain.SaleSession) error
	CreateTransaction(ctx context.Context, tx *domain.SalesTransaction) error
	// ListSessionsForProject returns sessions tied to the project directly
	// or through one of its events.
	ListSessionsForProject(ctx context.Context, projectID string) ([]domain.SaleSession, error)
	ListTransactionsForProject(ctx context.Context, projectID string) ([]domain.SalesTransaction, error)
}

type SnapshotRepo interface {
	Create(ctx context.Context, s *domain.ProposalSnapshot) error
	GetByID(ctx context.Context, id string) (*domain.ProposalSnapshot, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ProposalSnapshot, error)
}
