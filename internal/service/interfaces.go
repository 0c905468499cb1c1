package service

import (
	"context"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	// GetByID returns the project with its budget loaded.
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve accepts a full project ID or a unique prefix of one.
	Resolve(ctx context.Context, idOrPrefix string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type BudgetService interface {
	GetBudgetView(ctx context.Context, req app.BudgetViewRequest) (*app.BudgetViewResponse, error)
	GetFinalReport(ctx context.Context, projectID string) (*app.FinalReportResponse, error)
}

type AdjustmentService interface {
	SetActualAmount(ctx context.Context, req app.SetActualAmountRequest) (*app.AdjustmentResult, error)
	SetActualTicketRevenue(ctx context.Context, req app.SetTicketRevenueRequest) (*app.AdjustmentResult, error)
	SetItemStatus(ctx context.Context, req app.SetItemStatusRequest) (*app.AdjustmentResult, error)
}

type SnapshotService interface {
	CreateProposalSnapshot(ctx context.Context, projectID, title string) (*domain.ProposalSnapshot, error)
	Get(ctx context.Context, id string) (*domain.ProposalSnapshot, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ProposalSnapshot, error)
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error)
}
