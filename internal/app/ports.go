package app

import (
	"context"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/importer"
)

type BudgetViewUseCase interface {
	GetBudgetView(ctx context.Context, req BudgetViewRequest) (*BudgetViewResponse, error)
}

type FinalReportUseCase interface {
	GetFinalReport(ctx context.Context, projectID string) (*FinalReportResponse, error)
}

type AdjustmentUseCase interface {
	SetActualAmount(ctx context.Context, req SetActualAmountRequest) (*AdjustmentResult, error)
	SetActualTicketRevenue(ctx context.Context, req SetTicketRevenueRequest) (*AdjustmentResult, error)
	SetItemStatus(ctx context.Context, req SetItemStatusRequest) (*AdjustmentResult, error)
}

type SnapshotUseCase interface {
	CreateProposalSnapshot(ctx context.Context, projectID, title string) (*domain.ProposalSnapshot, error)
	Get(ctx context.Context, id string) (*domain.ProposalSnapshot, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ProposalSnapshot, error)
}

type ImportResult struct {
	Project          *domain.Project
	BudgetItemCount  int
	VenueCount       int
	EventCount       int
	TicketCount      int
	TaskCount        int
	ActivityCount    int
	ExpenseCount     int
	SaleSessionCount int
	TransactionCount int
}

type ImportProjectUseCase interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
