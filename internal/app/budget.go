package app

import (
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/domain"
)

type BudgetViewRequest struct {
	ProjectID string
}

// BudgetViewResponse is the live view of one project: its stored budget
// and every figure derived from the project's current records.
type BudgetViewResponse struct {
	Project    *domain.Project
	Budget     domain.DetailedBudget
	Evaluation budget.Evaluation
}

// FinalReportResponse carries the closing report. Actuals is the
// approved-only reconciliation the report was built from.
type FinalReportResponse struct {
	Project *domain.Project
	Report  budget.FinalReport
	Actuals budget.ReportActuals
	Tickets budget.TicketRevenueResult
	Sales   budget.SalesRevenueResult
}
