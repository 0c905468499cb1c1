package budget

import "github.com/artscollective/grantbook/internal/domain"

// CategoryComparison is budgeted against actual for one category.
type CategoryComparison struct {
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
	Actual   float64 `json:"actual"`
	Variance float64 `json:"variance"`
}

// FinalReport is the figures submitted at project close.
type FinalReport struct {
	Revenues            []CategoryComparison `json:"revenues"`
	Expenses            []CategoryComparison `json:"expenses"`
	TotalActualRevenue  float64              `json:"totalActualRevenue"`
	TotalActualExpenses float64              `json:"totalActualExpenses"`
	UnallocatedExpenses float64              `json:"unallocatedExpenses"`
	InKindValue         float64              `json:"inKindValue"`
	ApprovedHours       float64              `json:"approvedHours"`
	Balance             float64              `json:"balance"`
}

// ComposeFinalReport lays report actuals beside the budget. Ticket and
// sales budgeted figures come from the projections, as in the live view.
// Sales actuals are the sale-session receipts.
func ComposeFinalReport(totals BudgetTotals, tickets TicketRevenueResult, sales SalesRevenueResult, actuals ReportActuals) FinalReport {
	r := FinalReport{
		Revenues:            []CategoryComparison{},
		Expenses:            []CategoryComparison{},
		TotalActualExpenses: actuals.TotalActualExpenses,
		UnallocatedExpenses: actuals.Unallocated,
		InKindValue:         actuals.InKindValue,
		ApprovedHours:       actuals.ApprovedHours,
	}

	revenueCats := []domain.RevenueCategory{
		domain.RevenueGrants, domain.RevenueTickets, domain.RevenueSales,
		domain.RevenueFundraising, domain.RevenueContributions,
	}
	for _, cat := range revenueCats {
		budgeted, actual := totals.RevenueCategoryTotals(cat)
		switch cat {
		case domain.RevenueTickets:
			budgeted = tickets.ProjectedRevenue
		case domain.RevenueSales:
			budgeted = sales.TotalEstimatedRevenue
			actual = sales.TotalActualRevenue
		}
		r.Revenues = append(r.Revenues, comparison(string(cat), budgeted, actual))
		r.TotalActualRevenue += actual
	}

	for _, cat := range domain.ExpenseCategories {
		r.Expenses = append(r.Expenses, comparison(string(cat), totals.ExpenseCategoryTotal(cat), actuals.ByCategory[cat]))
	}

	r.Balance = r.TotalActualRevenue - r.TotalActualExpenses
	return r
}

func comparison(category string, budgeted, actual float64) CategoryComparison {
	return CategoryComparison{Category: category, Budgeted: budgeted, Actual: actual, Variance: actual - budgeted}
}
