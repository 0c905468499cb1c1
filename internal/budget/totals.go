// Package budget computes projected and actual figures for a project's
// budget from immutable snapshots of its records. Every function is pure:
// inputs are never mutated and nothing is cached between calls.
package budget

import "github.com/artscollective/grantbook/internal/domain"

// BudgetTotals holds per-category and grand totals of a DetailedBudget.
// Ticket revenue has no budgeted total here; it is derived from events and
// added by ComposeSummary.
type BudgetTotals struct {
	TotalGrants        float64 `json:"totalGrants"`
	TotalSales         float64 `json:"totalSales"`
	TotalFundraising   float64 `json:"totalFundraising"`
	TotalContributions float64 `json:"totalContributions"`

	TotalGrantsActual        float64 `json:"totalGrantsActual"`
	TotalTicketsActual       float64 `json:"totalTicketsActual"`
	TotalSalesActual         float64 `json:"totalSalesActual"`
	TotalFundraisingActual   float64 `json:"totalFundraisingActual"`
	TotalContributionsActual float64 `json:"totalContributionsActual"`

	TotalProfessionalFees        float64 `json:"totalProfessionalFees"`
	TotalTravel                  float64 `json:"totalTravel"`
	TotalProduction              float64 `json:"totalProduction"`
	TotalAdministration          float64 `json:"totalAdministration"`
	TotalResearch                float64 `json:"totalResearch"`
	TotalProfessionalDevelopment float64 `json:"totalProfessionalDevelopment"`

	TotalRevenue        float64 `json:"totalRevenue"`
	TotalActualRevenue  float64 `json:"totalActualRevenue"`
	TotalSecuredRevenue float64 `json:"totalSecuredRevenue"`
	TotalPendingRevenue float64 `json:"totalPendingRevenue"`
	TotalExpenses       float64 `json:"totalExpenses"`
	Balance             float64 `json:"balance"`
}

// ComputeBudgetTotals sums a budget's lines. Denied revenue lines are left
// out of budgeted totals but their actual amounts still count. A nil budget
// is treated as the empty budget.
func ComputeBudgetTotals(b *domain.DetailedBudget) BudgetTotals {
	full := domain.ApplyBudgetDefaults(b)
	rev := full.Revenues
	exp := full.Expenses

	var t BudgetTotals

	t.TotalGrants = sumBudgeted(rev.Grants)
	t.TotalSales = sumBudgeted(rev.Sales)
	t.TotalFundraising = sumBudgeted(rev.Fundraising)
	t.TotalContributions = sumBudgeted(rev.Contributions)

	t.TotalGrantsActual = sumActual(rev.Grants)
	t.TotalTicketsActual = domain.Float64FromPtrWithDefault(0, rev.Tickets.ActualRevenue)
	t.TotalSalesActual = sumActual(rev.Sales)
	t.TotalFundraisingActual = sumActual(rev.Fundraising)
	t.TotalContributionsActual = sumActual(rev.Contributions)

	t.TotalProfessionalFees = sumAmounts(exp.ProfessionalFees)
	t.TotalTravel = sumAmounts(exp.Travel)
	t.TotalProduction = sumAmounts(exp.Production)
	t.TotalAdministration = sumAmounts(exp.Administration)
	t.TotalResearch = sumAmounts(exp.Research)
	t.TotalProfessionalDevelopment = sumAmounts(exp.ProfessionalDevelopment)

	t.TotalRevenue = t.TotalGrants + t.TotalSales + t.TotalFundraising + t.TotalContributions
	t.TotalActualRevenue = t.TotalGrantsActual + t.TotalTicketsActual + t.TotalSalesActual +
		t.TotalFundraisingActual + t.TotalContributionsActual

	for _, cat := range domain.ItemRevenueCategories {
		items := full.RevenueItems(cat)
		t.TotalSecuredRevenue += sumWithStatus(items, domain.StatusApproved)
		t.TotalPendingRevenue += sumWithStatus(items, domain.StatusPending)
	}

	t.TotalExpenses = t.TotalProfessionalFees + t.TotalTravel + t.TotalProduction +
		t.TotalAdministration + t.TotalResearch + t.TotalProfessionalDevelopment
	t.Balance = t.TotalRevenue - t.TotalExpenses

	return t
}

// ExpenseCategoryTotal returns the budgeted total for one expense category.
func (t BudgetTotals) ExpenseCategoryTotal(cat domain.ExpenseCategory) float64 {
	switch cat {
	case domain.ExpenseProfessionalFees:
		return t.TotalProfessionalFees
	case domain.ExpenseTravel:
		return t.TotalTravel
	case domain.ExpenseProduction:
		return t.TotalProduction
	case domain.ExpenseAdministration:
		return t.TotalAdministration
	case domain.ExpenseResearch:
		return t.TotalResearch
	case domain.ExpenseProfessionalDevelopment:
		return t.TotalProfessionalDevelopment
	default:
		return 0
	}
}

// RevenueCategoryTotals returns the budgeted and actual totals for one
// revenue category. Tickets has no budgeted total at this level.
func (t BudgetTotals) RevenueCategoryTotals(cat domain.RevenueCategory) (budgeted, actual float64) {
	switch cat {
	case domain.RevenueGrants:
		return t.TotalGrants, t.TotalGrantsActual
	case domain.RevenueTickets:
		return 0, t.TotalTicketsActual
	case domain.RevenueSales:
		return t.TotalSales, t.TotalSalesActual
	case domain.RevenueFundraising:
		return t.TotalFundraising, t.TotalFundraisingActual
	case domain.RevenueContributions:
		return t.TotalContributions, t.TotalContributionsActual
	default:
		return 0, 0
	}
}

func sumBudgeted(items []domain.BudgetItem) float64 {
	var sum float64
	for _, it := range items {
		if it.Status == domain.StatusDenied {
			continue
		}
		sum += it.Amount
	}
	return sum
}

func sumActual(items []domain.BudgetItem) float64 {
	var sum float64
	for _, it := range items {
		sum += domain.Float64FromPtrWithDefault(0, it.ActualAmount)
	}
	return sum
}

func sumAmounts(items []domain.BudgetItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}

func sumWithStatus(items []domain.BudgetItem, status domain.BudgetItemStatus) float64 {
	var sum float64
	for _, it := range items {
		if it.Status == status {
			sum += it.Amount
		}
	}
	return sum
}
