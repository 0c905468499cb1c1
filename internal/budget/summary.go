package budget

// BudgetSummary is the composed projected-versus-actual view of a project.
type BudgetSummary struct {
	TotalProjectedRevenue  float64 `json:"totalProjectedRevenue"`
	TotalActualRevenue     float64 `json:"totalActualRevenue"`
	TotalProjectedExpenses float64 `json:"totalProjectedExpenses"`
	TotalActualExpenses    float64 `json:"totalActualExpenses"`
	ProjectedBalance       float64 `json:"projectedBalance"`
	ActualBalance          float64 `json:"actualBalance"`

	// Display only. Neither enters a balance.
	InKindVenueCost       float64 `json:"inKindVenueCost"`
	TotalContributedValue float64 `json:"totalContributedValue"`
}

// ComposeSummary merges the calculator outputs. Ticket and sales revenue
// replace their budget lines in the projection: tickets come from events,
// sales from sale sessions. Only cash venue rentals add to projected
// expenses.
func ComposeSummary(totals BudgetTotals, tickets TicketRevenueResult, actuals ActualsResult, sales SalesRevenueResult, venueCosts VenueCostProjection) BudgetSummary {
	s := BudgetSummary{
		TotalProjectedRevenue: totals.TotalGrants +
			tickets.ProjectedRevenue +
			sales.TotalEstimatedRevenue +
			totals.TotalFundraising +
			totals.TotalContributions,
		TotalActualRevenue: totals.TotalGrantsActual +
			totals.TotalTicketsActual +
			sales.TotalActualRevenue +
			totals.TotalFundraisingActual +
			totals.TotalContributionsActual,
		TotalProjectedExpenses: totals.TotalExpenses + venueCosts.Cash,
		TotalActualExpenses:    actuals.TotalActualPaidExpenses,
		InKindVenueCost:        venueCosts.InKind,
		TotalContributedValue:  actuals.TotalContributedValue,
	}
	s.ProjectedBalance = s.TotalProjectedRevenue - s.TotalProjectedExpenses
	s.ActualBalance = s.TotalActualRevenue - s.TotalActualExpenses
	return s
}
