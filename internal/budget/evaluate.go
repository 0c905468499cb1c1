package budget

import "github.com/artscollective/grantbook/internal/domain"

// Inputs is one immutable snapshot of every read source for a project.
type Inputs struct {
	ProjectID    string
	Budget       *domain.DetailedBudget
	Tasks        []domain.Task
	Activities   []domain.Activity
	Expenses     []domain.DirectExpense
	Events       []domain.Event
	Venues       []domain.Venue
	Tickets      []domain.EventTicket
	Sessions     []domain.SaleSession
	Transactions []domain.SalesTransaction
}

// Evaluation holds every calculator output and the composed summary.
type Evaluation struct {
	Totals     BudgetTotals        `json:"totals"`
	Tickets    TicketRevenueResult `json:"tickets"`
	Actuals    ActualsResult       `json:"actuals"`
	Sales      SalesRevenueResult  `json:"sales"`
	VenueCosts VenueCostProjection `json:"venueCosts"`
	Summary    BudgetSummary       `json:"summary"`
}

// Evaluate runs the live pipeline over in. Nothing is cached; call it again
// whenever any input changes.
func Evaluate(in Inputs) Evaluation {
	var ev Evaluation
	ev.Totals = ComputeBudgetTotals(in.Budget)
	ev.Tickets = ComputeTicketRevenue(in.ProjectID, in.Events, in.Venues, in.Tickets)
	ev.Actuals = ComputeActuals(in.Tasks, in.Activities, in.Expenses)
	ev.Sales = ComputeSalesRevenue(in.ProjectID, in.Events, in.Sessions, in.Transactions)
	ev.VenueCosts = ProjectVenueCosts(in.ProjectID, in.Events, in.Venues)
	ev.Summary = ComposeSummary(ev.Totals, ev.Tickets, ev.Actuals, ev.Sales, ev.VenueCosts)
	return ev
}
