package budget

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComposeSummary_Figures(t *testing.T) {
	totals := BudgetTotals{
		TotalGrants:              1000,
		TotalSales:               999, // replaced by sale sessions
		TotalFundraising:         200,
		TotalContributions:       50,
		TotalGrantsActual:        800,
		TotalTicketsActual:       300,
		TotalSalesActual:         999,
		TotalFundraisingActual:   100,
		TotalContributionsActual: 50,
		TotalExpenses:            900,
	}
	tickets := TicketRevenueResult{ProjectedRevenue: 1600}
	actuals := ActualsResult{TotalActualPaidExpenses: 700, TotalContributedValue: 120}
	sales := SalesRevenueResult{TotalEstimatedRevenue: 500, TotalActualRevenue: 300}
	venues := VenueCostProjection{Cash: 400, InKind: 250}

	s := ComposeSummary(totals, tickets, actuals, sales, venues)

	assert.Equal(t, 3350.0, s.TotalProjectedRevenue)
	assert.Equal(t, 1550.0, s.TotalActualRevenue)
	assert.Equal(t, 1300.0, s.TotalProjectedExpenses)
	assert.Equal(t, 700.0, s.TotalActualExpenses)
	assert.Equal(t, 2050.0, s.ProjectedBalance)
	assert.Equal(t, 850.0, s.ActualBalance)
	assert.Equal(t, 250.0, s.InKindVenueCost)
	assert.Equal(t, 120.0, s.TotalContributedValue)
}

func TestEvaluate_EmptyProject(t *testing.T) {
	ev := Evaluate(Inputs{ProjectID: testProject})
	assert.Equal(t, BudgetSummary{}, ev.Summary)
	assert.Equal(t, TicketRevenueResult{}, ev.Tickets)
	assert.Empty(t, ev.Actuals.ByItem)
}

func randomInputs(rng *rand.Rand) Inputs {
	in := Inputs{ProjectID: testProject}
	b := domain.NewDetailedBudget()
	statuses := []domain.BudgetItemStatus{domain.StatusPending, domain.StatusApproved, domain.StatusDenied}
	nGrants, nExpenses := rng.Intn(6), rng.Intn(6)
	for i := 0; i < nGrants; i++ {
		b.Revenues.Grants = append(b.Revenues.Grants, item("g", float64(rng.Intn(5000)), domain.Float64Ptr(float64(rng.Intn(5000))), statuses[rng.Intn(3)]))
	}
	for i := 0; i < nExpenses; i++ {
		b.Expenses.Production = append(b.Expenses.Production, domain.BudgetItem{ID: fmt.Sprintf("x%d", i), Amount: float64(rng.Intn(300000)) / 100})
	}
	in.Budget = &b

	nEvents := rng.Intn(5) + 1
	for i := 0; i < nEvents; i++ {
		vid := string(rune('a' + i))
		in.Venues = append(in.Venues, domain.Venue{ID: vid, Capacity: rng.Intn(400), DefaultCostType: domain.CostRented, DefaultCost: float64(rng.Intn(500)), DefaultCostPeriod: domain.PeriodPerDay})
		e := performance("e"+vid, vid)
		e.StartDate = day(2025, 3, 1)
		e.EndDate = day(2025, 3, 1+rng.Intn(4))
		in.Events = append(in.Events, e)
		nTickets := rng.Intn(4)
		for j := 0; j < nTickets; j++ {
			in.Tickets = append(in.Tickets, domain.EventTicket{
				ID:       e.ID + "-t",
				EventID:  e.ID,
				Price:    float64(rng.Intn(10000)) / 100,
				Capacity: rng.Intn(300),
			})
		}
	}

	// Some tasks bill lines outside the budget so unallocated cost shows up.
	works := []domain.WorkType{domain.WorkPaid, domain.WorkInKind, domain.WorkVolunteer}
	activityStatuses := []domain.ActivityStatus{domain.ActivityPending, domain.ActivityApproved}
	nTasks := rng.Intn(8)
	for i := 0; i < nTasks; i++ {
		taskID := fmt.Sprintf("t%d", i)
		itemID := fmt.Sprintf("x%d", rng.Intn(nExpenses+2))
		in.Tasks = append(in.Tasks, task(taskID, itemID, float64(rng.Intn(10000))/100, works[rng.Intn(3)]))
		for j := rng.Intn(4); j > 0; j-- {
			in.Activities = append(in.Activities, activity(fmt.Sprintf("%s-a%d", taskID, j), taskID,
				float64(rng.Intn(1600))/100, activityStatuses[rng.Intn(2)]))
		}
	}
	for i := rng.Intn(4); i > 0; i-- {
		in.Expenses = append(in.Expenses, domain.DirectExpense{
			ID:           fmt.Sprintf("d%d", i),
			ProjectID:    testProject,
			BudgetItemID: domain.StrPtr(fmt.Sprintf("x%d", rng.Intn(nExpenses+2))),
			Amount:       float64(rng.Intn(100000)) / 100,
		})
	}
	return in
}

// TestEvaluate_Invariants property-tests the weighted price identity and the
// balance identities over random projects.
func TestEvaluate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		in := randomInputs(rng)
		ev := Evaluate(in)

		tk := ev.Tickets
		if tk.ProjectedAudience > 0 {
			assert.InDelta(t, tk.ProjectedRevenue, float64(tk.ProjectedAudience)*tk.AverageTicketPrice, 1e-6,
				"trial %d: audience * price must equal revenue", trial)
		} else {
			assert.Zero(t, tk.AverageTicketPrice, "trial %d", trial)
		}
		assert.False(t, math.IsNaN(tk.AveragePctSold) || math.IsInf(tk.AveragePctSold, 0), "trial %d", trial)

		s := ev.Summary
		assert.Equal(t, s.TotalProjectedRevenue-s.TotalProjectedExpenses, s.ProjectedBalance, "trial %d", trial)
		assert.Equal(t, s.TotalActualRevenue-s.TotalActualExpenses, s.ActualBalance, "trial %d", trial)

		assert.Equal(t, ev, Evaluate(in), "trial %d: evaluation must be repeatable", trial)
		report := ComputeReportActuals(in.Budget, in.Tasks, in.Activities, in.Expenses)
		assert.Equal(t, report, ComputeReportActuals(in.Budget, in.Tasks, in.Activities, in.Expenses), "trial %d: report actuals must be repeatable", trial)
	}
}
