package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Project: ProjectImport{Name: "Summer Festival"},
		Budget: BudgetImport{
			Revenues: RevenuesImport{
				Grants: []ItemImport{{Ref: "g1", Source: "Arts Council", Amount: 5000}},
			},
			Expenses: ExpensesImport{
				ProfessionalFees: []ItemImport{{Ref: "fee", Description: "Artist fees", Amount: 3000}},
			},
		},
	}
}

func validFullSchema() *ImportSchema {
	s := validMinimalSchema()
	s.Budget.Revenues.Tickets.ActualRevenue = ptrFloat(400)
	s.Budget.Revenues.Sales = []ItemImport{{Ref: "merch", Source: "Merch", Amount: 300, ActualAmount: ptrFloat(120), Status: "Approved"}}
	s.Venues = []VenueImport{{Ref: "hall", Name: "Main Hall", Capacity: 200, CostType: "rented", Cost: 250, CostPeriod: "per_day"}}
	s.Events = []EventImport{
		{Ref: "opening", VenueRef: ptrStr("hall"), Title: "Opening", Category: "Concert", StartDate: "2025-07-01", EndDate: ptrStr("2025-07-02"), IsAllDay: true},
		{Ref: "workshop", Title: "Workshop", Category: "Workshop", StartDate: "2025-07-03", StartTime: "10:00", EndTime: "12:30",
			VenueCostOverride: &VenueCostImport{CostType: "in_kind", Cost: 80, Period: "flat_rate"}},
	}
	s.EventTickets = []TicketImport{{EventRef: "opening", TicketType: "General", Price: 20, Capacity: 150, SoldCount: 40}}
	s.Tasks = []TaskImport{
		{Ref: "rehearse", Title: "Rehearsals", BudgetItemRef: ptrStr("fee"), WorkType: "Paid", EstimatedHours: 20, HourlyRate: 40},
		{Ref: "launch", Title: "Launch", TaskType: "Milestone"},
	}
	s.Activities = []ActivityImport{{TaskRef: "rehearse", MemberID: "m1", Hours: 4, Status: "Approved", Date: "2025-06-20"}}
	s.DirectExpenses = []ExpenseImport{{BudgetItemRef: ptrStr("fee"), Description: "Deposit", Amount: 500, Date: "2025-06-01"}}
	s.SaleSessions = []SaleSessionImport{
		{Ref: "bar", Name: "Bar", AssociationType: "event", EventRef: ptrStr("opening"), ExpectedRevenue: ptrFloat(600)},
		{Ref: "shop", Name: "Shop", AssociationType: "project"},
	}
	s.SalesTransactions = []TransactionImport{{SessionRef: "bar", Total: 75}}
	return s
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validFullSchema()))
}

func TestValidateImportSchema_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ImportSchema)
		wantMsg string
	}{
		{"missing name", func(s *ImportSchema) { s.Project.Name = "" }, "project.name is required"},
		{"bad project status", func(s *ImportSchema) { s.Project.Status = "paused" }, `project.status: invalid value "paused"`},
		{"missing item ref", func(s *ImportSchema) { s.Budget.Revenues.Grants[0].Ref = "" }, "budget.revenues.grants[0].ref is required"},
		{"duplicate ref across kinds", func(s *ImportSchema) { s.Budget.Expenses.ProfessionalFees[0].Ref = "g1" },
			`budget.expenses.professional_fees[0].ref: duplicate ref "g1"`},
		{"negative amount", func(s *ImportSchema) { s.Budget.Revenues.Grants[0].Amount = -1 }, "budget.revenues.grants[0].amount must not be negative"},
		{"bad item status", func(s *ImportSchema) { s.Budget.Revenues.Grants[0].Status = "pending" }, `budget.revenues.grants[0].status: invalid value "pending"`},
		{"expense actual", func(s *ImportSchema) { s.Budget.Expenses.ProfessionalFees[0].ActualAmount = ptrFloat(10) },
			"budget.expenses.professional_fees[0].actual_amount: expense lines have no actual amount"},
		{"expense status", func(s *ImportSchema) { s.Budget.Expenses.ProfessionalFees[0].Status = "Approved" },
			"budget.expenses.professional_fees[0].status: expense lines have no status"},
		{"negative ticket actual", func(s *ImportSchema) { s.Budget.Revenues.Tickets.ActualRevenue = ptrFloat(-5) },
			"budget.revenues.tickets.actual_revenue must not be negative"},
		{"bad venue cost type", func(s *ImportSchema) { s.Venues[0].CostType = "borrowed" }, `venues[0].cost_type: invalid value "borrowed"`},
		{"dangling venue", func(s *ImportSchema) { s.Events[0].VenueRef = ptrStr("nowhere") }, `events[0].venue_ref: ref "nowhere" not found in venues`},
		{"bad start date", func(s *ImportSchema) { s.Events[0].StartDate = "07/01/2025" }, `events[0].start_date: invalid date format "07/01/2025"`},
		{"end before start", func(s *ImportSchema) { s.Events[0].EndDate = ptrStr("2025-06-30") }, `events[0].end_date "2025-06-30" must not be before start_date "2025-07-01"`},
		{"bad clock", func(s *ImportSchema) { s.Events[1].StartTime = "10am" }, `events[1].start_time: invalid time "10am" (expected HH:MM)`},
		{"bad override period", func(s *ImportSchema) { s.Events[1].VenueCostOverride.Period = "weekly" },
			`events[1].venue_cost_override.period: invalid value "weekly"`},
		{"bad event status", func(s *ImportSchema) { s.Events[0].Status = "Postponed" }, `events[0].status: invalid value "Postponed"`},
		{"dangling ticket event", func(s *ImportSchema) { s.EventTickets[0].EventRef = "gala" }, `event_tickets[0].event_ref: ref "gala" not found in events`},
		{"milestone with link", func(s *ImportSchema) { s.Tasks[1].BudgetItemRef = ptrStr("fee") },
			"tasks[1].budget_item_ref: milestone tasks cannot link to a budget item"},
		{"task linked to revenue", func(s *ImportSchema) { s.Tasks[0].BudgetItemRef = ptrStr("g1") }, `tasks[0].budget_item_ref: ref "g1" is a revenue line`},
		{"bad work type", func(s *ImportSchema) { s.Tasks[0].WorkType = "Contract" }, `tasks[0].work_type: invalid value "Contract"`},
		{"dangling activity task", func(s *ImportSchema) { s.Activities[0].TaskRef = "ghost" }, `activities[0].task_ref: ref "ghost" not found in tasks`},
		{"bad activity status", func(s *ImportSchema) { s.Activities[0].Status = "Rejected" }, `activities[0].status: invalid value "Rejected"`},
		{"dangling expense item", func(s *ImportSchema) { s.DirectExpenses[0].BudgetItemRef = ptrStr("merch") },
			`direct_expenses[0].budget_item_ref: ref "merch" not found in budget expenses`},
		{"event session without event", func(s *ImportSchema) { s.SaleSessions[0].EventRef = nil },
			"sale_sessions[0].event_ref is required for event sessions"},
		{"project session with event", func(s *ImportSchema) { s.SaleSessions[1].EventRef = ptrStr("opening") },
			"sale_sessions[1].event_ref: only event sessions reference an event"},
		{"bad association", func(s *ImportSchema) { s.SaleSessions[1].AssociationType = "venue" }, `sale_sessions[1].association_type: invalid value "venue"`},
		{"dangling transaction session", func(s *ImportSchema) { s.SalesTransactions[0].SessionRef = "kiosk" },
			`sales_transactions[0].session_ref: ref "kiosk" not found in sale_sessions`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validFullSchema()
			tt.mutate(s)
			errs := ValidateImportSchema(s)
			require.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.wantMsg) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected error containing %q, got %v", tt.wantMsg, errs)
		})
	}
}

func TestValidateImportSchema_CollectsEveryError(t *testing.T) {
	s := validFullSchema()
	s.Project.Name = ""
	s.Venues[0].Capacity = -1
	s.EventTickets[0].Price = -2
	s.SalesTransactions[0].Total = -3

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 4)
}

func TestParseImportSchema(t *testing.T) {
	data := []byte(`{
		"project": {"name": "Tour"},
		"budget": {
			"revenues": {"grants": [{"ref": "g1", "amount": 100, "status": "Pending"}], "tickets": {"actual_revenue": 40}},
			"expenses": {"professional_development": [{"ref": "pd", "amount": 60}]}
		},
		"sale_sessions": [{"ref": "s1", "name": "Merch", "association_type": "project", "expected_revenue": 90}]
	}`)

	s, err := ParseImportSchema(data)
	require.NoError(t, err)
	assert.Equal(t, "Tour", s.Project.Name)
	require.Len(t, s.Budget.Revenues.Grants, 1)
	assert.Equal(t, "Pending", s.Budget.Revenues.Grants[0].Status)
	assert.Equal(t, 40.0, *s.Budget.Revenues.Tickets.ActualRevenue)
	require.Len(t, s.Budget.Expenses.ProfessionalDevelopment, 1)
	assert.Equal(t, 90.0, *s.SaleSessions[0].ExpectedRevenue)
	assert.Empty(t, ValidateImportSchema(s))

	_, err = ParseImportSchema([]byte(`{"project":`))
	assert.ErrorContains(t, err, "parsing import file")
}
