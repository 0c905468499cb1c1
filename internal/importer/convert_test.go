package importer

import (
	"testing"
	"time"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MinimalProject(t *testing.T) {
	gen, err := Convert(validMinimalSchema())
	require.NoError(t, err)

	assert.NotEmpty(t, gen.Project.ID)
	assert.Equal(t, "Summer Festival", gen.Project.Name)
	assert.Equal(t, domain.ProjectActive, gen.Project.Status)

	b := gen.Project.Budget
	require.Len(t, b.Revenues.Grants, 1)
	assert.NotEqual(t, "g1", b.Revenues.Grants[0].ID, "refs are replaced with fresh ids")
	assert.Equal(t, "Arts Council", b.Revenues.Grants[0].Source)
	assert.NotNil(t, b.Revenues.Sales, "missing categories are initialized")
	assert.Equal(t, 0.0, *b.Revenues.Tickets.ActualRevenue)
	assert.Equal(t, 2, gen.BudgetItemCount())

	assert.Empty(t, gen.Events)
	assert.Empty(t, gen.Tasks)
}

func TestConvert_ResolvesRefs(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	gen, err := convertAt(validFullSchema(), now)
	require.NoError(t, err)

	fee := gen.Project.Budget.Expenses.ProfessionalFees[0]
	require.Len(t, gen.Venues, 1)
	hall := gen.Venues[0]
	assert.Equal(t, domain.CostRented, hall.DefaultCostType)
	assert.Equal(t, domain.PeriodPerDay, hall.DefaultCostPeriod)

	require.Len(t, gen.Events, 2)
	opening, workshop := gen.Events[0], gen.Events[1]
	assert.True(t, opening.BelongsTo(gen.Project.ID))
	require.NotNil(t, opening.VenueID)
	assert.Equal(t, hall.ID, *opening.VenueID)
	assert.Equal(t, domain.EventScheduled, opening.Status)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), opening.EndDate)
	assert.Empty(t, opening.StartTime)
	assert.True(t, workshop.EndDate.IsZero())
	assert.Equal(t, "12:30", workshop.EndTime)
	require.NotNil(t, workshop.VenueCostOverride)
	assert.Equal(t, domain.CostInKind, workshop.VenueCostOverride.CostType)

	require.Len(t, gen.Tickets, 1)
	assert.Equal(t, opening.ID, gen.Tickets[0].EventID)
	assert.Equal(t, "General", gen.Tickets[0].TicketTypeName)
	assert.Equal(t, 40, gen.Tickets[0].SoldCount)

	require.Len(t, gen.Tasks, 2)
	require.NotNil(t, gen.Tasks[0].BudgetItemID)
	assert.Equal(t, fee.ID, *gen.Tasks[0].BudgetItemID)
	assert.Equal(t, domain.TaskTimeBased, gen.Tasks[0].TaskType)
	assert.Equal(t, domain.TaskMilestone, gen.Tasks[1].TaskType)
	assert.Equal(t, domain.WorkPaid, gen.Tasks[1].WorkType, "work type defaults to Paid")

	require.Len(t, gen.Activities, 1)
	assert.Equal(t, gen.Tasks[0].ID, gen.Activities[0].TaskID)
	assert.Equal(t, domain.ActivityApproved, gen.Activities[0].Status)

	require.Len(t, gen.Expenses, 1)
	assert.Equal(t, fee.ID, *gen.Expenses[0].BudgetItemID)
	assert.Equal(t, gen.Project.ID, gen.Expenses[0].ProjectID)

	require.Len(t, gen.SaleSessions, 2)
	bar, shop := gen.SaleSessions[0], gen.SaleSessions[1]
	assert.Equal(t, opening.ID, *bar.EventID)
	assert.Nil(t, bar.ProjectID)
	assert.Equal(t, gen.Project.ID, *shop.ProjectID)
	assert.Nil(t, shop.EventID)

	require.Len(t, gen.Transactions, 1)
	assert.Equal(t, bar.ID, gen.Transactions[0].SaleSessionID)
	assert.Equal(t, now, gen.Transactions[0].CreatedAt)
}

func TestConvert_DefaultsDatesToToday(t *testing.T) {
	s := validFullSchema()
	s.Activities[0].Date = ""
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	gen, err := convertAt(s, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), gen.Activities[0].Date)
}

func TestConvert_SharesTicketTypeIDs(t *testing.T) {
	s := validFullSchema()
	s.EventTickets = append(s.EventTickets,
		TicketImport{EventRef: "workshop", TicketType: "General", Price: 10, Capacity: 20},
		TicketImport{EventRef: "workshop", TicketType: "Student", Price: 5, Capacity: 20},
	)

	gen, err := Convert(s)
	require.NoError(t, err)
	require.Len(t, gen.Tickets, 3)
	assert.Equal(t, gen.Tickets[0].TicketTypeID, gen.Tickets[1].TicketTypeID)
	assert.NotEqual(t, gen.Tickets[0].TicketTypeID, gen.Tickets[2].TicketTypeID)
}

func TestConvert_ExpenseLinesDropRevenueFields(t *testing.T) {
	s := validMinimalSchema()
	s.Budget.Revenues.Grants[0].ActualAmount = ptrFloat(4500)
	s.Budget.Revenues.Grants[0].Status = "Approved"

	gen, err := Convert(s)
	require.NoError(t, err)
	grant := gen.Project.Budget.Revenues.Grants[0]
	assert.Equal(t, 4500.0, *grant.ActualAmount)
	assert.Equal(t, domain.StatusApproved, grant.Status)

	fee := gen.Project.Budget.Expenses.ProfessionalFees[0]
	assert.Nil(t, fee.ActualAmount)
	assert.Empty(t, fee.Status)
}
