package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/importer"
	"github.com/artscollective/grantbook/internal/testutil"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }

// festivalSchema is a small but complete project file. Hand-computed
// figures for it are asserted throughout this package.
func festivalSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Project: importer.ProjectImport{Name: "Summer Festival", Description: "Two nights in the park"},
		Budget: importer.BudgetImport{
			Revenues: importer.RevenuesImport{
				Grants: []importer.ItemImport{
					{Ref: "g1", Source: "Arts Council", Amount: 5000, ActualAmount: ptrFloat(4000), Status: "Approved"},
					{Ref: "g2", Source: "City", Amount: 1000, Status: "Pending"},
				},
				Tickets:     importer.TicketsImport{ActualRevenue: ptrFloat(900)},
				Sales:       []importer.ItemImport{{Ref: "merch", Source: "Merch", Amount: 300}},
				Fundraising: []importer.ItemImport{{Ref: "gala", Source: "Gala dinner", Amount: 500}},
			},
			Expenses: importer.ExpensesImport{
				ProfessionalFees: []importer.ItemImport{{Ref: "fee", Description: "Artist fees", Amount: 3000}},
				Travel:           []importer.ItemImport{{Ref: "van", Description: "Van rental", Amount: 400}},
			},
		},
		Venues: []importer.VenueImport{{Ref: "hall", Name: "Park Hall", Capacity: 200, CostType: "rented", Cost: 250, CostPeriod: "per_day"}},
		Events: []importer.EventImport{
			{Ref: "opening", VenueRef: ptrStr("hall"), Title: "Opening", Category: "Concert", StartDate: "2025-07-01", EndDate: ptrStr("2025-07-02"), IsAllDay: true},
			{Ref: "workshop", Title: "Workshop", Category: "Workshop", StartDate: "2025-07-03", StartTime: "10:00", EndTime: "12:00"},
		},
		EventTickets: []importer.TicketImport{{EventRef: "opening", TicketType: "General", Price: 20, Capacity: 150}},
		Tasks: []importer.TaskImport{
			{Ref: "rehearse", Title: "Rehearsals", BudgetItemRef: ptrStr("fee"), WorkType: "Paid", HourlyRate: 40},
			{Ref: "ushers", Title: "Ushering", BudgetItemRef: ptrStr("fee"), WorkType: "Volunteer", HourlyRate: 15},
		},
		Activities: []importer.ActivityImport{
			{TaskRef: "rehearse", Hours: 10, Status: "Approved", Date: "2025-06-20"},
			{TaskRef: "rehearse", Hours: 5, Status: "Pending", Date: "2025-06-27"},
			{TaskRef: "ushers", Hours: 4, Status: "Approved", Date: "2025-07-01"},
		},
		DirectExpenses: []importer.ExpenseImport{
			{BudgetItemRef: ptrStr("fee"), Description: "Deposit", Amount: 500, Date: "2025-06-01"},
			{BudgetItemRef: ptrStr("van"), Description: "Fuel", Amount: 100, Date: "2025-07-01"},
		},
		SaleSessions: []importer.SaleSessionImport{
			{Ref: "bar", Name: "Bar", AssociationType: "event", EventRef: ptrStr("opening"), ExpectedRevenue: ptrFloat(600)},
			{Ref: "shop", Name: "Shop", AssociationType: "project", ExpectedRevenue: ptrFloat(200)},
		},
		SalesTransactions: []importer.TransactionImport{
			{SessionRef: "bar", Total: 75},
			{SessionRef: "shop", Total: 25},
		},
	}
}

// importFestival imports festivalSchema into database and returns the result.
func importFestival(t *testing.T, database *sql.DB) *app.ImportResult {
	t.Helper()
	res, err := NewImportService(testutil.NewTestUoW(database)).ImportProjectFromSchema(context.Background(), festivalSchema())
	require.NoError(t, err)
	return res
}

// itemID finds the id of the budget line with the given source or
// description.
func itemID(t *testing.T, b domain.DetailedBudget, label string) string {
	t.Helper()
	for _, cat := range domain.ItemRevenueCategories {
		for _, it := range b.RevenueItems(cat) {
			if it.Source == label || it.Description == label {
				return it.ID
			}
		}
	}
	for _, cat := range domain.ExpenseCategories {
		for _, it := range b.ExpenseItems(cat) {
			if it.Source == label || it.Description == label {
				return it.ID
			}
		}
	}
	t.Fatalf("no budget line labelled %q", label)
	return ""
}
