package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBudgetDefaults_NilYieldsEmptyShape(t *testing.T) {
	b := ApplyBudgetDefaults(nil)

	for _, cat := range ItemRevenueCategories {
		items := b.RevenueItems(cat)
		assert.NotNil(t, items, "revenue category %s must be initialized", cat)
		assert.Empty(t, items)
	}
	for _, cat := range ExpenseCategories {
		items := b.ExpenseItems(cat)
		assert.NotNil(t, items, "expense category %s must be initialized", cat)
		assert.Empty(t, items)
	}
	require.NotNil(t, b.Revenues.Tickets.ActualRevenue)
	assert.Equal(t, 0.0, *b.Revenues.Tickets.ActualRevenue)
}

func TestApplyBudgetDefaults_KeepsItemsAndDoesNotAlias(t *testing.T) {
	src := &DetailedBudget{}
	src.Revenues.Grants = []BudgetItem{{ID: "g1", Amount: 100, ActualAmount: Float64Ptr(40)}}
	src.Revenues.Tickets.ActualRevenue = Float64Ptr(250)

	out := ApplyBudgetDefaults(src)
	require.Len(t, out.Revenues.Grants, 1)
	assert.Equal(t, 250.0, *out.Revenues.Tickets.ActualRevenue)

	*out.Revenues.Grants[0].ActualAmount = 99
	out.Revenues.Grants[0].Amount = 1
	assert.Equal(t, 40.0, *src.Revenues.Grants[0].ActualAmount)
	assert.Equal(t, 100.0, src.Revenues.Grants[0].Amount)
	assert.Nil(t, src.Revenues.Sales, "input must not be mutated")
}

func TestFindItem(t *testing.T) {
	b := NewDetailedBudget()
	b.Revenues.Fundraising = []BudgetItem{{ID: "f1"}, {ID: "f2"}}
	b.Expenses.Travel = []BudgetItem{{ID: "t1"}}

	loc, ok := b.FindItem("f2")
	require.True(t, ok)
	assert.Equal(t, KindRevenue, loc.Kind)
	assert.Equal(t, RevenueFundraising, loc.RevenueCategory)
	assert.Equal(t, 1, loc.Index)

	loc, ok = b.FindItem("t1")
	require.True(t, ok)
	assert.Equal(t, KindExpense, loc.Kind)
	assert.Equal(t, ExpenseTravel, loc.ExpenseCategory)

	_, ok = b.FindItem("missing")
	assert.False(t, ok)
}

func TestRevenueItems_TicketsHasNoItems(t *testing.T) {
	b := NewDetailedBudget()
	assert.Nil(t, b.RevenueItems(RevenueTickets))
	assert.Nil(t, b.RevenueItemsPtr(RevenueTickets))
}

func TestValidCategories(t *testing.T) {
	assert.True(t, ValidRevenueCategory("grants"))
	assert.False(t, ValidRevenueCategory("tickets"))
	assert.True(t, ValidExpenseCategory("professionalDevelopment"))
	assert.False(t, ValidExpenseCategory("catering"))
}

func TestTaskLinkedBudgetItem(t *testing.T) {
	task := Task{}
	_, ok := task.LinkedBudgetItem()
	assert.False(t, ok)

	empty := ""
	task.BudgetItemID = &empty
	_, ok = task.LinkedBudgetItem()
	assert.False(t, ok)

	id := "b1"
	task.BudgetItemID = &id
	got, ok := task.LinkedBudgetItem()
	assert.True(t, ok)
	assert.Equal(t, "b1", got)
}

func TestCoalesceHelpers(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, 3.0, Float64FromPtrWithDefault(3, nil, nil))
	assert.Equal(t, 1.5, Float64FromPtrWithDefault(3, nil, Float64Ptr(1.5)))
	assert.Nil(t, StrPtr(""))
	assert.Equal(t, "", StrFromPtr(nil))
	assert.Equal(t, "x", StrFromPtr(StrPtr("x")))
}
