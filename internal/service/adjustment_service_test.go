package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
	"github.com/artscollective/grantbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetActualAmount_PersistsOnlyThatField(t *testing.T) {
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	ctx := context.Background()
	projectID := imported.Project.ID
	cityID := itemID(t, imported.Project.Budget, "City")
	svc := NewAdjustmentService(testutil.NewTestUoW(database))

	before, err := repository.NewSQLiteProjectRepo(database).GetByID(ctx, projectID)
	require.NoError(t, err)

	res, err := svc.SetActualAmount(ctx, app.SetActualAmountRequest{ProjectID: projectID, ItemID: cityID, Amount: ptrFloat(750)})
	require.NoError(t, err)
	assert.Equal(t, 750.0, *res.Budget.Revenues.Grants[1].ActualAmount)

	stored, err := repository.NewSQLiteBudgetRepo(database).Load(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, res.Budget, stored)
	assert.Equal(t, 4000.0, *stored.Revenues.Grants[0].ActualAmount, "other lines untouched")

	after, err := repository.NewSQLiteProjectRepo(database).GetByID(ctx, projectID)
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

	view, err := NewBudgetService(testutil.NewTestUoW(database)).GetBudgetView(ctx, app.BudgetViewRequest{ProjectID: projectID})
	require.NoError(t, err)
	assert.Equal(t, 5750.0, view.Evaluation.Summary.TotalActualRevenue)
}

func TestSetActualAmount_Clear(t *testing.T) {
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	ctx := context.Background()
	grantID := itemID(t, imported.Project.Budget, "Arts Council")

	res, err := NewAdjustmentService(testutil.NewTestUoW(database)).SetActualAmount(ctx,
		app.SetActualAmountRequest{ProjectID: imported.Project.ID, ItemID: grantID})
	require.NoError(t, err)
	assert.Nil(t, res.Budget.Revenues.Grants[0].ActualAmount)

	stored, err := repository.NewSQLiteBudgetRepo(database).Load(ctx, imported.Project.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Revenues.Grants[0].ActualAmount)
}

func TestSetActualTicketRevenue(t *testing.T) {
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	ctx := context.Background()

	res, err := NewAdjustmentService(testutil.NewTestUoW(database)).SetActualTicketRevenue(ctx,
		app.SetTicketRevenueRequest{ProjectID: imported.Project.ID, Amount: 1250})
	require.NoError(t, err)
	assert.Equal(t, 1250.0, *res.Budget.Revenues.Tickets.ActualRevenue)

	stored, err := repository.NewSQLiteBudgetRepo(database).Load(ctx, imported.Project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1250.0, *stored.Revenues.Tickets.ActualRevenue)
}

func TestSetItemStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	ctx := context.Background()
	cityID := itemID(t, imported.Project.Budget, "City")
	svc := NewAdjustmentService(testutil.NewTestUoW(database))

	_, err := svc.SetItemStatus(ctx, app.SetItemStatusRequest{ProjectID: imported.Project.ID, ItemID: cityID, Status: domain.StatusDenied})
	require.NoError(t, err)

	view, err := NewBudgetService(testutil.NewTestUoW(database)).GetBudgetView(ctx, app.BudgetViewRequest{ProjectID: imported.Project.ID})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, view.Evaluation.Totals.TotalGrants, "denied lines leave the budgeted total")
}

func TestAdjustments_Errors(t *testing.T) {
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	ctx := context.Background()
	projectID := imported.Project.ID
	feeID := itemID(t, imported.Project.Budget, "Artist fees")
	grantID := itemID(t, imported.Project.Budget, "Arts Council")
	svc := NewAdjustmentService(testutil.NewTestUoW(database))

	_, err := svc.SetActualAmount(ctx, app.SetActualAmountRequest{ProjectID: projectID, ItemID: feeID, Amount: ptrFloat(1)})
	assert.ErrorIs(t, err, budget.ErrNotRevenueItem)

	_, err = svc.SetActualAmount(ctx, app.SetActualAmountRequest{ProjectID: projectID, ItemID: "nope", Amount: ptrFloat(1)})
	assert.ErrorIs(t, err, budget.ErrItemNotFound)

	_, err = svc.SetActualAmount(ctx, app.SetActualAmountRequest{ProjectID: projectID, ItemID: grantID, Amount: ptrFloat(-1)})
	assert.ErrorIs(t, err, budget.ErrNegativeAmount)

	_, err = svc.SetActualTicketRevenue(ctx, app.SetTicketRevenueRequest{ProjectID: projectID, Amount: -5})
	assert.ErrorIs(t, err, budget.ErrNegativeAmount)

	_, err = svc.SetItemStatus(ctx, app.SetItemStatusRequest{ProjectID: projectID, ItemID: grantID, Status: "Maybe"})
	assert.ErrorIs(t, err, budget.ErrInvalidStatus)

	_, err = svc.SetActualTicketRevenue(ctx, app.SetTicketRevenueRequest{ProjectID: "missing", Amount: 5})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored, err := repository.NewSQLiteBudgetRepo(database).Load(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, *stored.Revenues.Grants[0].ActualAmount)
	assert.Equal(t, 900.0, *stored.Revenues.Tickets.ActualRevenue)
}

func TestSetActualAmount_RollbackWhenTouchFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	ctx := context.Background()
	cityID := itemID(t, imported.Project.Budget, "City")

	// ExecContext #1 = budget_items update, #2 = projects touch.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    fmt.Errorf("injected touch failure"),
	}
	_, err := NewAdjustmentService(failUoW).SetActualAmount(ctx,
		app.SetActualAmountRequest{ProjectID: imported.Project.ID, ItemID: cityID, Amount: ptrFloat(750)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected touch failure")

	stored, err := repository.NewSQLiteBudgetRepo(database).Load(ctx, imported.Project.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Revenues.Grants[1].ActualAmount, "actual amount should be unchanged after rollback")
}
