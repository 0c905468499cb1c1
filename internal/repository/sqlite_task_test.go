package repository

import (
	"context"
	"testing"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskActivityExpense_ListByProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	proj := seedProject(t, db)
	other := seedProject(t, db)
	ctx := context.Background()

	tasks := NewSQLiteTaskRepo(db)
	activities := NewSQLiteActivityRepo(db)
	expenses := NewSQLiteExpenseRepo(db)

	linked := testutil.NewTestTask(proj.ID, "Rehearsals", 30, testutil.LinkedTo("fee-1"))
	volunteer := testutil.NewTestTask(proj.ID, "Ushers", 18, testutil.WithWorkType(domain.WorkVolunteer))
	foreign := testutil.NewTestTask(other.ID, "Elsewhere", 50)
	for _, task := range []*domain.Task{linked, volunteer, foreign} {
		require.NoError(t, tasks.Create(ctx, task))
	}

	a1 := testutil.NewTestActivity(linked.ID, 3, domain.ActivityApproved)
	a2 := testutil.NewTestActivity(volunteer.ID, 5, domain.ActivityPending)
	require.NoError(t, activities.Create(ctx, a1))
	require.NoError(t, activities.Create(ctx, a2))
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(foreign.ID, 9, domain.ActivityApproved)))

	receipt := testutil.NewTestExpense(proj.ID, domain.StrPtr("travel-1"), 45.5)
	loose := testutil.NewTestExpense(proj.ID, nil, 10)
	require.NoError(t, expenses.Create(ctx, receipt))
	require.NoError(t, expenses.Create(ctx, loose))

	gotTasks, err := tasks.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, gotTasks, 2)
	for _, task := range gotTasks {
		switch task.ID {
		case linked.ID:
			assert.Equal(t, *linked, task)
		case volunteer.ID:
			assert.Nil(t, task.BudgetItemID)
			assert.Equal(t, domain.WorkVolunteer, task.WorkType)
		default:
			t.Fatalf("unexpected task %s", task.ID)
		}
	}

	gotActivities, err := activities.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Activity{*a1, *a2}, gotActivities)

	gotExpenses, err := expenses.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.DirectExpense{*receipt, *loose}, gotExpenses)
}
