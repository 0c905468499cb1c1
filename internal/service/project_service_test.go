package service

import (
	"context"
	"testing"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
	"github.com/artscollective/grantbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) ProjectService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewProjectService(
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteBudgetRepo(database),
		testutil.NewTestUoW(database),
	)
}

func TestProjectService_CreateAndGet(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	b := domain.NewDetailedBudget()
	b.Revenues.Grants = []domain.BudgetItem{testutil.NewTestRevenueItem("Arts Council", 2500)}
	p := &domain.Project{Name: "Residency", Budget: b}
	require.NoError(t, svc.Create(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectActive, p.Status)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Residency", got.Name)
	require.Len(t, got.Budget.Revenues.Grants, 1)
	assert.Equal(t, 2500.0, got.Budget.Revenues.Grants[0].Amount)

	resolved, err := svc.Resolve(ctx, p.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, p.ID, resolved.ID)
}

func TestProjectService_CreateRequiresName(t *testing.T) {
	svc := newProjectService(t)
	assert.Error(t, svc.Create(context.Background(), &domain.Project{}))
}

func TestProjectService_ArchiveAndDelete(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	keep := testutil.NewTestProject("Keep")
	gone := testutil.NewTestProject("Gone")
	require.NoError(t, svc.Create(ctx, keep))
	require.NoError(t, svc.Create(ctx, gone))

	err := svc.Delete(ctx, gone.ID, false)
	assert.ErrorContains(t, err, "must be archived")

	require.NoError(t, svc.Archive(ctx, gone.ID))
	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)

	require.NoError(t, svc.Delete(ctx, gone.ID, false))
	_, err = svc.GetByID(ctx, gone.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, keep.ID, true))
	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}
