package repository

import (
	"context"
	"testing"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Spring Season", testutil.WithDescription("Three concerts"))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Spring Season", fetched.Name)
	assert.Equal(t, "Three concerts", fetched.Description)
	assert.Equal(t, domain.ProjectActive, fetched.Status)
	assert.True(t, proj.CreatedAt.Equal(fetched.CreatedAt))
	assert.NotNil(t, fetched.Budget.Revenues.Grants)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_FindByIDPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	a := testutil.NewTestProject("A")
	a.ID = "abc12345-0000"
	b := testutil.NewTestProject("B")
	b.ID = "abc99999-0000"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByIDPrefix(ctx, "abc12")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = repo.FindByIDPrefix(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = repo.FindByIDPrefix(ctx, "abc")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = repo.FindByIDPrefix(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List_ExcludesArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("Active")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("Old", testutil.WithProjectStatus(domain.ProjectArchived))))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectRepo_UpdateTouchDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Tour")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "Fall Tour"
	proj.Status = domain.ProjectCompleted
	require.NoError(t, repo.Update(ctx, proj))
	require.NoError(t, repo.Touch(ctx, proj.ID))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fall Tour", got.Name)
	assert.Equal(t, domain.ProjectCompleted, got.Status)

	require.NoError(t, repo.Delete(ctx, proj.ID))
	assert.ErrorIs(t, repo.Delete(ctx, proj.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Touch(ctx, proj.ID), ErrNotFound)
}
