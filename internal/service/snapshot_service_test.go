package service

import (
	"context"
	"testing"

	"github.com/artscollective/grantbook/internal/repository"
	"github.com/artscollective/grantbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotService(t *testing.T) (SnapshotService, *repository.SQLiteTicketRepo, string, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	imported := importFestival(t, database)
	events, err := repository.NewSQLiteEventRepo(database).ListByProject(context.Background(), imported.Project.ID)
	require.NoError(t, err)
	var openingID string
	for _, e := range events {
		if e.Title == "Opening" {
			openingID = e.ID
		}
	}
	svc := NewSnapshotService(repository.NewSQLiteSnapshotRepo(database), testutil.NewTestUoW(database))
	return svc, repository.NewSQLiteTicketRepo(database), imported.Project.ID, openingID
}

func TestCreateProposalSnapshot_FreezesTicketMetrics(t *testing.T) {
	svc, tickets, projectID, openingID := newSnapshotService(t)
	ctx := context.Background()

	snap, err := svc.CreateProposalSnapshot(ctx, projectID, "  Spring application ")
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "Spring application", snap.Title)
	assert.JSONEq(t, `{
		"numberOfPresentations": 1,
		"averageVenueCapacity": 200,
		"projectedAudience": 150,
		"averagePctSold": 75,
		"projectedRevenue": 3000,
		"averageTicketPrice": 20
	}`, string(snap.Metrics))

	require.NoError(t, tickets.Create(ctx, testutil.NewTestTicket(openingID, 50, 50)))

	got, err := svc.Get(ctx, snap.ID)
	require.NoError(t, err)
	metrics, err := DecodeTicketMetrics(got)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, metrics.ProjectedRevenue, "snapshot must not follow later edits")

	second, err := svc.CreateProposalSnapshot(ctx, projectID, "Revised")
	require.NoError(t, err)
	revised, err := DecodeTicketMetrics(second)
	require.NoError(t, err)
	assert.Equal(t, 5500.0, revised.ProjectedRevenue)

	list, err := svc.ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateProposalSnapshot_Errors(t *testing.T) {
	svc, _, projectID, _ := newSnapshotService(t)
	ctx := context.Background()

	_, err := svc.CreateProposalSnapshot(ctx, projectID, "   ")
	assert.ErrorContains(t, err, "title is required")

	_, err = svc.CreateProposalSnapshot(ctx, "missing", "Draft")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
