package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
	"github.com/google/uuid"
)

type snapshotService struct {
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSnapshotService(snapshots repository.SnapshotRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SnapshotService {
	return &snapshotService{snapshots: snapshots, uow: uow, observer: combineObservers(observers)}
}

// CreateProposalSnapshot freezes the project's current ticket metrics.
// Later edits to events, venues or tickets never change a stored snapshot.
func (s *snapshotService) CreateProposalSnapshot(ctx context.Context, projectID, title string) (snap *domain.ProposalSnapshot, err error) {
	fields := map[string]any{"project": projectID}
	defer observe(ctx, s.observer, "create-proposal-snapshot", time.Now().UTC(), fields, &err)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("snapshot title is required")
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		in := budget.Inputs{ProjectID: projectID}
		if err := loadTicketSources(ctx, tx, projectID, &in); err != nil {
			return err
		}

		metrics, err := json.Marshal(budget.ComputeTicketRevenue(projectID, in.Events, in.Venues, in.Tickets))
		if err != nil {
			return fmt.Errorf("encoding ticket metrics: %w", err)
		}
		snap = &domain.ProposalSnapshot{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Title:     title,
			Metrics:   metrics,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
		return repository.NewSQLiteSnapshotRepo(tx).Create(ctx, snap)
	})
	if err != nil {
		return nil, err
	}
	fields["snapshot"] = snap.ID
	return snap, nil
}

func (s *snapshotService) Get(ctx context.Context, id string) (*domain.ProposalSnapshot, error) {
	return s.snapshots.GetByID(ctx, id)
}

func (s *snapshotService) ListByProject(ctx context.Context, projectID string) ([]*domain.ProposalSnapshot, error) {
	return s.snapshots.ListByProject(ctx, projectID)
}

// DecodeTicketMetrics reads the ticket metrics frozen in a snapshot.
func DecodeTicketMetrics(snap *domain.ProposalSnapshot) (budget.TicketRevenueResult, error) {
	var m budget.TicketRevenueResult
	if err := json.Unmarshal(snap.Metrics, &m); err != nil {
		return budget.TicketRevenueResult{}, fmt.Errorf("decoding snapshot %s: %w", snap.ID, err)
	}
	return m, nil
}
