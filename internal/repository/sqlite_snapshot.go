package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

// SQLiteSnapshotRepo stores proposal snapshots. Metrics are kept as the
// exact JSON text they were created with.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

func (r *SQLiteSnapshotRepo) Create(ctx context.Context, s *domain.ProposalSnapshot) error {
	query := `INSERT INTO proposal_snapshots (id, project_id, title, metrics_json, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.Title,
		string(s.Metrics),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting proposal snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*domain.ProposalSnapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, project_id, title, metrics_json, created_at
		FROM proposal_snapshots WHERE id = ?`, id)
	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("proposal snapshot %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSnapshotRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.ProposalSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, project_id, title, metrics_json, created_at
		FROM proposal_snapshots WHERE project_id = ? ORDER BY created_at DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing proposal snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*domain.ProposalSnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposal snapshots: %w", err)
	}
	return snaps, nil
}

func scanSnapshot(row rowScanner) (*domain.ProposalSnapshot, error) {
	var s domain.ProposalSnapshot
	var metrics, createdAt string
	if err := row.Scan(&s.ID, &s.ProjectID, &s.Title, &metrics, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning proposal snapshot: %w", err)
	}
	s.Metrics = []byte(metrics)

	var err error
	if s.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &s, nil
}
