package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteSaleRepo struct {
	db db.DBTX
}

func NewSQLiteSaleRepo(conn db.DBTX) *SQLiteSaleRepo {
	return &SQLiteSaleRepo{db: conn}
}

// projectSessionFilter matches sessions tied to the project directly or
// through one of its events. Both placeholders take the project ID.
const projectSessionFilter = `(s.project_id = ? OR s.event_id IN (SELECT id FROM events WHERE project_id = ?))`

func (r *SQLiteSaleRepo) CreateSession(ctx context.Context, s *domain.SaleSession) error {
	query := `INSERT INTO sale_sessions (id, name, association_type, project_id, event_id, expected_revenue)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.AssociationType),
		nullableString(s.ProjectID),
		nullableString(s.EventID),
		nullableFloat(s.ExpectedRevenue),
	)
	if err != nil {
		return fmt.Errorf("inserting sale session: %w", err)
	}
	return nil
}

func (r *SQLiteSaleRepo) CreateTransaction(ctx context.Context, tx *domain.SalesTransaction) error {
	query := `INSERT INTO sales_transactions (id, sale_session_id, total, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.SaleSessionID,
		tx.Total,
		tx.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sales transaction: %w", err)
	}
	return nil
}

func (r *SQLiteSaleRepo) ListSessionsForProject(ctx context.Context, projectID string) ([]domain.SaleSession, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT s.id, s.name, s.association_type, s.project_id, s.event_id, s.expected_revenue
		FROM sale_sessions s WHERE `+projectSessionFilter+` ORDER BY s.name, s.id`, projectID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sale sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SaleSession
	for rows.Next() {
		var s domain.SaleSession
		var assoc string
		var projID, eventID sql.NullString
		var expected sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.Name, &assoc, &projID, &eventID, &expected); err != nil {
			return nil, fmt.Errorf("scanning sale session row: %w", err)
		}
		s.AssociationType = domain.AssociationType(assoc)
		s.ProjectID = strPtr(projID)
		s.EventID = strPtr(eventID)
		s.ExpectedRevenue = floatPtr(expected)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSaleRepo) ListTransactionsForProject(ctx context.Context, projectID string) ([]domain.SalesTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT t.id, t.sale_session_id, t.total, t.created_at
		FROM sales_transactions t JOIN sale_sessions s ON s.id = t.sale_session_id
		WHERE `+projectSessionFilter+` ORDER BY t.created_at, t.id`, projectID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sales transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.SalesTransaction
	for rows.Next() {
		var t domain.SalesTransaction
		var createdAt string
		if err := rows.Scan(&t.ID, &t.SaleSessionID, &t.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning sales transaction row: %w", err)
		}
		if t.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales transactions: %w", err)
	}
	return txs, nil
}
