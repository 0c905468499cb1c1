package repository

import (
	"context"
	"fmt"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteTicketRepo struct {
	db db.DBTX
}

func NewSQLiteTicketRepo(conn db.DBTX) *SQLiteTicketRepo {
	return &SQLiteTicketRepo{db: conn}
}

func (r *SQLiteTicketRepo) Create(ctx context.Context, t *domain.EventTicket) error {
	query := `INSERT INTO event_tickets (id, event_id, ticket_type_id, ticket_type_name, price, capacity, sold_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.EventID,
		t.TicketTypeID,
		t.TicketTypeName,
		t.Price,
		t.Capacity,
		t.SoldCount,
	)
	if err != nil {
		return fmt.Errorf("inserting event ticket: %w", err)
	}
	return nil
}

// ListByProject returns the ticket offers of every event of the project.
func (r *SQLiteTicketRepo) ListByProject(ctx context.Context, projectID string) ([]domain.EventTicket, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT t.id, t.event_id, t.ticket_type_id, t.ticket_type_name, t.price, t.capacity, t.sold_count
		FROM event_tickets t JOIN events e ON e.id = t.event_id
		WHERE e.project_id = ? ORDER BY e.start_date, t.event_id, t.price DESC, t.id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing event tickets: %w", err)
	}
	defer rows.Close()

	var tickets []domain.EventTicket
	for rows.Next() {
		var t domain.EventTicket
		if err := rows.Scan(&t.ID, &t.EventID, &t.TicketTypeID, &t.TicketTypeName, &t.Price, &t.Capacity, &t.SoldCount); err != nil {
			return nil, fmt.Errorf("scanning event ticket row: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event tickets: %w", err)
	}
	return tickets, nil
}
