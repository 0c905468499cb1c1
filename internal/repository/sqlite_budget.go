package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

// SQLiteBudgetRepo implements BudgetRepo. Line items are rows of
// budget_items keyed by (project, id); position keeps category order stable.
type SQLiteBudgetRepo struct {
	db db.DBTX
}

func NewSQLiteBudgetRepo(conn db.DBTX) *SQLiteBudgetRepo {
	return &SQLiteBudgetRepo{db: conn}
}

func (r *SQLiteBudgetRepo) Load(ctx context.Context, projectID string) (domain.DetailedBudget, error) {
	b := domain.NewDetailedBudget()

	rows, err := r.db.QueryContext(ctx, `SELECT id, kind, category, source, description, amount, actual_amount, status
		FROM budget_items WHERE project_id = ? ORDER BY kind, category, position, id`, projectID)
	if err != nil {
		return b, fmt.Errorf("loading budget items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.BudgetItem
		var kind, category string
		var actual sql.NullFloat64
		var status sql.NullString
		if err := rows.Scan(&it.ID, &kind, &category, &it.Source, &it.Description, &it.Amount, &actual, &status); err != nil {
			return b, fmt.Errorf("scanning budget item: %w", err)
		}
		it.ActualAmount = floatPtr(actual)
		it.Status = domain.BudgetItemStatus(status.String)

		var target *[]domain.BudgetItem
		switch domain.BudgetKind(kind) {
		case domain.KindRevenue:
			target = b.RevenueItemsPtr(domain.RevenueCategory(category))
		case domain.KindExpense:
			target = b.ExpenseItemsPtr(domain.ExpenseCategory(category))
		}
		if target == nil {
			return b, fmt.Errorf("budget item %s: unknown %s category %q", it.ID, kind, category)
		}
		*target = append(*target, it)
	}
	if err := rows.Err(); err != nil {
		return b, fmt.Errorf("iterating budget items: %w", err)
	}

	var ticketActual float64
	err = r.db.QueryRowContext(ctx, `SELECT actual_revenue FROM ticket_revenue_actuals WHERE project_id = ?`, projectID).Scan(&ticketActual)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return b, fmt.Errorf("loading ticket actuals: %w", err)
	default:
		b.Revenues.Tickets.ActualRevenue = domain.Float64Ptr(ticketActual)
	}

	return b, nil
}

// Save replaces every line of the project's budget. Callers wrap it in a
// UnitOfWork so a failed insert leaves the old budget intact.
func (r *SQLiteBudgetRepo) Save(ctx context.Context, projectID string, b domain.DetailedBudget) error {
	full := domain.ApplyBudgetDefaults(&b)

	if _, err := r.db.ExecContext(ctx, `DELETE FROM budget_items WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing budget items: %w", err)
	}

	insert := `INSERT INTO budget_items (id, project_id, kind, category, position, source, description, amount, actual_amount, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, cat := range domain.ItemRevenueCategories {
		for i, it := range full.RevenueItems(cat) {
			status := it.Status
			if status == "" {
				status = domain.StatusPending
			}
			if _, err := r.db.ExecContext(ctx, insert,
				it.ID, projectID, string(domain.KindRevenue), string(cat), i,
				it.Source, it.Description, it.Amount, nullableFloat(it.ActualAmount), string(status),
			); err != nil {
				return fmt.Errorf("inserting revenue item %s: %w", it.ID, err)
			}
		}
	}
	for _, cat := range domain.ExpenseCategories {
		for i, it := range full.ExpenseItems(cat) {
			if _, err := r.db.ExecContext(ctx, insert,
				it.ID, projectID, string(domain.KindExpense), string(cat), i,
				it.Source, it.Description, it.Amount, nil, nil,
			); err != nil {
				return fmt.Errorf("inserting expense item %s: %w", it.ID, err)
			}
		}
	}

	return r.UpdateTicketActual(ctx, projectID, domain.Float64FromPtrWithDefault(0, full.Revenues.Tickets.ActualRevenue))
}

func (r *SQLiteBudgetRepo) UpdateItemActual(ctx context.Context, projectID, itemID string, actual *float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE budget_items SET actual_amount = ? WHERE project_id = ? AND id = ? AND kind = 'revenue'`,
		nullableFloat(actual), projectID, itemID)
	if err != nil {
		return fmt.Errorf("updating actual amount: %w", err)
	}
	return requireAffected(res, "budget item", itemID)
}

func (r *SQLiteBudgetRepo) UpdateItemStatus(ctx context.Context, projectID, itemID string, status domain.BudgetItemStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE budget_items SET status = ? WHERE project_id = ? AND id = ? AND kind = 'revenue'`,
		string(status), projectID, itemID)
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	return requireAffected(res, "budget item", itemID)
}

func (r *SQLiteBudgetRepo) UpdateTicketActual(ctx context.Context, projectID string, actual float64) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO ticket_revenue_actuals (project_id, actual_revenue) VALUES (?, ?)
		ON CONFLICT(project_id) DO UPDATE SET actual_revenue = excluded.actual_revenue`, projectID, actual)
	if err != nil {
		return fmt.Errorf("updating ticket actual revenue: %w", err)
	}
	return nil
}
