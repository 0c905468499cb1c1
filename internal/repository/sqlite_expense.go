package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteExpenseRepo struct {
	db db.DBTX
}

func NewSQLiteExpenseRepo(conn db.DBTX) *SQLiteExpenseRepo {
	return &SQLiteExpenseRepo{db: conn}
}

func (r *SQLiteExpenseRepo) Create(ctx context.Context, e *domain.DirectExpense) error {
	query := `INSERT INTO direct_expenses (id, project_id, budget_item_id, description, amount, date) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		nullableString(e.BudgetItemID),
		e.Description,
		e.Amount,
		e.Date.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting direct expense: %w", err)
	}
	return nil
}

func (r *SQLiteExpenseRepo) ListByProject(ctx context.Context, projectID string) ([]domain.DirectExpense, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, project_id, budget_item_id, description, amount, date
		FROM direct_expenses WHERE project_id = ? ORDER BY date, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing direct expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.DirectExpense
	for rows.Next() {
		var e domain.DirectExpense
		var budgetItemID sql.NullString
		var date string
		if err := rows.Scan(&e.ID, &e.ProjectID, &budgetItemID, &e.Description, &e.Amount, &date); err != nil {
			return nil, fmt.Errorf("scanning direct expense row: %w", err)
		}
		e.BudgetItemID = strPtr(budgetItemID)
		if e.Date, err = parseDate("date", date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating direct expenses: %w", err)
	}
	return expenses, nil
}
