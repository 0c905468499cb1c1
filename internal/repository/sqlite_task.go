package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, project_id, title, task_type, estimated_hours, hourly_rate, work_type, budget_item_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		string(t.TaskType),
		t.EstimatedHours,
		t.HourlyRate,
		string(t.WorkType),
		nullableString(t.BudgetItemID),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, project_id, title, task_type, estimated_hours, hourly_rate, work_type, budget_item_id, created_at
		FROM tasks WHERE project_id = ? ORDER BY created_at, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var taskType, workType, createdAt string
		var budgetItemID sql.NullString
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &taskType, &t.EstimatedHours, &t.HourlyRate,
			&workType, &budgetItemID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.TaskType = domain.TaskType(taskType)
		t.WorkType = domain.WorkType(workType)
		t.BudgetItemID = strPtr(budgetItemID)
		if t.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
