package repository

import (
	"context"
	"fmt"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, task_id, member_id, hours, status, date) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.TaskID,
		a.MemberID,
		a.Hours,
		string(a.Status),
		a.Date.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

// ListByProject returns every activity logged against the project's tasks,
// whatever its approval status.
func (r *SQLiteActivityRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.task_id, a.member_id, a.hours, a.status, a.date
		FROM activities a JOIN tasks t ON t.id = a.task_id
		WHERE t.project_id = ? ORDER BY a.date, a.id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var status, date string
		if err := rows.Scan(&a.ID, &a.TaskID, &a.MemberID, &a.Hours, &status, &date); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		a.Status = domain.ActivityStatus(status)
		if a.Date, err = parseDate("date", date); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}
