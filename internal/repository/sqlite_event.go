package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, project_id, venue_id, title, status, category, start_date, end_date,
		start_time, end_time, is_all_day, is_template, override_cost_type, override_cost, override_cost_period)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var overrideType, overrideCost, overridePeriod any
	if o := e.VenueCostOverride; o != nil {
		overrideType, overrideCost, overridePeriod = string(o.CostType), o.Cost, string(o.Period)
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		nullableString(e.ProjectID),
		nullableString(e.VenueID),
		e.Title,
		string(e.Status),
		e.Category,
		e.StartDate.Format(dateLayout),
		nullableDateToString(e.EndDate),
		e.StartTime,
		e.EndTime,
		boolToInt(e.IsAllDay),
		boolToInt(e.IsTemplate),
		overrideType,
		overrideCost,
		overridePeriod,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// ListByProject returns every event of the project, templates and cancelled
// events included. Filtering is left to the calculators.
func (r *SQLiteEventRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, project_id, venue_id, title, status, category, start_date, end_date,
		start_time, end_time, is_all_day, is_template, override_cost_type, override_cost, override_cost_period
		FROM events WHERE project_id = ? ORDER BY start_date, start_time, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var e domain.Event
	var projectID, venueID, endDate, overrideType, overridePeriod sql.NullString
	var overrideCost sql.NullFloat64
	var status, startDate string
	var allDay, template int

	if err := row.Scan(&e.ID, &projectID, &venueID, &e.Title, &status, &e.Category, &startDate, &endDate,
		&e.StartTime, &e.EndTime, &allDay, &template, &overrideType, &overrideCost, &overridePeriod); err != nil {
		return e, fmt.Errorf("scanning event row: %w", err)
	}

	e.ProjectID = strPtr(projectID)
	e.VenueID = strPtr(venueID)
	e.Status = domain.EventStatus(status)
	e.IsAllDay = allDay != 0
	e.IsTemplate = template != 0

	var err error
	if e.StartDate, err = parseDate("start_date", startDate); err != nil {
		return e, err
	}
	if e.EndDate, err = parseNullableDate(endDate); err != nil {
		return e, fmt.Errorf("parsing end_date: %w", err)
	}

	if overrideType.Valid {
		e.VenueCostOverride = &domain.VenueCost{
			CostType: domain.VenueCostType(overrideType.String),
			Cost:     overrideCost.Float64,
			Period:   domain.VenueCostPeriod(overridePeriod.String),
		}
	}
	return e, nil
}
