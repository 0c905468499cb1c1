package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
)

type SQLiteVenueRepo struct {
	db db.DBTX
}

func NewSQLiteVenueRepo(conn db.DBTX) *SQLiteVenueRepo {
	return &SQLiteVenueRepo{db: conn}
}

const venueColumns = `v.id, v.name, v.capacity, v.default_cost_type, v.default_cost, v.default_cost_period`

func (r *SQLiteVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, capacity, default_cost_type, default_cost, default_cost_period)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.Name,
		v.Capacity,
		domain.CoalesceStr(string(v.DefaultCostType), string(domain.CostFree)),
		v.DefaultCost,
		domain.CoalesceStr(string(v.DefaultCostPeriod), string(domain.PeriodFlatRate)),
	)
	if err != nil {
		return fmt.Errorf("inserting venue: %w", err)
	}
	return nil
}

func (r *SQLiteVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues v WHERE v.id = ?`, id)
	v, err := scanVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venue %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning venue: %w", err)
	}
	return &v, nil
}

func (r *SQLiteVenueRepo) ListForProject(ctx context.Context, projectID string) ([]domain.Venue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+venueColumns+` FROM venues v
		WHERE v.id IN (SELECT venue_id FROM events WHERE project_id = ? AND venue_id IS NOT NULL)
		ORDER BY v.name, v.id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing venues: %w", err)
	}
	defer rows.Close()

	var venues []domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning venue row: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating venues: %w", err)
	}
	return venues, nil
}

func scanVenue(row rowScanner) (domain.Venue, error) {
	var v domain.Venue
	var costType, period string
	if err := row.Scan(&v.ID, &v.Name, &v.Capacity, &costType, &v.DefaultCost, &period); err != nil {
		return v, err
	}
	v.DefaultCostType = domain.VenueCostType(costType)
	v.DefaultCostPeriod = domain.VenueCostPeriod(period)
	return v, nil
}
