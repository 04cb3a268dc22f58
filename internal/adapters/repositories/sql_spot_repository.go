package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"travel-itinerary-service/internal/domain"
)

// SQL-backed implementation of the SpotRepository port. The list query is
// dialect-neutral, so the same repository reads the local SQLite catalog and
// the shared Postgres one. The catalog is owned by an external system; this
// repository only reads it.
type SQLSpotRepository struct{ DB *sql.DB }

func NewSQLSpotRepository(db *sql.DB) *SQLSpotRepository {
	return &SQLSpotRepository{DB: db}
}

// Return all catalog spots that carry usable coordinates.
func (s *SQLSpotRepository) ListSpotsWithCoordinates(ctx context.Context) ([]*domain.CatalogSpot, error) {
	if s.DB == nil {
		return nil, errors.New("sql spot repository: DB is nil")
	}

	query := `
	SELECT
		spot_id,
		name,
		region,
		categories,
		lat,
		lng,
		visit_minutes,
		operating_hours
	FROM spots
	WHERE lat IS NOT NULL AND lng IS NOT NULL
	ORDER BY spot_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list spots: query spots table: %w", err)
	}
	defer rows.Close()

	spots := make([]*domain.CatalogSpot, 0, 64)
	for rows.Next() {
		var (
			id, name       string
			region, hours  sql.NullString
			categoriesJSON string
			lat, lng       sql.NullFloat64
			visitMinutes   sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &region, &categoriesJSON, &lat, &lng, &visitMinutes, &hours); err != nil {
			return nil, fmt.Errorf("list spots: scan row: %w", err)
		}

		var categories []string
		if err := json.Unmarshal([]byte(categoriesJSON), &categories); err != nil {
			return nil, fmt.Errorf("list spots: decode categories for spot_id=%q: %w", id, err)
		}

		spot := &domain.CatalogSpot{
			ID:             id,
			Name:           name,
			Region:         region.String,
			Categories:     categories,
			VisitMinutes:   int(visitMinutes.Int64),
			OperatingHours: hours.String,
		}
		if lat.Valid && lng.Valid {
			spot.Latitude = &lat.Float64
			spot.Longitude = &lng.Float64
		}

		spots = append(spots, spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spots: row iteration: %w", err)
	}

	return spots, nil
}
