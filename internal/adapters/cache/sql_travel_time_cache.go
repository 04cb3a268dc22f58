package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

// SQLTravelTimeCache is a SQL-backed cache for origin->destination travel
// estimates. It works against the SQLite schema created by the repositories
// package.
type SQLTravelTimeCache struct {
	DB *sql.DB
}

func NewSQLTravelTimeCache(db *sql.DB) *SQLTravelTimeCache {
	return &SQLTravelTimeCache{DB: db}
}

// Fetch cached estimates for one origin and multiple destinations.
func (s *SQLTravelTimeCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.TravelEstimate, err error) {
	defer obs.Time(ctx, "travel.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("travel time cache: db is nil")
	}
	if origin == "" {
		return nil, errors.New("get travel time cache: origin must not be empty")
	}
	if len(destinations) == 0 {
		return map[string]ports.TravelEstimate{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(destinations))
	placeholders := make([]string, 0, len(destinations))
	args := make([]any, 0, 1+len(destinations))
	args = append(args, origin)
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
		placeholders = append(placeholders, "?")
		args = append(args, d)
	}

	if len(uniq) == 0 {
		return map[string]ports.TravelEstimate{}, nil
	}

	q := fmt.Sprintf(`
	SELECT destination, duration_minutes, distance_km
	FROM travel_time_cache
	WHERE origin = ?
		AND destination IN (%s);
	`, strings.Join(placeholders, ", "))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get travel time cache: query travel_time_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.TravelEstimate, len(uniq))
	for rows.Next() {
		var dest string
		var minutes int
		var km float64
		if err := rows.Scan(&dest, &minutes, &km); err != nil {
			return nil, fmt.Errorf("get travel time cache: scan rows: %w", err)
		}
		out[dest] = ports.TravelEstimate{
			DurationMinutes: minutes,
			DistanceKm:      km,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get travel time cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many estimates for a single origin.
func (s *SQLTravelTimeCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.TravelEstimate,
) error {
	if s.DB == nil {
		return errors.New("travel time cache: db is nil")
	}
	if origin == "" {
		return errors.New("insert travel time cache: origin must not be empty")
	}
	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert travel time cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO travel_time_cache (origin, destination, duration_minutes, distance_km)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (origin, destination) DO UPDATE
	SET duration_minutes = EXCLUDED.duration_minutes,
		distance_km = EXCLUDED.distance_km;
	`)
	if err != nil {
		return fmt.Errorf("insert travel time cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert travel time cache: empty destination key")
		}
		if _, err := stmt.ExecContext(ctx, origin, dest, r.DurationMinutes, r.DistanceKm); err != nil {
			return fmt.Errorf("insert travel time cache dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert travel time cache commit: %w", err)
	}

	return nil
}
