package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Initialize the Postgres catalog schema. Used by cmd/dbtool against the
// shared catalog database; the SQLite variant lives in InitSchema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS spots (
		spot_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT,
		categories TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		visit_minutes INTEGER,
		operating_hours TEXT
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS travel_time_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_travel_time_cache_destination_origin
	ON travel_time_cache(destination, origin);
	`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres catalog with spot data from a JSON file. Validation
// is shared with the SQLite seeder; only the upsert dialect differs.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSpotSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed spots: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO spots (
		spot_id,
		name,
		region,
		categories,
		lat,
		lng,
		visit_minutes,
		operating_hours
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (spot_id) DO UPDATE
	SET name = EXCLUDED.name,
		region = EXCLUDED.region,
		categories = EXCLUDED.categories,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		visit_minutes = EXCLUDED.visit_minutes,
		operating_hours = EXCLUDED.operating_hours;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed spots: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		categoriesJSON, err := json.Marshal(s.Categories)
		if err != nil {
			return fmt.Errorf("seed spots: encode categories for spot_id=%q: %w", s.SpotID, err)
		}

		var lat, lng any
		if s.Lat != nil {
			lat = *s.Lat
		}
		if s.Lng != nil {
			lng = *s.Lng
		}

		if _, err := stmt.Exec(s.SpotID, s.Name, s.Region, string(categoriesJSON), lat, lng, s.VisitMinutes, s.OperatingHours); err != nil {
			return fmt.Errorf("seed spots: insert spot_id=%q: %w", s.SpotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed spots: commit tx: %w", err)
	}

	return nil
}
