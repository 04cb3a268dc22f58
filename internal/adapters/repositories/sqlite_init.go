package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSpotsQuery := `
	CREATE TABLE IF NOT EXISTS spots (
		spot_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT,
		categories TEXT NOT NULL,
		lat REAL,
		lng REAL,
		visit_minutes INTEGER,
		operating_hours TEXT
	);
	`

	createTravelTimeCacheQuery := `
	CREATE TABLE IF NOT EXISTS travel_time_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		distance_km REAL NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_travel_time_cache_destination_origin
	ON travel_time_cache(destination, origin);
	`

	statements := []string{
		createSpotsQuery,
		createTravelTimeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SpotSeed struct {
	SpotID         string   `json:"spot_id"`
	Name           string   `json:"name"`
	Region         string   `json:"region"`
	Categories     []string `json:"categories"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	VisitMinutes   int      `json:"visit_minutes"`
	OperatingHours string   `json:"operating_hours"`
}

// loadSpotSeeds reads and validates the seed file shared by the SQLite and
// Postgres seeders.
func loadSpotSeeds(jsonPath string) ([]SpotSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed spots: read %q: %w", jsonPath, err)
	}

	var data []SpotSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed spots: parse json: %w", err)
	}

	rows := make([]SpotSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.SpotID)
		if id == "" {
			return nil, fmt.Errorf("seed spots: empty spot_id at index %d", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed spots: spot_id=%q: name cannot be empty", id)
		}

		if len(item.Categories) == 0 {
			return nil, fmt.Errorf("seed spots: spot_id=%q: at least one category is required", id)
		}

		item.SpotID = id
		item.Name = name
		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the catalog with spot data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSpotSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed spots: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO spots (
		spot_id,
		name,
		region,
		categories,
		lat,
		lng,
		visit_minutes,
		operating_hours
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
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
