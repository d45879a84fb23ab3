package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"tastetrace-route-service/internal/domain"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRestaurantsQuery := `
	CREATE TABLE IF NOT EXISTS restaurants (
		restaurant_id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		average_wait INTEGER,
		opening_hours TEXT,
		price_range TEXT,
		google_maps_url TEXT,
		badges TEXT
	);
	`

	createQueueHistoryQuery := `
	CREATE TABLE IF NOT EXISTS queue_history (
		restaurant_id BIGINT NOT NULL,
		day_of_week INTEGER NOT NULL,
		hour INTEGER NOT NULL,
		wait_minutes INTEGER NOT NULL,
		crowd_level TEXT NOT NULL,
		PRIMARY KEY (restaurant_id, day_of_week, hour)
	);
	`

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS food_trips (
		trip_id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		start_time TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createTripStopsQuery := `
	CREATE TABLE IF NOT EXISTS trip_stops (
		trip_id UUID NOT NULL REFERENCES food_trips(trip_id) ON DELETE CASCADE,
		restaurant_id BIGINT NOT NULL,
		stop_order INTEGER NOT NULL,
		arrival_time TEXT NOT NULL,
		PRIMARY KEY (trip_id, stop_order)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_queue_history_restaurant_day
	ON queue_history(restaurant_id, day_of_week);
	`

	statements := []string{
		createRestaurantsQuery,
		createQueueHistoryQuery,
		createTripsQuery,
		createTripStopsQuery,
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

type RestaurantSeed struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	Lat           float64              `json:"lat"`
	Lng           float64              `json:"lng"`
	AverageWait   *int                 `json:"average_wait"`
	OpeningHours  *domain.OpeningHours `json:"opening_hours"`
	PriceRange    string               `json:"price_range"`
	GoogleMapsURL string               `json:"google_maps_url"`
	Badges        []string             `json:"badges"`
}

// Populate the database with restaurant data from a JSON file. Existing
// rows are overwritten so reseeding is idempotent.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed restaurants: read %q: %w", jsonPath, err)
	}

	var data []RestaurantSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed restaurants: parse json: %w", err)
	}

	for i, item := range data {
		if item.ID <= 0 {
			return fmt.Errorf("seed restaurants: invalid id at index %d: %d", i+1, item.ID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed restaurants: item at index %d: name cannot be empty", i+1)
		}
		if !(domain.Coordinates{Lat: item.Lat, Lng: item.Lng}).Valid() {
			return fmt.Errorf("seed restaurants: item at index %d: coordinates out of range", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed restaurants: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO restaurants (
		restaurant_id,
		name,
		category,
		lat,
		lng,
		average_wait,
		opening_hours,
		price_range,
		google_maps_url,
		badges
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (restaurant_id) DO UPDATE SET
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		average_wait = EXCLUDED.average_wait,
		opening_hours = EXCLUDED.opening_hours,
		price_range = EXCLUDED.price_range,
		google_maps_url = EXCLUDED.google_maps_url,
		badges = EXCLUDED.badges;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed restaurants: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range data {
		var wait sql.NullInt64
		if r.AverageWait != nil {
			wait = sql.NullInt64{Int64: int64(*r.AverageWait), Valid: true}
		}

		var hours sql.NullString
		if r.OpeningHours != nil {
			b, err := json.Marshal(r.OpeningHours)
			if err != nil {
				return fmt.Errorf("seed restaurants: marshal hours for id=%d: %w", r.ID, err)
			}
			hours = sql.NullString{String: string(b), Valid: true}
		}

		badges, err := json.Marshal(r.Badges)
		if err != nil {
			return fmt.Errorf("seed restaurants: marshal badges for id=%d: %w", r.ID, err)
		}

		if _, err := stmt.Exec(
			r.ID, r.Name, r.Category, r.Lat, r.Lng,
			wait, hours, r.PriceRange, r.GoogleMapsURL, string(badges),
		); err != nil {
			return fmt.Errorf("seed restaurants: insert restaurant_id=%d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed restaurants: commit tx: %w", err)
	}

	return nil
}
