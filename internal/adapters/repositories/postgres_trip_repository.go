package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/platform/obs"
	"tastetrace-route-service/internal/ports"
)

// Postgres-backed implementation of the TripRepository port.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// Save stores the trip and its stops in one transaction.
func (s *PostgresTripRepository) Save(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.Save")(&err)

	if s.DB == nil {
		return errors.New("trip repository: DB is nil")
	}
	if trip == nil || trip.ID == "" {
		return errors.New("save trip: trip with a non-empty id is required")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertTrip := `
	INSERT INTO food_trips (trip_id, name, start_time)
	VALUES ($1, $2, $3);
	`
	if _, err := tx.ExecContext(ctx, insertTrip, trip.ID, trip.Name, trip.StartTime); err != nil {
		return fmt.Errorf("save trip: insert trip %s: %w", trip.ID, err)
	}

	insertStop := `
	INSERT INTO trip_stops (trip_id, restaurant_id, stop_order, arrival_time)
	VALUES ($1, $2, $3, $4);
	`
	stmt, err := tx.PrepareContext(ctx, insertStop)
	if err != nil {
		return fmt.Errorf("save trip: prepare stop insert: %w", err)
	}
	defer stmt.Close()

	for _, stop := range trip.Stops {
		if _, err := stmt.ExecContext(ctx, trip.ID, stop.RestaurantID, stop.StopOrder, stop.ArrivalTime); err != nil {
			return fmt.Errorf("save trip: insert stop order=%d: %w", stop.StopOrder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save trip: commit tx: %w", err)
	}

	return nil
}

// Get returns a saved trip with its stops in visiting order, joined against
// the directory for display names.
func (s *PostgresTripRepository) Get(ctx context.Context, id string) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	tripQuery := `
	SELECT trip_id, name, start_time, created_at
	FROM food_trips
	WHERE trip_id = $1;
	`
	var trip domain.Trip
	err = s.DB.QueryRowContext(ctx, tripQuery, id).Scan(&trip.ID, &trip.Name, &trip.StartTime, &trip.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip %s: %w", id, ports.ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: query food_trips table: %w", id, err)
	}

	stopsQuery := `
	SELECT ts.restaurant_id, ts.stop_order, ts.arrival_time, COALESCE(r.name, ''), COALESCE(r.category, '')
	FROM trip_stops ts
	LEFT JOIN restaurants r ON r.restaurant_id = ts.restaurant_id
	WHERE ts.trip_id = $1
	ORDER BY ts.stop_order;
	`
	rows, err := s.DB.QueryContext(ctx, stopsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: query trip_stops table: %w", id, err)
	}
	defer rows.Close()

	trip.Stops = make([]domain.TripStop, 0, 8)
	for rows.Next() {
		var stop domain.TripStop
		if err := rows.Scan(&stop.RestaurantID, &stop.StopOrder, &stop.ArrivalTime, &stop.Name, &stop.Category); err != nil {
			return nil, fmt.Errorf("get trip %s: scan stop row: %w", id, err)
		}
		trip.Stops = append(trip.Stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get trip %s: stop row iteration: %w", id, err)
	}

	return &trip, nil
}
