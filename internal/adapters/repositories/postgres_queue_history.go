package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the QueueHistoryRepository port.
type PostgresQueueHistoryRepository struct{ DB *sql.DB }

func NewPostgresQueueHistoryRepository(db *sql.DB) *PostgresQueueHistoryRepository {
	return &PostgresQueueHistoryRepository{DB: db}
}

// ListDay returns recorded hourly waits for one restaurant and weekday.
func (s *PostgresQueueHistoryRepository) ListDay(ctx context.Context, restaurantID int64, day time.Weekday) (_ []domain.HourlyWait, err error) {
	defer obs.Time(ctx, "queue_history.ListDay")(&err)

	if s.DB == nil {
		return nil, errors.New("queue history repository: DB is nil")
	}

	query := `
	SELECT hour, wait_minutes, crowd_level
	FROM queue_history
	WHERE restaurant_id = $1 AND day_of_week = $2
	ORDER BY hour;
	`
	rows, err := s.DB.QueryContext(ctx, query, restaurantID, int(day))
	if err != nil {
		return nil, fmt.Errorf("list queue history: query queue_history table: %w", err)
	}
	defer rows.Close()

	waits := make([]domain.HourlyWait, 0, 16)
	for rows.Next() {
		var hw domain.HourlyWait
		var level string
		if err := rows.Scan(&hw.Hour, &hw.WaitMinutes, &level); err != nil {
			return nil, fmt.Errorf("list queue history: scan row: %w", err)
		}
		hw.CrowdLevel = domain.CrowdLevel(level)
		waits = append(waits, hw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list queue history: row iteration: %w", err)
	}

	return waits, nil
}
