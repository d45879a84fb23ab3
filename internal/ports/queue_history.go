package ports

import (
	"context"
	"time"

	"tastetrace-route-service/internal/domain"
)

// Port: a boundary for reading recorded per-hour queue observations.
type QueueHistoryRepository interface {
	// ListDay returns the recorded hourly waits for one restaurant on one
	// day of the week, ordered by hour. An empty slice means no history.
	ListDay(ctx context.Context, restaurantID int64, day time.Weekday) ([]domain.HourlyWait, error)
}
