package ports

import (
	"context"
	"time"

	"tastetrace-route-service/internal/domain"
)

// Port: a boundary for short-lived queue prediction caching.
type PredictionCache interface {
	// Get returns the cached prediction for key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*domain.QueuePrediction, error)

	// Put stores the prediction under key for at most ttl.
	Put(ctx context.Context, key string, p *domain.QueuePrediction, ttl time.Duration) error
}
