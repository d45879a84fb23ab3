package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/platform/obs"
)

// RedisPredictionCache is a TTL'd cache for queue predictions, keyed per
// restaurant and weekday. Entries are stored as JSON.
type RedisPredictionCache struct {
	Client *redis.Client
}

func NewRedisPredictionCache(client *redis.Client) *RedisPredictionCache {
	return &RedisPredictionCache{Client: client}
}

// Get returns the cached prediction for key, or (nil, nil) on a miss.
func (c *RedisPredictionCache) Get(ctx context.Context, key string) (_ *domain.QueuePrediction, err error) {
	defer obs.Time(ctx, "prediction.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("prediction cache: client is nil")
	}

	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction cache %q: %w", key, err)
	}

	var p domain.QueuePrediction
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, fmt.Errorf("get prediction cache %q: decode: %w", key, err)
	}

	return &p, nil
}

// Put stores the prediction under key for at most ttl.
func (c *RedisPredictionCache) Put(ctx context.Context, key string, p *domain.QueuePrediction, ttl time.Duration) (err error) {
	defer obs.Time(ctx, "prediction.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("prediction cache: client is nil")
	}
	if p == nil {
		return errors.New("put prediction cache: prediction is nil")
	}

	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("put prediction cache %q: encode: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("put prediction cache %q: %w", key, err)
	}

	return nil
}
