package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastetrace-route-service/internal/domain"
)

func newTestCache(t *testing.T) (*RedisPredictionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPredictionCache(client), mr
}

func samplePrediction() *domain.QueuePrediction {
	return &domain.QueuePrediction{
		RestaurantID: 1,
		CurrentWait:  39,
		BestTime:     "10:00",
		HourlyPrediction: []domain.HourlyWait{
			{Hour: 10, WaitMinutes: 30, CrowdLevel: domain.CrowdMedium},
			{Hour: 12, WaitMinutes: 39, CrowdLevel: domain.CrowdMedium},
		},
		Confidence: 0.65,
		DataSource: "estimated",
	}
}

func TestRedisPredictionCacheMissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "queue:1:2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisPredictionCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	want := samplePrediction()

	require.NoError(t, c.Put(ctx, "queue:1:2", want, 5*time.Minute))

	got, err := c.Get(ctx, "queue:1:2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestRedisPredictionCacheEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "queue:1:2", samplePrediction(), 5*time.Minute))

	mr.FastForward(6 * time.Minute)

	got, err := c.Get(ctx, "queue:1:2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisPredictionCacheRejectsNilPrediction(t *testing.T) {
	c, _ := newTestCache(t)

	err := c.Put(context.Background(), "queue:1:2", nil, time.Minute)
	assert.Error(t, err)
}

func TestRedisPredictionCacheCorruptEntryIsAnError(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("queue:1:2", "not-json"))

	_, err := c.Get(context.Background(), "queue:1:2")
	assert.Error(t, err)
}
