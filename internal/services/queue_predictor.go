package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/ports"
)

// Queue heuristic constants. The rush multipliers and opening window come
// from observed Bangkok street-food patterns; they only apply when no
// recorded history exists for a venue.
const (
	predictionTTL = 5 * time.Minute

	firstPredictedHour = 10
	lastPredictedHour  = 22

	lunchRushFactor  = 1.3
	dinnerRushFactor = 1.5
	weekendFactor    = 1.2

	estimatedConfidence  = 0.65
	historicalConfidence = 0.85
)

// QueuePredictor produces per-venue hourly wait forecasts. Recorded history
// wins when present; otherwise a deterministic heuristic scales the venue's
// average wait across the day. Predictions are cached briefly because they
// only change when history or the wall clock's weekday does.
//
// Both History and Cache may be nil: no history means heuristic-only, no
// cache means every call computes.
type QueuePredictor struct {
	History ports.QueueHistoryRepository
	Cache   ports.PredictionCache
}

// Predict returns the wait forecast for one restaurant at the given moment.
func (p *QueuePredictor) Predict(ctx context.Context, r domain.Restaurant, now time.Time) (*domain.QueuePrediction, error) {
	key := fmt.Sprintf("queue:%d:%d", r.ID, int(now.Weekday()))

	if p.Cache != nil {
		cached, err := p.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("prediction cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	pred, err := p.predict(ctx, r, now)
	if err != nil {
		return nil, err
	}

	if p.Cache != nil {
		if err := p.Cache.Put(ctx, key, pred, predictionTTL); err != nil {
			log.Printf("prediction cache write failed: %v", err)
		}
	}

	return pred, nil
}

func (p *QueuePredictor) predict(ctx context.Context, r domain.Restaurant, now time.Time) (*domain.QueuePrediction, error) {
	var history []domain.HourlyWait
	if p.History != nil {
		var err error
		history, err = p.History.ListDay(ctx, r.ID, now.Weekday())
		if err != nil {
			return nil, fmt.Errorf("predict queue: restaurant %d: %w", r.ID, err)
		}
	}

	if len(history) == 0 {
		return p.estimate(r, now), nil
	}

	base := r.AverageWaitMinutes
	if base <= 0 {
		base = domain.DefaultAverageWaitMinutes
	}

	return buildPrediction(r.ID, history, now.Hour(), base, historicalConfidence, "historical"), nil
}

// estimate builds the heuristic fallback forecast from the venue's average
// wait: lunch and dinner rushes scale it up, weekends add on top.
func (p *QueuePredictor) estimate(r domain.Restaurant, now time.Time) *domain.QueuePrediction {
	base := r.AverageWaitMinutes
	if base <= 0 {
		base = domain.DefaultAverageWaitMinutes
	}

	weekend := now.Weekday() == time.Saturday || now.Weekday() == time.Sunday

	hourly := make([]domain.HourlyWait, 0, lastPredictedHour-firstPredictedHour+1)
	for h := firstPredictedHour; h <= lastPredictedHour; h++ {
		wait := float64(base)
		if h >= 12 && h <= 14 {
			wait *= lunchRushFactor
		}
		if h >= 18 && h <= 20 {
			wait *= dinnerRushFactor
		}
		if weekend {
			wait *= weekendFactor
		}

		w := int(math.Round(wait))
		hourly = append(hourly, domain.HourlyWait{
			Hour:        h,
			WaitMinutes: w,
			CrowdLevel:  domain.CrowdLevelFor(w),
		})
	}

	return buildPrediction(r.ID, hourly, now.Hour(), base, estimatedConfidence, "estimated")
}

// buildPrediction derives current wait and best visiting time from an
// hourly forecast. Outside the forecast window the current wait falls back
// to the default; ties on best time keep the earliest hour.
func buildPrediction(restaurantID int64, hourly []domain.HourlyWait, currentHour, defaultWait int, confidence float64, source string) *domain.QueuePrediction {
	best := hourly[0]
	currentWait := defaultWait

	for _, hw := range hourly {
		if hw.WaitMinutes < best.WaitMinutes {
			best = hw
		}
		if hw.Hour == currentHour {
			currentWait = hw.WaitMinutes
		}
	}

	return &domain.QueuePrediction{
		RestaurantID:     restaurantID,
		CurrentWait:      currentWait,
		BestTime:         fmt.Sprintf("%02d:00", best.Hour),
		HourlyPrediction: hourly,
		Confidence:       confidence,
		DataSource:       source,
	}
}
