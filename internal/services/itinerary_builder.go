package services

import (
	"fmt"
	"math"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/geo"
)

// BuildItinerary walks the stops in visiting order and produces one timed,
// costed entry per stop plus aggregate trip statistics.
//
// The running clock starts at startMinutes (minutes since midnight) and
// accumulates without wrapping; only formatted display values are reduced
// mod 24h. Arrival time is recorded before dining time is added, so the
// entry reflects when the diner shows up, not when they leave.
func BuildItinerary(orderedStops []domain.Stop, startMinutes int) ([]domain.ItineraryEntry, domain.ItinerarySummary, error) {
	clock := startMinutes
	totalDistance := 0.0
	totalCost := 0

	entries := make([]domain.ItineraryEntry, 0, len(orderedStops))
	for i, stop := range orderedStops {
		travel := 0
		distance := 0.0

		if i > 0 {
			d, err := geo.DistanceKm(orderedStops[i-1].Coordinates, stop.Coordinates)
			if err != nil {
				return nil, domain.ItinerarySummary{}, fmt.Errorf("build itinerary: leg %d: %w", i, err)
			}

			distance = d
			travel = geo.TravelMinutes(d)
			clock += travel
			totalDistance += d
		}

		hour := (clock % domain.MinutesPerDay) / 60
		meal := MealTypeForHour(hour)
		dining := DiningMinutes(meal, stop.AverageWaitMinutes)
		cost := stop.PriceTier.CostEstimate()

		entries = append(entries, domain.ItineraryEntry{
			Order:                     i + 1,
			Stop:                      domain.StopRef{ID: stop.ID, Name: stop.Name, Category: stop.Category},
			Coordinates:               stop.Coordinates,
			TravelMinutesFromPrevious: travel,
			DistanceKmFromPrevious:    roundKm(distance),
			ArrivalClockTime:          domain.FormatClock(clock),
			MealType:                  meal,
			DiningMinutes:             dining,
			EstimatedCost:             cost,
			OpeningHours:              stop.OpeningHours,
		})

		// Departure from this stop is the baseline for the next leg.
		clock += dining
		totalCost += cost
	}

	summary := domain.ItinerarySummary{
		TotalStops:           len(entries),
		TotalDistanceKm:      roundKm(totalDistance),
		TotalDurationMinutes: clock - startMinutes,
		TotalEstimatedCost:   totalCost,
		StartTime:            domain.FormatClock(startMinutes),
		EndTime:              domain.FormatClock(clock),
	}

	return entries, summary, nil
}

// roundKm rounds a distance to one decimal place for display.
func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
