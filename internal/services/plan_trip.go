package services

import (
	"errors"
	"fmt"

	"tastetrace-route-service/internal/domain"
)

// ErrNoValidStops is returned when every supplied stop was rejected and
// there is nothing left to route.
var ErrNoValidStops = errors.New("no valid stops to route")

type PlanTripRequest struct {
	// Stops in the caller's original selection order. The first stop is
	// the route anchor when optimization is on.
	Stops []domain.Stop

	// StartTime is "HH:MM"; empty or malformed values fall back to the
	// default rather than failing the request.
	StartTime string

	// OptimizeRoute false keeps the caller's order verbatim.
	OptimizeRoute bool
}

type PlanTripResult struct {
	Entries       []domain.ItineraryEntry
	Summary       domain.ItinerarySummary
	NavigationURL string

	// RejectedStops holds inputs excluded for missing or out-of-range
	// coordinates, echoed back so they are never silently dropped.
	RejectedStops []domain.Stop
}

// PlanTrip turns a stop selection into a timed, costed, ordered itinerary.
//
// It is a pure request/response transformation: no I/O, no retained state,
// no mutation of the caller's stops. Stops that cannot be distance-ranked
// are excluded up front and reported; the request only fails outright when
// no routable stop remains.
func PlanTrip(req PlanTripRequest) (*PlanTripResult, error) {
	valid := make([]domain.Stop, 0, len(req.Stops))
	rejected := []domain.Stop{}

	// One normalization pass before any computation; the algorithms never
	// apply per-field fallbacks themselves.
	for _, s := range req.Stops {
		if !s.Coordinates.Valid() {
			rejected = append(rejected, s)
			continue
		}
		valid = append(valid, s.Normalized())
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("plan trip: %w", ErrNoValidStops)
	}

	start, err := domain.ParseClock(req.StartTime)
	if err != nil {
		// Start time is a convenience default, not a strict contract.
		start, _ = domain.ParseClock(domain.DefaultStartTime)
	}

	ordered := valid
	if req.OptimizeRoute {
		ordered, err = OrderStops(valid)
		if err != nil {
			return nil, fmt.Errorf("plan trip: %w", err)
		}
	}

	entries, summary, err := BuildItinerary(ordered, start)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return &PlanTripResult{
		Entries:       entries,
		Summary:       summary,
		NavigationURL: MapsURL(ordered),
		RejectedStops: rejected,
	}, nil
}
