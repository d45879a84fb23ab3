// Package geo holds the fixed geographic assumptions the planner runs on.
//
// Distances are great-circle (haversine) on WGS-84 coordinates. Travel time
// is estimated with a constant average speed; good enough for day-trip
// planning, swap in a routing engine if street-level accuracy matters.
package geo

import (
	"fmt"
	"math"

	"tastetrace-route-service/internal/domain"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// AverageSpeedKmh is the assumed door-to-door travel speed in dense
	// Bangkok traffic. Single source of truth for travel-time estimates.
	AverageSpeedKmh = 20.0
)

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers. Symmetric; zero when the points coincide. Out-of-range input
// is a caller error, not something to clamp.
func DistanceKm(a, b domain.Coordinates) (float64, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("distance: coordinate %q out of range", a.String())
	}
	if !b.Valid() {
		return 0, fmt.Errorf("distance: coordinate %q out of range", b.String())
	}

	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c, nil
}

// TravelMinutes converts a distance into expected travel time at the fixed
// average speed, rounded up to whole minutes. Zero distance is zero minutes.
func TravelMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / AverageSpeedKmh * 60))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
