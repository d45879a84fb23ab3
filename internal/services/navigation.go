package services

import (
	"fmt"
	"strings"

	"tastetrace-route-service/internal/domain"
)

// MapsURL serializes a visiting order into a Google Maps directions deep
// link: first stop is the origin, last is the destination, everything in
// between becomes a waypoint in order.
//
// The URL format is prescribed by the Maps URLs API, including the "|"
// waypoint delimiter, so the string is assembled literally rather than
// through net/url.
func MapsURL(orderedStops []domain.Stop) string {
	if len(orderedStops) == 0 {
		return ""
	}

	origin := orderedStops[0].Coordinates.String()
	destination := orderedStops[len(orderedStops)-1].Coordinates.String()

	var b strings.Builder
	fmt.Fprintf(&b, "https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s&travelmode=driving", origin, destination)

	if len(orderedStops) > 2 {
		waypoints := make([]string, 0, len(orderedStops)-2)
		for _, s := range orderedStops[1 : len(orderedStops)-1] {
			waypoints = append(waypoints, s.Coordinates.String())
		}
		b.WriteString("&waypoints=")
		b.WriteString(strings.Join(waypoints, "|"))
	}

	return b.String()
}
