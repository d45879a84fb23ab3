package domain

import "time"

// TripStop is one saved stop of a persisted food trip. Name and Category
// are filled from the directory when a trip is read back, not stored.
type TripStop struct {
	RestaurantID int64
	StopOrder    int
	ArrivalTime  string // "HH:MM"
	Name         string
	Category     string
}

// Represents a saved food trip: a planned itinerary persisted under an
// identifier so it can be reopened later. Saving is optional and planning
// never depends on it.
type Trip struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	CreatedAt time.Time
	Stops     []TripStop
}
