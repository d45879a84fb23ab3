package domain

// MealType is a time-of-day dining category. It selects a base dining
// duration and is derived from the arrival hour, never from the venue's
// own category.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
	MealDessert   MealType = "dessert"
)

// StopRef identifies the originating stop on an itinerary entry.
type StopRef struct {
	ID       int64
	Name     string
	Category string
}

// Represents a single visited stop in a planned itinerary.
// An ItineraryEntry records when the diner arrives, how they got there from
// the previous stop, and how long and how much the visit is expected to take.
type ItineraryEntry struct {
	Order                     int
	Stop                      StopRef
	Coordinates               Coordinates
	TravelMinutesFromPrevious int
	DistanceKmFromPrevious    float64 // rounded to one decimal place
	ArrivalClockTime          string  // "HH:MM", wrapped mod 24h
	MealType                  MealType
	DiningMinutes             int
	EstimatedCost             int
	OpeningHours              OpeningHours
}

// Represents the aggregate statistics of a planned food trip.
// An ItinerarySummary is the output of the itinerary builder and is
// immutable planning data with no side effects.
type ItinerarySummary struct {
	TotalStops           int
	TotalDistanceKm      float64 // rounded to one decimal place
	TotalDurationMinutes int     // start to final stop's departure
	TotalEstimatedCost   int
	StartTime            string // "HH:MM"
	EndTime              string // "HH:MM", wrapped mod 24h
}
