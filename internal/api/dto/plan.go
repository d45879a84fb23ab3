package dto

type PlanRequest struct {
	RestaurantIDs []int64 `json:"restaurant_ids"`
	StartTime     string  `json:"start_time"`
	OptimizeRoute *bool   `json:"optimize_route"`
	SaveTrip      bool    `json:"save_trip"`
	TripName      string  `json:"trip_name"`
}

type RestaurantRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type StopTimingResponse struct {
	SuggestedArrival       string `json:"suggested_arrival"`
	TravelMinutesFromPrev  int    `json:"travel_minutes_from_previous"`
	EstimatedDiningMinutes int    `json:"estimated_dining_minutes"`
	MealType               string `json:"meal_type"`
}

type PlanStopResponse struct {
	Order                  int                  `json:"order"`
	Restaurant             RestaurantRef        `json:"restaurant"`
	Timing                 StopTimingResponse   `json:"timing"`
	DistanceKmFromPrevious float64              `json:"distance_km_from_previous"`
	OpeningHours           OpeningHoursResponse `json:"opening_hours"`
	EstimatedCost          int                  `json:"estimated_cost"`
	Coordinates            CoordinatesResponse  `json:"coordinates"`
}

type PlanSummaryResponse struct {
	TotalStops           int     `json:"total_stops"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	TotalDurationHours   float64 `json:"total_duration_hours"`
	TotalEstimatedCost   int     `json:"total_estimated_cost"`
	Currency             string  `json:"currency"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
}

type RejectedStopResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type PlanResponse struct {
	TripID        string                 `json:"trip_id,omitempty"`
	Stops         []PlanStopResponse     `json:"stops"`
	Summary       PlanSummaryResponse    `json:"summary"`
	NavigationURL string                 `json:"navigation_url"`
	RejectedStops []RejectedStopResponse `json:"rejected_stops"`
}
