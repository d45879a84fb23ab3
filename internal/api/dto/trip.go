package dto

import "time"

type TripStopResponse struct {
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	StopOrder    int    `json:"stop_order"`
	ArrivalTime  string `json:"arrival_time"`
}

type TripResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	StartTime string             `json:"start_time"`
	CreatedAt time.Time          `json:"created_at"`
	Stops     []TripStopResponse `json:"stops"`
}
