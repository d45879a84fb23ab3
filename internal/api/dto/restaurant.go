package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpeningHoursResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type RestaurantResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Category      string              `json:"category"`
	Badges        []string            `json:"badges"`
	Coordinates   CoordinatesResponse `json:"coordinates"`
	AverageWait   int                 `json:"average_wait"`
	OpeningHours  OpeningHoursResponse `json:"opening_hours"`
	PriceRange    string              `json:"price_range"`
	GoogleMapsURL string              `json:"google_maps_url"`
}

type ListRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}
