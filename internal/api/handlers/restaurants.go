package handlers

import (
	"log"
	"net/http"

	"tastetrace-route-service/internal/api/dto"
	"tastetrace-route-service/internal/ports"
)

// RestaurantHandler exposes read-only directory endpoints.
type RestaurantHandler struct {
	Repo ports.RestaurantRepository
}

func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	filter := r.URL.Query().Get("filter")
	search := r.URL.Query().Get("search")

	restaurants, err := h.Repo.List(r.Context(), filter, search)
	if err != nil {
		log.Printf("list restaurants failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRestaurantsResponse{
		Restaurants: make([]dto.RestaurantResponse, 0, len(restaurants)),
	}
	for _, rest := range restaurants {
		res.Restaurants = append(res.Restaurants, dto.RestaurantResponse{
			ID:       rest.ID,
			Name:     rest.Name,
			Category: rest.Category,
			Badges:   rest.Badges,
			Coordinates: dto.CoordinatesResponse{
				Lat: rest.Coordinates.Lat,
				Lng: rest.Coordinates.Lng,
			},
			AverageWait: rest.AverageWaitMinutes,
			OpeningHours: dto.OpeningHoursResponse{
				Open:  rest.OpeningHours.Open,
				Close: rest.OpeningHours.Close,
			},
			PriceRange:    string(rest.PriceTier),
			GoogleMapsURL: rest.GoogleMapsURL,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
