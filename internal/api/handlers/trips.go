package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"tastetrace-route-service/internal/api/dto"
	"tastetrace-route-service/internal/ports"
)

// TripHandler reopens previously saved trips.
type TripHandler struct {
	Repo ports.TripRepository
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("trip_id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "trip_id is required")
		return
	}

	trip, err := h.Repo.Get(r.Context(), id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("get trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TripResponse{
		ID:        trip.ID,
		Name:      trip.Name,
		StartTime: trip.StartTime,
		CreatedAt: trip.CreatedAt,
		Stops:     make([]dto.TripStopResponse, 0, len(trip.Stops)),
	}
	for _, s := range trip.Stops {
		res.Stops = append(res.Stops, dto.TripStopResponse{
			RestaurantID: s.RestaurantID,
			Name:         s.Name,
			Category:     s.Category,
			StopOrder:    s.StopOrder,
			ArrivalTime:  s.ArrivalTime,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
