package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tastetrace-route-service/internal/api/dto"
	"tastetrace-route-service/internal/ports"
	"tastetrace-route-service/internal/services"
)

// QueueHandler serves per-restaurant wait forecasts at /queue/{id}.
type QueueHandler struct {
	Restaurants ports.RestaurantRepository
	Predictor   *services.QueuePredictor
}

func (h *QueueHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, "/queue/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	restaurants, err := h.Restaurants.GetByIDs(r.Context(), []int64{id})
	if err != nil {
		log.Printf("load restaurant for queue prediction failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(restaurants) == 0 {
		writeError(w, r, http.StatusNotFound, "restaurant not found")
		return
	}

	pred, err := h.Predictor.Predict(r.Context(), restaurants[0], time.Now())
	if err != nil {
		log.Printf("queue prediction failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.QueuePredictionResponse{
		RestaurantID:     pred.RestaurantID,
		CurrentWait:      pred.CurrentWait,
		BestTime:         pred.BestTime,
		HourlyPrediction: make([]dto.HourlyWaitResponse, 0, len(pred.HourlyPrediction)),
		Confidence:       pred.Confidence,
		DataSource:       pred.DataSource,
	}
	for _, hw := range pred.HourlyPrediction {
		res.HourlyPrediction = append(res.HourlyPrediction, dto.HourlyWaitResponse{
			Hour:        hw.Hour,
			WaitMinutes: hw.WaitMinutes,
			CrowdLevel:  string(hw.CrowdLevel),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
