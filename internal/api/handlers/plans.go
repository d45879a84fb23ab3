package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tastetrace-route-service/internal/api/dto"
	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/ports"
	"tastetrace-route-service/internal/services"
)

// PlanHandler turns a restaurant selection into a timed itinerary.
// It coordinates directory lookup, the pure planning core, and the optional
// trip save; the planning core itself performs no I/O.
type PlanHandler struct {
	Restaurants ports.RestaurantRepository
	Trips       ports.TripRepository
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.RestaurantIDs) == 0 {
		writeError(w, r, http.StatusBadRequest, "restaurant_ids is required")
		return
	}

	restaurants, err := h.Restaurants.GetByIDs(r.Context(), req.RestaurantIDs)
	if err != nil {
		log.Printf("load restaurants for plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if missing := missingIDs(req.RestaurantIDs, restaurants); len(missing) > 0 {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown restaurant ids: %s", joinIDs(missing)))
		return
	}

	stops := make([]domain.Stop, 0, len(restaurants))
	for _, rest := range restaurants {
		stops = append(stops, rest.Stop())
	}

	// Route optimization is on unless the caller explicitly turned it off.
	optimize := req.OptimizeRoute == nil || *req.OptimizeRoute

	result, err := services.PlanTrip(services.PlanTripRequest{
		Stops:         stops,
		StartTime:     req.StartTime,
		OptimizeRoute: optimize,
	})
	if errors.Is(err, services.ErrNoValidStops) {
		writeError(w, r, http.StatusUnprocessableEntity, "no routable stops in selection")
		return
	}
	if err != nil {
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := planResponse(result)

	// Saving is best-effort: a storage failure loses the trip id, never the plan.
	if req.SaveTrip && h.Trips != nil {
		trip := tripFromResult(req.TripName, result)
		if err := h.Trips.Save(r.Context(), trip); err != nil {
			log.Printf("save trip failed: %v", err)
		} else {
			res.TripID = trip.ID
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func planResponse(result *services.PlanTripResult) dto.PlanResponse {
	stops := make([]dto.PlanStopResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		stops = append(stops, dto.PlanStopResponse{
			Order: e.Order,
			Restaurant: dto.RestaurantRef{
				ID:       e.Stop.ID,
				Name:     e.Stop.Name,
				Category: e.Stop.Category,
			},
			Timing: dto.StopTimingResponse{
				SuggestedArrival:       e.ArrivalClockTime,
				TravelMinutesFromPrev:  e.TravelMinutesFromPrevious,
				EstimatedDiningMinutes: e.DiningMinutes,
				MealType:               string(e.MealType),
			},
			DistanceKmFromPrevious: e.DistanceKmFromPrevious,
			OpeningHours: dto.OpeningHoursResponse{
				Open:  e.OpeningHours.Open,
				Close: e.OpeningHours.Close,
			},
			EstimatedCost: e.EstimatedCost,
			Coordinates: dto.CoordinatesResponse{
				Lat: e.Coordinates.Lat,
				Lng: e.Coordinates.Lng,
			},
		})
	}

	rejected := make([]dto.RejectedStopResponse, 0, len(result.RejectedStops))
	for _, s := range result.RejectedStops {
		rejected = append(rejected, dto.RejectedStopResponse{
			ID:     s.ID,
			Name:   s.Name,
			Reason: "invalid coordinates",
		})
	}

	return dto.PlanResponse{
		Stops: stops,
		Summary: dto.PlanSummaryResponse{
			TotalStops:           result.Summary.TotalStops,
			TotalDistanceKm:      result.Summary.TotalDistanceKm,
			TotalDurationMinutes: result.Summary.TotalDurationMinutes,
			TotalDurationHours:   math.Round(float64(result.Summary.TotalDurationMinutes)/60*10) / 10,
			TotalEstimatedCost:   result.Summary.TotalEstimatedCost,
			Currency:             "THB",
			StartTime:            result.Summary.StartTime,
			EndTime:              result.Summary.EndTime,
		},
		NavigationURL: result.NavigationURL,
		RejectedStops: rejected,
	}
}

func tripFromResult(name string, result *services.PlanTripResult) *domain.Trip {
	if strings.TrimSpace(name) == "" {
		name = "Food Trip " + time.Now().Format("2006-01-02")
	}

	stops := make([]domain.TripStop, 0, len(result.Entries))
	for _, e := range result.Entries {
		stops = append(stops, domain.TripStop{
			RestaurantID: e.Stop.ID,
			StopOrder:    e.Order,
			ArrivalTime:  e.ArrivalClockTime,
		})
	}

	return &domain.Trip{
		ID:        uuid.NewString(),
		Name:      name,
		StartTime: result.Summary.StartTime,
		Stops:     stops,
	}
}

func missingIDs(requested []int64, found []domain.Restaurant) []int64 {
	have := make(map[int64]struct{}, len(found))
	for _, r := range found {
		have[r.ID] = struct{}{}
	}

	missing := make([]int64, 0)
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
