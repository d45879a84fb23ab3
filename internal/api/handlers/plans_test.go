package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastetrace-route-service/internal/api/dto"
	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/ports"
)

type stubRestaurantRepo struct {
	restaurants map[int64]domain.Restaurant
	listErr     error
}

func (s *stubRestaurantRepo) List(_ context.Context, filter, search string) ([]domain.Restaurant, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if filter != "" && !hasBadge(r, filter) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRestaurantRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.restaurants[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func hasBadge(r domain.Restaurant, badge string) bool {
	for _, b := range r.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

type stubTripRepo struct {
	saved   map[string]*domain.Trip
	saveErr error
}

func (s *stubTripRepo) Save(_ context.Context, trip *domain.Trip) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.saved == nil {
		s.saved = map[string]*domain.Trip{}
	}
	s.saved[trip.ID] = trip
	return nil
}

func (s *stubTripRepo) Get(_ context.Context, id string) (*domain.Trip, error) {
	trip, ok := s.saved[id]
	if !ok {
		return nil, ports.ErrTripNotFound
	}
	return trip, nil
}

func testDirectory() *stubRestaurantRepo {
	return &stubRestaurantRepo{restaurants: map[int64]domain.Restaurant{
		1: {
			ID: 1, Name: "Jae Fai", Category: "Street Food",
			Coordinates:        domain.Coordinates{Lat: 13.7523, Lng: 100.5108},
			AverageWaitMinutes: 180,
			OpeningHours:       domain.OpeningHours{Open: "14:00", Close: "20:00"},
			PriceTier:          domain.PricePremium,
			Badges:             []string{"michelin"},
		},
		2: {
			ID: 2, Name: "Thip Samai", Category: "Pad Thai",
			Coordinates:        domain.Coordinates{Lat: 13.7512, Lng: 100.5046},
			AverageWaitMinutes: 45,
			OpeningHours:       domain.OpeningHours{Open: "09:00", Close: "21:00"},
			PriceTier:          domain.PriceBudget,
		},
		3: {
			ID: 3, Name: "Wattana Panich", Category: "Beef Noodles",
			Coordinates:        domain.Coordinates{Lat: 13.7392, Lng: 100.5294},
			AverageWaitMinutes: 15,
			OpeningHours:       domain.OpeningHours{Open: "09:00", Close: "19:30"},
			PriceTier:          domain.PriceBudget,
		},
	}}
}

func doPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanHappyPath(t *testing.T) {
	h := &PlanHandler{Restaurants: testDirectory()}

	rec := doPlan(t, h, `{"restaurant_ids":[2,1,3],"start_time":"10:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.Stops, 3)
	// The first selection anchors the route.
	assert.Equal(t, int64(2), res.Stops[0].Restaurant.ID)
	for i, s := range res.Stops {
		assert.Equal(t, i+1, s.Order)
	}

	assert.Equal(t, 3, res.Summary.TotalStops)
	assert.Equal(t, "10:00", res.Summary.StartTime)
	assert.Equal(t, "THB", res.Summary.Currency)
	assert.True(t, strings.HasPrefix(res.NavigationURL, "https://www.google.com/maps/dir/?api=1&origin="))
	assert.Empty(t, res.TripID)
	assert.Empty(t, res.RejectedStops)
}

func TestPlanHonorsOptimizeRouteOff(t *testing.T) {
	h := &PlanHandler{Restaurants: testDirectory()}

	rec := doPlan(t, h, `{"restaurant_ids":[3,1,2],"optimize_route":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.Stops, 3)
	assert.Equal(t, int64(3), res.Stops[0].Restaurant.ID)
	assert.Equal(t, int64(1), res.Stops[1].Restaurant.ID)
	assert.Equal(t, int64(2), res.Stops[2].Restaurant.ID)
	// Malformed or missing start time falls back to the default.
	assert.Equal(t, "09:00", res.Summary.StartTime)
}

func TestPlanRejectsUnknownRestaurants(t *testing.T) {
	h := &PlanHandler{Restaurants: testDirectory()}

	rec := doPlan(t, h, `{"restaurant_ids":[1,99]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "99")
}

func TestPlanValidatesTheBody(t *testing.T) {
	h := &PlanHandler{Restaurants: testDirectory()}

	cases := map[string]string{
		"malformed json":  `{"restaurant_ids":`,
		"unknown field":   `{"restaurant_ids":[1],"speed":99}`,
		"empty selection": `{"restaurant_ids":[]}`,
		"two objects":     `{"restaurant_ids":[1]}{"restaurant_ids":[2]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doPlan(t, h, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPlanRejectsWrongMethod(t *testing.T) {
	h := &PlanHandler{Restaurants: testDirectory()}

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestPlanUnroutableSelection(t *testing.T) {
	repo := testDirectory()
	repo.restaurants[7] = domain.Restaurant{
		ID: 7, Name: "Nowhere",
		Coordinates: domain.Coordinates{Lat: 200, Lng: 100.5},
	}
	h := &PlanHandler{Restaurants: repo}

	rec := doPlan(t, h, `{"restaurant_ids":[7]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlanReportsRejectedStops(t *testing.T) {
	repo := testDirectory()
	repo.restaurants[7] = domain.Restaurant{
		ID: 7, Name: "Nowhere",
		Coordinates: domain.Coordinates{Lat: 200, Lng: 100.5},
	}
	h := &PlanHandler{Restaurants: repo}

	rec := doPlan(t, h, `{"restaurant_ids":[1,7]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.RejectedStops, 1)
	assert.Equal(t, int64(7), res.RejectedStops[0].ID)
	assert.Equal(t, "invalid coordinates", res.RejectedStops[0].Reason)
	assert.Len(t, res.Stops, 1)
}

func TestPlanSavesTripOnRequest(t *testing.T) {
	trips := &stubTripRepo{}
	h := &PlanHandler{Restaurants: testDirectory(), Trips: trips}

	rec := doPlan(t, h, `{"restaurant_ids":[2,3],"start_time":"11:30","save_trip":true,"trip_name":"Saturday Crawl"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.TripID)

	saved, ok := trips.saved[res.TripID]
	require.True(t, ok, "trip was not stored under the returned id")
	assert.Equal(t, "Saturday Crawl", saved.Name)
	assert.Equal(t, "11:30", saved.StartTime)
	require.Len(t, saved.Stops, 2)
	assert.Equal(t, 1, saved.Stops[0].StopOrder)
	assert.Equal(t, "11:30", saved.Stops[0].ArrivalTime)
}

func TestPlanSaveFailureStillReturnsThePlan(t *testing.T) {
	trips := &stubTripRepo{saveErr: assert.AnError}
	h := &PlanHandler{Restaurants: testDirectory(), Trips: trips}

	rec := doPlan(t, h, `{"restaurant_ids":[2],"save_trip":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.TripID)
	assert.Len(t, res.Stops, 1)
}
