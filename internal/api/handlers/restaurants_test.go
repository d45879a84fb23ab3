package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastetrace-route-service/internal/api/dto"
)

func TestRestaurantList(t *testing.T) {
	h := &RestaurantHandler{Repo: testDirectory()}

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res dto.ListRestaurantsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Restaurants, 3)
}

func TestRestaurantListWithFilterAndSearch(t *testing.T) {
	h := &RestaurantHandler{Repo: testDirectory()}

	req := httptest.NewRequest(http.MethodGet, "/restaurants?filter=michelin", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListRestaurantsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Restaurants, 1)
	assert.Equal(t, "Jae Fai", res.Restaurants[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/restaurants?search=thip", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	res = dto.ListRestaurantsResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Restaurants, 1)
	assert.Equal(t, "Thip Samai", res.Restaurants[0].Name)
}

func TestRestaurantListRepositoryFailure(t *testing.T) {
	h := &RestaurantHandler{Repo: &stubRestaurantRepo{listErr: assert.AnError}}

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRestaurantListRejectsWrongMethod(t *testing.T) {
	h := &RestaurantHandler{Repo: testDirectory()}

	req := httptest.NewRequest(http.MethodPost, "/restaurants", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
