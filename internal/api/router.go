package api

import (
	"net/http"

	"tastetrace-route-service/internal/api/handlers"
	"tastetrace-route-service/internal/ports"
	"tastetrace-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	restaurants ports.RestaurantRepository,
	trips ports.TripRepository,
	predictor *services.QueuePredictor,
) http.Handler {
	mux := http.NewServeMux()

	restaurantHandler := &handlers.RestaurantHandler{Repo: restaurants}
	planHandler := &handlers.PlanHandler{Restaurants: restaurants, Trips: trips}
	tripHandler := &handlers.TripHandler{Repo: trips}
	queueHandler := &handlers.QueueHandler{Restaurants: restaurants, Predictor: predictor}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/restaurants", restaurantHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/trips", tripHandler.Get)
	mux.HandleFunc("/queue/", queueHandler.Predict)

	return loggingMiddleware(mux)
}
