package ports

import (
	"context"
	"errors"

	"tastetrace-route-service/internal/domain"
)

// ErrTripNotFound is returned by Get for an unknown trip id.
var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for persisting and reopening planned food trips.
type TripRepository interface {
	// Save stores the trip and its stops atomically.
	Save(ctx context.Context, trip *domain.Trip) error

	// Get returns a saved trip with its stops in visiting order.
	Get(ctx context.Context, id string) (*domain.Trip, error)
}
