package ports

import (
	"context"

	"tastetrace-route-service/internal/domain"
)

// Port: a boundary for retrieving restaurant directory data.
type RestaurantRepository interface {
	// List returns restaurants matching an optional badge filter and an
	// optional name/category search term. Empty arguments match everything.
	List(ctx context.Context, filter, search string) ([]domain.Restaurant, error)

	// GetByIDs returns the restaurants for the given ids, preserving the
	// ids' order (the planner anchors its route at the first selection).
	// Unknown ids are omitted from the result, not errors.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Restaurant, error)
}
