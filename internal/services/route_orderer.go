package services

import (
	"fmt"
	"math"
	"slices"

	"tastetrace-route-service/internal/domain"
	"tastetrace-route-service/internal/geo"
)

// OrderStops produces a visiting order using a greedy nearest-neighbor
// heuristic anchored at stops[0].
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (e.g., TSP solvers). The caller's
// first selection is always the fixed starting point, so a "must start here"
// choice is respected rather than optimized away.
//
// Two or fewer stops are returned unchanged; there is nothing to reorder.
// O(n²) distance computations, fine for day-trip stop counts.
func OrderStops(stops []domain.Stop) ([]domain.Stop, error) {
	if len(stops) <= 2 {
		return slices.Clone(stops), nil
	}

	ordered := make([]domain.Stop, 0, len(stops))
	ordered = append(ordered, stops[0])
	remaining := slices.Clone(stops[1:])

	for len(remaining) > 0 {
		current := ordered[len(ordered)-1]

		bestIdx := -1
		bestDist := math.Inf(1)

		// Select the next stop by minimum distance (greedy step).
		// Strict less-than keeps the earlier input index on ties.
		for i, s := range remaining {
			d, err := geo.DistanceKm(current.Coordinates, s.Coordinates)
			if err != nil {
				return nil, fmt.Errorf("order stops: %w", err)
			}
			if d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		ordered = append(ordered, remaining[bestIdx])
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	return ordered, nil
}
