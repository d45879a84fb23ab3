package services

import (
	"testing"

	"tastetrace-route-service/internal/domain"
)

func stopAt(id int64, lat, lng float64) domain.Stop {
	return domain.Stop{
		ID:          id,
		Coordinates: domain.Coordinates{Lat: lat, Lng: lng},
	}
}

func orderedIDs(stops []domain.Stop) []int64 {
	ids := make([]int64, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestOrderStopsLeavesTwoOrFewerUnchanged(t *testing.T) {
	for _, stops := range [][]domain.Stop{
		{},
		{stopAt(1, 13.75, 100.5)},
		{stopAt(1, 13.75, 100.5), stopAt(2, 13.76, 100.51)},
	} {
		got, err := OrderStops(stops)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(stops) {
			t.Fatalf("length changed: got %d, want %d", len(got), len(stops))
		}
		for i := range stops {
			if got[i].ID != stops[i].ID {
				t.Fatalf("order changed at %d: got %d, want %d", i, got[i].ID, stops[i].ID)
			}
		}
	}
}

func TestOrderStopsAnchorsAtFirstSelection(t *testing.T) {
	// Stop 2 is marginally closer to stop 1 than stop 3 is at this latitude.
	stops := []domain.Stop{
		stopAt(1, 13.75, 100.50),
		stopAt(2, 13.76, 100.51),
		stopAt(3, 13.74, 100.49),
	}

	got, err := OrderStops(stops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := orderedIDs(got)
	if ids[0] != 1 {
		t.Fatalf("anchor moved: first stop = %d, want 1", ids[0])
	}
	if ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", ids)
	}
}

func TestOrderStopsBreaksTiesByInputOrder(t *testing.T) {
	// Both candidates sit exactly one degree from the anchor.
	stops := []domain.Stop{
		stopAt(1, 0, 0),
		stopAt(2, 0, 1),
		stopAt(3, 1, 0),
	}

	got, err := OrderStops(stops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := orderedIDs(got)
	if ids[1] != 2 {
		t.Fatalf("tie broken wrong: second stop = %d, want 2 (lower input index)", ids[1])
	}
}

func TestOrderStopsIsAPermutation(t *testing.T) {
	stops := []domain.Stop{
		stopAt(1, 13.7523, 100.5108),
		stopAt(2, 13.7528, 100.5048),
		stopAt(3, 13.7392, 100.5294),
		stopAt(4, 13.7400, 100.5400),
		stopAt(5, 13.7249, 100.5142),
	}

	got, err := OrderStops(stops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(stops) {
		t.Fatalf("length = %d, want %d", len(got), len(stops))
	}

	seen := make(map[int64]bool, len(got))
	for _, s := range got {
		if seen[s.ID] {
			t.Fatalf("duplicate stop %d in visiting order", s.ID)
		}
		seen[s.ID] = true
	}
	for _, s := range stops {
		if !seen[s.ID] {
			t.Fatalf("stop %d missing from visiting order", s.ID)
		}
	}
}

func TestOrderStopsDoesNotMutateInput(t *testing.T) {
	stops := []domain.Stop{
		stopAt(1, 13.75, 100.50),
		stopAt(3, 13.74, 100.49),
		stopAt(2, 13.76, 100.51),
	}

	if _, err := OrderStops(stops); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stops[0].ID != 1 || stops[1].ID != 3 || stops[2].ID != 2 {
		t.Fatalf("input slice reordered: %v", orderedIDs(stops))
	}
}
