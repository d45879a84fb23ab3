package domain

// Represents a single venue in the restaurant directory.
// A Restaurant is the stored entity behind the planner's Stop records and
// carries extra display metadata the planner itself never reads.
type Restaurant struct {
	ID                 int64
	Name               string
	Category           string
	Coordinates        Coordinates
	AverageWaitMinutes int
	OpeningHours       OpeningHours
	PriceTier          PriceTier
	GoogleMapsURL      string
	Badges             []string
}

// Stop converts the directory entity into the planner's input record.
func (r Restaurant) Stop() Stop {
	return Stop{
		ID:                 r.ID,
		Name:               r.Name,
		Category:           r.Category,
		Coordinates:        r.Coordinates,
		AverageWaitMinutes: r.AverageWaitMinutes,
		OpeningHours:       r.OpeningHours,
		PriceTier:          r.PriceTier,
	}
}
