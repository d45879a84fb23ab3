package domain

// PriceTier is the coarse price bucket a venue advertises.
type PriceTier string

const (
	PriceBudget   PriceTier = "$"
	PriceModerate PriceTier = "$$"
	PriceUpscale  PriceTier = "$$$"
	PricePremium  PriceTier = "$$$$"
)

// DefaultPriceTier is assumed when a venue carries no recognized tier.
const DefaultPriceTier = PriceModerate

// DefaultAverageWaitMinutes is assumed when a venue has no wait data.
const DefaultAverageWaitMinutes = 30

// Fixed per-tier meal cost estimates in THB.
var costByTier = map[PriceTier]int{
	PriceBudget:   100,
	PriceModerate: 250,
	PriceUpscale:  500,
	PricePremium:  1000,
}

// Normalize returns the tier itself when recognized, the default otherwise.
func (p PriceTier) Normalize() PriceTier {
	if _, ok := costByTier[p]; ok {
		return p
	}
	return DefaultPriceTier
}

// CostEstimate returns the fixed per-person meal cost for the tier.
func (p PriceTier) CostEstimate() int {
	return costByTier[p.Normalize()]
}

// OpeningHours is display metadata only; the planner never enforces it as a
// scheduling constraint.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// DefaultOpeningHours covers venues with missing or malformed hours.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{Open: "09:00", Close: "21:00"}
}

// Normalize returns the hours unchanged when both bounds parse as HH:MM,
// and the default hours otherwise.
func (h OpeningHours) Normalize() OpeningHours {
	if _, err := ParseClock(h.Open); err != nil {
		return DefaultOpeningHours()
	}
	if _, err := ParseClock(h.Close); err != nil {
		return DefaultOpeningHours()
	}
	return h
}

// Stop is a single venue the itinerary is built over. It is input data,
// never mutated during a planning call.
type Stop struct {
	ID                 int64
	Name               string
	Category           string
	Coordinates        Coordinates
	AverageWaitMinutes int
	OpeningHours       OpeningHours
	PriceTier          PriceTier
}

// Normalized returns a copy with documented defaults filled in. Absent
// optional fields (NULL columns, omitted JSON) are resolved to defaults at
// the decode boundary; this pass covers whatever slipped through so the
// planning algorithms never see an unfilled field.
func (s Stop) Normalized() Stop {
	if s.AverageWaitMinutes < 0 {
		s.AverageWaitMinutes = DefaultAverageWaitMinutes
	}
	s.OpeningHours = s.OpeningHours.Normalize()
	s.PriceTier = s.PriceTier.Normalize()
	return s
}
