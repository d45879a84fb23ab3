package services

import "tastetrace-route-service/internal/domain"

// Base minutes spent eating per meal type, before queue time.
var baseDiningMinutes = map[domain.MealType]int{
	domain.MealBreakfast: 30,
	domain.MealLunch:     45,
	domain.MealDinner:    60,
	domain.MealSnack:     20,
	domain.MealDessert:   25,
}

// Fallback for a meal type missing from the table; cannot occur through
// MealTypeForHour but keeps DiningMinutes total.
const fallbackDiningMinutes = 45

// MealTypeForHour maps an arrival hour (0-23) to its meal type.
// Buckets are half-open: 11:00 is lunch, not breakfast; 21:00 is dessert.
func MealTypeForHour(hour int) domain.MealType {
	switch {
	case hour >= 6 && hour < 11:
		return domain.MealBreakfast
	case hour >= 11 && hour < 14:
		return domain.MealLunch
	case hour >= 14 && hour < 17:
		return domain.MealSnack
	case hour >= 17 && hour < 21:
		return domain.MealDinner
	default:
		return domain.MealDessert
	}
}

// DiningMinutes estimates time spent at a stop: base eating time for the
// meal type plus the venue's expected queue. No upper bound; some Bangkok
// venues really do have multi-hour queues.
func DiningMinutes(meal domain.MealType, averageWaitMinutes int) int {
	base, ok := baseDiningMinutes[meal]
	if !ok {
		base = fallbackDiningMinutes
	}
	return base + averageWaitMinutes
}
