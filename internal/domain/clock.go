package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the wrap-around boundary for wall-clock formatting.
// The itinerary clock itself accumulates unbounded minutes; only display
// values are reduced modulo one day.
const MinutesPerDay = 24 * 60

// DefaultStartTime is the planning start used when no valid time is given.
const DefaultStartTime = "09:00"

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("parse clock: %q is not HH:MM", s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("parse clock: %q has invalid hour", s)
	}

	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock: %q has invalid minute", s)
	}

	return h*60 + m, nil
}

// FormatClock renders a minute count as "HH:MM", wrapped mod 24h.
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
