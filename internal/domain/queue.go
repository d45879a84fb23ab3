package domain

// CrowdLevel is a display bucket for an expected wait.
type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "low"
	CrowdMedium CrowdLevel = "medium"
	CrowdHigh   CrowdLevel = "high"
	CrowdPeak   CrowdLevel = "peak"
)

// CrowdLevelFor maps a wait estimate in minutes to its display bucket.
func CrowdLevelFor(waitMinutes int) CrowdLevel {
	switch {
	case waitMinutes < 15:
		return CrowdLow
	case waitMinutes < 45:
		return CrowdMedium
	case waitMinutes < 90:
		return CrowdHigh
	default:
		return CrowdPeak
	}
}

// HourlyWait is one hour's expected queue at a venue.
type HourlyWait struct {
	Hour        int
	WaitMinutes int
	CrowdLevel  CrowdLevel
}

// QueuePrediction is the per-venue wait forecast for one day of the week.
type QueuePrediction struct {
	RestaurantID     int64
	CurrentWait      int
	BestTime         string // "HH:MM" of the lowest-wait hour
	HourlyPrediction []HourlyWait
	Confidence       float64
	DataSource       string // "historical" or "estimated"
}
