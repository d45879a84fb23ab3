package dto

type HourlyWaitResponse struct {
	Hour        int    `json:"hour"`
	WaitMinutes int    `json:"wait_minutes"`
	CrowdLevel  string `json:"crowd_level"`
}

type QueuePredictionResponse struct {
	RestaurantID     int64                `json:"restaurant_id"`
	CurrentWait      int                  `json:"current_wait"`
	BestTime         string               `json:"best_time"`
	HourlyPrediction []HourlyWaitResponse `json:"hourly_prediction"`
	Confidence       float64              `json:"confidence"`
	DataSource       string               `json:"data_source"`
}
