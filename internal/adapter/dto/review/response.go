package review

import "time"

// ReviewResponse is the public shape of a stored review
type ReviewResponse struct {
	ID              uint      `json:"id" example:"1"`
	ReviewText      string    `json:"review_text" example:"Barangnya bagus, pengiriman cepat"`
	Sentiment       string    `json:"sentiment" example:"positive"`
	SentimentScore  float64   `json:"sentiment_score" example:"0.92"`
	KeyPoints       string    `json:"key_points" example:"[LAYANAN]: Aspek layanan: Barangnya bagus, pengiriman cepat"`
	KeyPointsSource string    `json:"key_points_source" example:"groq"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeleteReviewResponse confirms a deletion
type DeleteReviewResponse struct {
	Message string `json:"message" example:"Review berhasil dihapus"`
	ID      uint   `json:"id" example:"1"`
}

// StatsResponse aggregates stored reviews
type StatsResponse struct {
	Total        int64   `json:"total"`
	Positive     int64   `json:"positive"`
	Negative     int64   `json:"negative"`
	Neutral      int64   `json:"neutral"`
	AverageScore float64 `json:"average_score"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database,omitempty" example:"ok"`
	Cache    string `json:"cache,omitempty" example:"redis"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string            `json:"error" example:"review_text is required"`
	Code    int32             `json:"code" example:"3001"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
