package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Sentiment values stored in reviews.sentiment
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Review represents one analyzed review
type Review struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ReviewText      string    `json:"review_text" gorm:"type:text;not null"`
	Sentiment       string    `json:"sentiment" gorm:"type:varchar(20);not null;index"`
	SentimentScore  float64   `json:"sentiment_score" gorm:"not null"`
	KeyPoints       string    `json:"key_points" gorm:"type:text"`
	KeyPointsSource string    `json:"key_points_source" gorm:"type:varchar(32);not null;default:'heuristic'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Diagnostic trace, not part of the public payload
	AnalysisTrace datatypes.JSONType[AnalysisTrace] `json:"-" gorm:"type:jsonb"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// AnalysisTrace records how a review's sentiment and key points were produced
type AnalysisTrace struct {
	LexiconVersion string            `json:"lexicon_version"`
	Classifier     string            `json:"classifier,omitempty"`
	BaseLabel      string            `json:"base_label,omitempty"`
	BaseScore      float64           `json:"base_score,omitempty"`
	Rule           string            `json:"rule,omitempty"`
	Overridden     bool              `json:"overridden"`
	SentimentError string            `json:"sentiment_error,omitempty"`
	Attempts       []ProviderAttempt `json:"attempts,omitempty"`
	Cached         bool              `json:"cached"`
}

// ProviderAttempt is one key-point provider call. Reason is empty on success.
type ProviderAttempt struct {
	Provider   string `json:"provider"`
	Reason     string `json:"reason,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// SentimentStats aggregates stored reviews
type SentimentStats struct {
	Total        int64   `json:"total"`
	Positive     int64   `json:"positive"`
	Negative     int64   `json:"negative"`
	Neutral      int64   `json:"neutral"`
	AverageScore float64 `json:"average_score"`
}
