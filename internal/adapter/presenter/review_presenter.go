package presenter

import (
	"github.com/johnquangdev/review-analyzer/internal/adapter/dto/review"
	"github.com/johnquangdev/review-analyzer/internal/domain/entities"
)

// ToReviewResponse converts a review entity to its public response
func ToReviewResponse(r *entities.Review) review.ReviewResponse {
	return review.ReviewResponse{
		ID:              r.ID,
		ReviewText:      r.ReviewText,
		Sentiment:       r.Sentiment,
		SentimentScore:  r.SentimentScore,
		KeyPoints:       r.KeyPoints,
		KeyPointsSource: r.KeyPointsSource,
		CreatedAt:       r.CreatedAt,
	}
}

// ToReviewResponses converts a list, never returning nil so it encodes as []
func ToReviewResponses(rs []*entities.Review) []review.ReviewResponse {
	out := make([]review.ReviewResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReviewResponse(r))
	}
	return out
}

// ToStatsResponse converts aggregate counts
func ToStatsResponse(s *entities.SentimentStats) review.StatsResponse {
	return review.StatsResponse{
		Total:        s.Total,
		Positive:     s.Positive,
		Negative:     s.Negative,
		Neutral:      s.Neutral,
		AverageScore: s.AverageScore,
	}
}
