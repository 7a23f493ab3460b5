package review

// AnalyzeReviewRequest represents the body of POST /api/analyze-review.
// ReviewText is a pointer so a missing field and a blank one are told apart.
type AnalyzeReviewRequest struct {
	ReviewText *string `json:"review_text" validate:"required,notblank" example:"Barangnya bagus, pengiriman cepat"`
}

// ListReviewsRequest represents query parameters for GET /api/reviews
type ListReviewsRequest struct {
	Sentiment string `query:"sentiment" validate:"omitempty,oneof=positive negative neutral"`
	Limit     int    `query:"limit" validate:"min=0,max=500"`
	Offset    int    `query:"offset" validate:"min=0"`
}
