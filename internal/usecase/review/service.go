package review

import (
	"context"
	"time"

	"github.com/johnquangdev/review-analyzer/internal/domain/entities"
	"github.com/johnquangdev/review-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/review-analyzer/internal/usecase/keypoints"
	"github.com/johnquangdev/review-analyzer/internal/usecase/sentiment"
)

// Service defines the interface for review use case
type Service interface {
	// Analyze runs both resolvers on text without storing anything
	Analyze(ctx context.Context, text string) (*Analysis, error)

	// Submit analyzes text and stores the result as a new review
	Submit(ctx context.Context, text string) (*entities.Review, error)

	// GetReview retrieves a review by ID
	GetReview(ctx context.Context, id uint) (*entities.Review, error)

	// ListReviews retrieves reviews newest first
	ListReviews(ctx context.Context, filters repositories.ReviewFilters) ([]*entities.Review, int64, error)

	// DeleteReview permanently removes a review
	DeleteReview(ctx context.Context, id uint) error

	// Stats counts stored reviews per sentiment
	Stats(ctx context.Context) (*entities.SentimentStats, error)
}

// SentimentResolver is satisfied by *sentiment.Resolver
type SentimentResolver interface {
	ResolveDetailed(ctx context.Context, text string) sentiment.Detail
}

// KeyPointsResolver is satisfied by *keypoints.Resolver
type KeyPointsResolver interface {
	ResolveDetailed(ctx context.Context, text string) keypoints.Outcome
}

// Cache is the subset of cache.Store the service needs
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Ensure ReviewService implements Service interface
var _ Service = (*ReviewService)(nil)
