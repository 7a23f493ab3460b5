package repositories

import (
	"context"

	"github.com/johnquangdev/review-analyzer/internal/domain/entities"
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Create stores a new review and fills its ID and CreatedAt
	Create(ctx context.Context, review *entities.Review) error

	// FindByID retrieves a review by its ID
	FindByID(ctx context.Context, id uint) (*entities.Review, error)

	// List retrieves reviews newest first
	List(ctx context.Context, filters ReviewFilters) ([]*entities.Review, int64, error)

	// Delete permanently removes a review. Returns gorm.ErrRecordNotFound
	// when no row matched.
	Delete(ctx context.Context, id uint) error

	// Stats counts reviews per sentiment
	Stats(ctx context.Context) (*entities.SentimentStats, error)
}

// ReviewFilters represents filter options for listing reviews.
// A zero Limit returns every row.
type ReviewFilters struct {
	Sentiment string
	Limit     int
	Offset    int
}
