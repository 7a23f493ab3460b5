package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/johnquangdev/review-analyzer/internal/domain/entities"
	"github.com/johnquangdev/review-analyzer/internal/domain/repositories"
)

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&review).Error

	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context, filters repositories.ReviewFilters) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Review{})
	if filters.Sentiment != "" {
		query = query.Where("sentiment = ?", filters.Sentiment)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// id breaks ties between rows created in the same instant
	query = query.Order("created_at DESC").Order("id DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Stats(ctx context.Context) (*entities.SentimentStats, error) {
	var rows []struct {
		Sentiment string
		Count     int64
		ScoreSum  float64
	}

	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("sentiment, COUNT(*) AS count, COALESCE(SUM(sentiment_score), 0) AS score_sum").
		Group("sentiment").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &entities.SentimentStats{}
	var sum float64
	for _, row := range rows {
		stats.Total += row.Count
		sum += row.ScoreSum
		switch row.Sentiment {
		case entities.SentimentPositive:
			stats.Positive = row.Count
		case entities.SentimentNegative:
			stats.Negative = row.Count
		case entities.SentimentNeutral:
			stats.Neutral = row.Count
		}
	}
	if stats.Total > 0 {
		stats.AverageScore = sum / float64(stats.Total)
	}
	return stats, nil
}
