package review

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/review-analyzer/internal/domain/entities"
	"github.com/johnquangdev/review-analyzer/internal/domain/lexicon"
	"github.com/johnquangdev/review-analyzer/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/review-analyzer/internal/usecase/errors"
	"github.com/johnquangdev/review-analyzer/internal/usecase/keypoints"
	"github.com/johnquangdev/review-analyzer/internal/usecase/sentiment"
	"github.com/johnquangdev/review-analyzer/pkg/reqcontext"
)

const cacheKeyPrefix = "review:analysis:"

// Analysis is the combined output of both resolvers
type Analysis struct {
	Sentiment       sentiment.Result       `json:"sentiment"`
	KeyPoints       string                 `json:"key_points"`
	KeyPointsSource string                 `json:"key_points_source"`
	Trace           entities.AnalysisTrace `json:"trace"`
}

// ReviewService handles review business logic
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	sentiment  SentimentResolver
	keyPoints  KeyPointsResolver
	cache      Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// Option configures a ReviewService
type Option func(*ReviewService)

// WithCache enables the analysis cache. A nil cache leaves it disabled.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *ReviewService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *ReviewService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	sentimentResolver SentimentResolver,
	keyPointsResolver KeyPointsResolver,
	opts ...Option,
) *ReviewService {
	s := &ReviewService{
		reviewRepo: reviewRepo,
		sentiment:  sentimentResolver,
		keyPoints:  keyPointsResolver,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheKey returns the cache key for already trimmed text. The lexicon
// version is part of the hash so a lexicon change invalidates old entries.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(lexicon.Version + "\x00" + text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Analyze runs both resolvers on the trimmed text, consulting the cache first
func (s *ReviewService) Analyze(ctx context.Context, text string) (*Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, usecaseErrors.ErrEmptyReviewText
	}
	log := reqcontext.Logger(ctx, s.logger)

	key := CacheKey(text)
	if cached, ok := s.lookup(ctx, key); ok {
		log.Info("analysis served from cache", zap.String("key", key))
		cached.Trace.Cached = true
		return cached, nil
	}

	detail := s.sentiment.ResolveDetailed(ctx, text)
	outcome := s.keyPoints.ResolveDetailed(ctx, text)

	analysis := &Analysis{
		Sentiment:       detail.Result,
		KeyPoints:       outcome.Text,
		KeyPointsSource: outcome.Source,
		Trace: entities.AnalysisTrace{
			LexiconVersion: lexicon.Version,
			Classifier:     detail.Classifier,
			BaseLabel:      string(detail.BaseLabel),
			BaseScore:      detail.BaseScore,
			Rule:           detail.Rule,
			Overridden:     detail.Overridden,
			SentimentError: detail.Error,
			Attempts:       toProviderAttempts(outcome),
		},
	}

	s.store(ctx, key, analysis)
	return analysis, nil
}

// Submit analyzes text and stores the result
func (s *ReviewService) Submit(ctx context.Context, text string) (*entities.Review, error) {
	analysis, err := s.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	review := &entities.Review{
		ReviewText:      strings.TrimSpace(text),
		Sentiment:       string(analysis.Sentiment.Label),
		SentimentScore:  analysis.Sentiment.Score,
		KeyPoints:       analysis.KeyPoints,
		KeyPointsSource: analysis.KeyPointsSource,
		AnalysisTrace:   datatypes.NewJSONType(analysis.Trace),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	reqcontext.Logger(ctx, s.logger).Info("✅ Review analyzed",
		zap.Uint("review_id", review.ID),
		zap.String("sentiment", review.Sentiment),
		zap.Float64("score", review.SentimentScore),
		zap.String("key_points_source", review.KeyPointsSource),
	)
	return review, nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id uint) (*entities.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// ListReviews retrieves reviews newest first
func (s *ReviewService) ListReviews(ctx context.Context, filters repositories.ReviewFilters) ([]*entities.Review, int64, error) {
	if filters.Sentiment != "" && !sentiment.Label(filters.Sentiment).Valid() {
		return nil, 0, fmt.Errorf("%w: unknown sentiment %q", usecaseErrors.ErrInvalidInput, filters.Sentiment)
	}
	if filters.Limit < 0 || filters.Offset < 0 {
		return nil, 0, fmt.Errorf("%w: limit and offset must not be negative", usecaseErrors.ErrInvalidInput)
	}

	reviews, total, err := s.reviewRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, total, nil
}

// DeleteReview permanently removes a review
func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	reqcontext.Logger(ctx, s.logger).Info("🗑️ Review deleted", zap.Uint("review_id", id))
	return nil
}

// Stats counts stored reviews per sentiment
func (s *ReviewService) Stats(ctx context.Context) (*entities.SentimentStats, error) {
	stats, err := s.reviewRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// lookup reads a cached analysis. Cache failures count as misses.
func (s *ReviewService) lookup(ctx context.Context, key string) (*Analysis, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		reqcontext.Logger(ctx, s.logger).Warn("⚠️ cache read failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil || !a.Sentiment.Label.Valid() || a.KeyPoints == "" {
		reqcontext.Logger(ctx, s.logger).Warn("⚠️ discarding malformed cache entry", zap.String("key", key))
		return nil, false
	}
	return &a, true
}

// store writes an analysis to the cache. Failures are logged and ignored.
func (s *ReviewService) store(ctx context.Context, key string, a *Analysis) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(a)
	if err != nil {
		reqcontext.Logger(ctx, s.logger).Warn("⚠️ cache encode failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		reqcontext.Logger(ctx, s.logger).Warn("⚠️ cache write failed", zap.Error(err))
	}
}

func toProviderAttempts(o keypoints.Outcome) []entities.ProviderAttempt {
	if len(o.Attempts) == 0 {
		return nil
	}
	out := make([]entities.ProviderAttempt, len(o.Attempts))
	for i, a := range o.Attempts {
		out[i] = entities.ProviderAttempt{
			Provider:   a.Provider,
			Reason:     string(a.Reason),
			Error:      a.Error,
			DurationMS: a.DurationMS,
		}
	}
	return out
}
