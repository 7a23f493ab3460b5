package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/errors"
	"github.com/johnquangdev/review-analyzer/internal/adapter/dto/review"
	"github.com/johnquangdev/review-analyzer/internal/adapter/presenter"
	"github.com/johnquangdev/review-analyzer/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/review-analyzer/internal/usecase/errors"
	reviewUsecase "github.com/johnquangdev/review-analyzer/internal/usecase/review"
	pkgvalidator "github.com/johnquangdev/review-analyzer/pkg/validator"
)

// HeaderTotalCount carries the unpaginated row count on list responses
const HeaderTotalCount = "X-Total-Count"

// Review handles review-related HTTP requests
type Review struct {
	reviewService reviewUsecase.Service
	logger        *zap.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService reviewUsecase.Service, logger *zap.Logger) *Review {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Review{
		reviewService: reviewService,
		logger:        logger,
	}
}

// AnalyzeReview handles POST /api/analyze-review
// @Summary      Analyze a review
// @Description  Classifies sentiment, extracts key points and stores the review
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        request  body      review.AnalyzeReviewRequest  true  "Review text"
// @Success      201      {object}  review.ReviewResponse
// @Failure      400      {object}  review.ErrorResponse  "review_text missing or blank"
// @Failure      500      {object}  review.ErrorResponse  "Failed to store review"
// @Router       /analyze-review [post]
func (h *Review) AnalyzeReview(c echo.Context) error {
	var req review.AnalyzeReviewRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := c.Validate(&req); err != nil {
		for _, tag := range pkgvalidator.FailedTags(err) {
			if tag == "ReviewText:required" {
				return HandleError(h.logger, c, errors.ErrReviewTextRequired())
			}
		}
		return HandleError(h.logger, c, errors.ErrReviewTextEmpty())
	}

	result, err := h.reviewService.Submit(c.Request().Context(), *req.ReviewText)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrEmptyReviewText) {
			return HandleError(h.logger, c, errors.ErrReviewTextEmpty())
		}
		return HandleError(h.logger, c, errors.ErrReviewAnalysisFailed(err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToReviewResponse(result))
}

// ListReviews handles GET /api/reviews
// @Summary      List reviews
// @Description  Lists stored reviews, newest first
// @Tags         Reviews
// @Produce      json
// @Param        sentiment  query     string  false  "Filter by sentiment"  Enums(positive, negative, neutral)
// @Param        limit      query     int     false  "Maximum rows, 0 for all"
// @Param        offset     query     int     false  "Rows to skip"
// @Success      200        {array}   review.ReviewResponse
// @Header       200        {integer}  X-Total-Count  "Rows matching the filter"
// @Failure      400        {object}  review.ErrorResponse
// @Failure      500        {object}  review.ErrorResponse
// @Router       /reviews [get]
func (h *Review) ListReviews(c echo.Context) error {
	var req review.ListReviewsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	reviews, total, err := h.reviewService.ListReviews(c.Request().Context(), repositories.ReviewFilters{
		Sentiment: req.Sentiment,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	c.Response().Header().Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToReviewResponses(reviews))
}

// GetReview handles GET /api/reviews/:id
// @Summary      Get a review
// @Tags         Reviews
// @Produce      json
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  review.ReviewResponse
// @Failure      400  {object}  review.ErrorResponse
// @Failure      404  {object}  review.ErrorResponse
// @Router       /reviews/{id} [get]
func (h *Review) GetReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.reviewService.GetReview(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrReviewNotFound) {
			return HandleError(h.logger, c, errors.ErrReviewNotFound(id))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("get review", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToReviewResponse(result))
}

// DeleteReview handles DELETE /api/reviews/:id
// @Summary      Delete a review
// @Description  Permanently removes a review. Requires an admin token when ADMIN_JWT_SECRET is set.
// @Tags         Reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  review.DeleteReviewResponse
// @Failure      401  {object}  review.ErrorResponse
// @Failure      404  {object}  review.ErrorResponse
// @Router       /reviews/{id} [delete]
func (h *Review) DeleteReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.reviewService.DeleteReview(c.Request().Context(), id); err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrReviewNotFound) {
			return HandleError(h.logger, c, errors.ErrReviewNotFound(id))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("delete review", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, review.DeleteReviewResponse{
		Message: "Review berhasil dihapus",
		ID:      id,
	})
}

// Stats handles GET /api/reviews/stats
// @Summary      Sentiment statistics
// @Tags         Reviews
// @Produce      json
// @Success      200  {object}  review.StatsResponse
// @Failure      500  {object}  review.ErrorResponse
// @Router       /reviews/stats [get]
func (h *Review) Stats(c echo.Context) error {
	stats, err := h.reviewService.Stats(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("review stats", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToStatsResponse(stats))
}
