package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/internal/adapter/dto/review"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Router holds all handlers
type Router struct {
	reviewHandler *Review
	database      Pinger
	cacheName     string
	deleteMW      []echo.MiddlewareFunc
	logger        *zap.Logger
}

// NewRouter creates a new router with all handlers. deleteMW guards the
// destructive review routes and may be empty.
func NewRouter(reviewHandler *Review, database Pinger, cacheName string, logger *zap.Logger, deleteMW ...echo.MiddlewareFunc) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		reviewHandler: reviewHandler,
		database:      database,
		cacheName:     cacheName,
		deleteMW:      deleteMW,
		logger:        logger,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", rt.healthCheck)

	rt.setupReviewRoutes(api)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// setupReviewRoutes configures review routes
func (rt *Router) setupReviewRoutes(g *echo.Group) {
	if rt.reviewHandler == nil {
		g.POST("/analyze-review", rt.notImplemented)
		g.GET("/reviews", rt.notImplemented)
		return
	}

	g.POST("/analyze-review", rt.reviewHandler.AnalyzeReview)
	g.GET("/reviews", rt.reviewHandler.ListReviews)
	g.GET("/reviews/stats", rt.reviewHandler.Stats)
	g.GET("/reviews/:id", rt.reviewHandler.GetReview)
	g.DELETE("/reviews/:id", rt.reviewHandler.DeleteReview, rt.deleteMW...)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, review.ErrorResponse{
		Error: "This endpoint is not yet implemented",
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  review.HealthResponse
// @Failure      503  {object}  review.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := review.HealthResponse{Status: "healthy", Cache: rt.cacheName}
	if rt.database == nil {
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := rt.database.Ping(ctx); err != nil {
		rt.logger.Warn("⚠️ health check: database unreachable", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	resp.Database = "ok"
	return c.JSON(http.StatusOK, resp)
}
