package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/review-analyzer/docs"
	pkgmw "github.com/johnquangdev/review-analyzer/pkg/middleware"
	pkgvalidator "github.com/johnquangdev/review-analyzer/pkg/validator"

	"github.com/johnquangdev/review-analyzer/internal/adapter/handler"
	"github.com/johnquangdev/review-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/review-analyzer/internal/bootstrap"
	"github.com/johnquangdev/review-analyzer/internal/infrastructure/cache"
	"github.com/johnquangdev/review-analyzer/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/review-analyzer/internal/infrastructure/http/middleware"
	reviewUsecase "github.com/johnquangdev/review-analyzer/internal/usecase/review"
	"github.com/johnquangdev/review-analyzer/pkg/config"
	"github.com/johnquangdev/review-analyzer/pkg/jwt"
)

// @title           Review Analyzer API
// @version         1.0
// @description     Sentiment and key point analysis for product reviews

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(pkgmw.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins(),
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Request-ID"},
		ExposeHeaders: []string{handler.HeaderTotalCount, "X-Request-ID"},
		MaxAge:        3600,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	ctx := context.Background()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema with `reviewctl migrate up`.
	if cfg.Database.AutoMigrate {
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use `reviewctl migrate up` for schema migrations")
	}

	// Initialize cache (Redis when configured, in-memory otherwise)
	log.Println("📦 Initializing cache...")
	store := cache.NewStore(ctx, cfg.Redis, logger)
	defer store.Close()

	// Initialize analyzers
	log.Println("🤖 Initializing analyzers...")
	analyzers := bootstrap.NewAnalyzers(cfg, logger)

	// Initialize repositories and services
	log.Println("⚙️  Initializing review service...")
	reviewRepo := repository.NewReviewRepository(db)
	opts := []reviewUsecase.Option{reviewUsecase.WithLogger(logger)}
	if cfg.Cache.Enabled {
		opts = append(opts, reviewUsecase.WithCache(store, cfg.Cache.TTL))
	}
	reviewService := reviewUsecase.NewReviewService(reviewRepo, analyzers.Sentiment, analyzers.KeyPoints, opts...)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)

	// Guard destructive routes only when an admin secret is configured
	var deleteMW []echo.MiddlewareFunc
	if cfg.Admin.JWTSecret != "" {
		log.Println("🔑 Admin token required for DELETE /api/reviews/:id")
		jwtManager := jwt.NewManager(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)
		deleteMW = append(deleteMW, httpmw.EchoAdminAuth(jwtManager))
	} else {
		log.Println("⚠️  ADMIN_JWT_SECRET not set, review deletion is unauthenticated")
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	dbPinger := handler.PingFunc(func(ctx context.Context) error { return database.Ping(ctx, db) })
	router := handler.NewRouter(reviewHandler, dbPinger, store.Name(), logger, deleteMW...)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/api/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
