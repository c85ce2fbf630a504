package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/cache"
	"github.com/mentorhub/mentorhub-api/internal/database/postgres"
	"github.com/mentorhub/mentorhub-api/internal/engagement"
	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/db"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/profiling"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the versioned public routes
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, eventsRateLimiter *middleware.RateLimiter,
	mentorHandler *handlers.MentorHandler,
	engagementHandler *handlers.EngagementHandler,
) {
	group.GET("/mentors", generalRateLimiter.Middleware(), mentorHandler.ListCards)
	group.GET("/mentors/:id", generalRateLimiter.Middleware(), mentorHandler.GetMentor)
	group.GET("/mentors/:id/card", generalRateLimiter.Middleware(), mentorHandler.GetCard)
	group.GET("/mentors/:id/panel", generalRateLimiter.Middleware(), mentorHandler.GetPanel)
	group.POST("/engagement/events", eventsRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), engagementHandler.RecordEvents)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorHub API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.String("phone_region", cfg.Engagement.PhoneRegion),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.Init(tracing.Config{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.ExporterEndpoint,
		SampleRatio:       cfg.Observability.TraceSampleRatio,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling
	stopProfiler, err := profiling.Start(cfg.Profiling, profiling.ServiceInfo{
		Name:        cfg.Observability.ServiceName,
		Namespace:   cfg.Observability.ServiceNamespace,
		Version:     cfg.Observability.ServiceVersion,
		InstanceID:  cfg.Observability.ServiceInstanceID,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Background work such as rate limiter cleanup stops with this context
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(appCtx, db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	pgClient := postgres.NewClient(pool)
	defer pgClient.Close()

	// NOTE: Database migrations are run separately via the migrate command

	// Storage, cache and repositories
	if cfg.Cache.DisableMentorsCache {
		logger.Warn("Mentor cache is DISABLED - reading from database on every request")
	}
	mentorCache := cache.NewMentorCache(pgClient, cfg.Cache.MentorTTLSeconds, cfg.Cache.DisableMentorsCache)
	mentorRepo := repository.NewMentorRepository(pgClient, mentorCache)
	eventRepo := repository.NewEventRepository(pgClient)

	// Engagement core
	presenter, err := engagement.NewPresenterFromConfig(cfg.Engagement)
	if err != nil {
		logger.Fatal("Failed to initialize engagement presenter", zap.Error(err))
	}

	// Initialize services
	mentorService := services.NewMentorService(mentorRepo)
	engagementService := services.NewEngagementService(mentorRepo, eventRepo, presenter)

	// Initialize handlers
	mentorHandler := handlers.NewMentorHandler(mentorService, engagementService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	healthHandler := handlers.NewHealthHandler(pgClient.Ping)

	// Requester identity is optional: without a secret every visitor is anonymous
	var tokenManager *jwt.TokenManager
	if cfg.RequesterAuthEnabled() {
		tokenManager = jwt.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 24)
	} else {
		logger.Warn("Requester personalisation disabled: JWT_SECRET not configured")
	}

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.InternalAPITokenHeader, "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Session cookie carries the requester's name
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequesterMiddleware(tokenManager, cfg.Auth.CookieName))

	generalRateLimiter := middleware.NewRateLimiter(appCtx, 100, 200) // 100 req/sec, burst of 200
	eventsRateLimiter := middleware.NewRateLimiter(appCtx, 10, 20)    // 10 req/sec, burst of 20

	// Operational endpoints
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))
	if cfg.Auth.InternalAPIToken != "" {
		api.POST("/internal/cache/flush", middleware.InternalAPIAuthMiddleware(cfg.Auth.InternalAPIToken), mentorHandler.InvalidateCache)
	}

	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, eventsRateLimiter, mentorHandler, engagementHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
