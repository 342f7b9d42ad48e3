package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillsingh-backend/config"
	v1 "skillsingh-backend/internal/delivery/http/v1"
	"skillsingh-backend/internal/repository/postgres"
	"skillsingh-backend/internal/usecase"
	"skillsingh-backend/pkg/auth"
	"skillsingh-backend/pkg/database"
	"skillsingh-backend/pkg/logger"
	"skillsingh-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           SkillSingh API
// @version         1.0
// @description     Recruiting backend: job postings, applications, profiles.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting skillsingh backend", "port", cfg.Port)

	ctx := context.Background()
	dbPool, err := database.NewPostgresPool(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Redis is optional; the rate limiter falls back to in-memory counters
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting is per-instance", "error", err)
	}
	defer redis.Close()

	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, applicationRepo)

	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		DashboardUC:   dashboardUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
