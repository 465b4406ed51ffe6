package main

// @title Tile Explorer API
// @version 1.0.0
// @description Покрытие тайлами zoom 14 по сохранённым велопоездкам.
// @description
// @description Основные возможности:
// @description - Посещённые тайлы, максимальный квадрат и кластер в JSON и GeoJSON
// @description - Хранение поездок и синхронизация со Strava
// @description - Статистика по поездкам

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/config"
	httpDelivery "github.com/tile-explorer/internal/delivery/http"
	"github.com/tile-explorer/internal/delivery/http/handler"
	"github.com/tile-explorer/internal/infrastructure/strava"
	"github.com/tile-explorer/internal/pkg/logger"
	"github.com/tile-explorer/internal/repository/cache"
	"github.com/tile-explorer/internal/repository/postgres"
	redisRepo "github.com/tile-explorer/internal/repository/redis"
	"github.com/tile-explorer/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	base, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer base.Sync()
	log := logger.Named(base, "api")

	log.Info("Starting Tile Explorer API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int("window_size", cfg.Coverage.WindowSize),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	if dir := cfg.Database.MigrationsDir; dir != "" {
		if err := db.Migrate(ctx, dir); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// 6. Initialize Repositories
	rideRepo := postgres.NewRideRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)
	activityRepo := strava.NewStravaClient(&cfg.Strava, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	coverageUC := usecase.NewCoverageUseCase(rideRepo, cacheRepo, log, usecase.CoverageOptions{
		DefaultWindow: cfg.Coverage.WindowSize,
		Workers:       cfg.Coverage.ExtractWorkers,
		CacheTTL:      cfg.Cache.CoverageCacheTTL,
	})
	rideUC := usecase.NewRideUseCase(rideRepo, streamRepo, coverageUC, log)
	syncUC := usecase.NewSyncUseCase(activityRepo, rideRepo, streamRepo, coverageUC, log, cfg.Strava.PerPage)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Coverage: handler.NewCoverageHandler(coverageUC, log),
		Ride:     handler.NewRideHandler(rideUC, log),
		Sync:     handler.NewSyncHandler(syncUC, log),
		Stats:    handler.NewStatsHandler(statsUC, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		}, log),
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
