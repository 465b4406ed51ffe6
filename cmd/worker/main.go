package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/config"
	"github.com/tile-explorer/internal/pkg/logger"
	"github.com/tile-explorer/internal/repository/cache"
	"github.com/tile-explorer/internal/repository/postgres"
	redisRepo "github.com/tile-explorer/internal/repository/redis"
	"github.com/tile-explorer/internal/usecase"
	"github.com/tile-explorer/internal/worker"
	"github.com/tile-explorer/internal/worker/coverage"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	base, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer base.Sync()
	log := logger.Named(base, "worker")

	log.Info("Starting coverage warm worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Ints("warm_windows", cfg.Worker.WarmWindows))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	rideRepo := postgres.NewRideRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)

	// 6. Initialize use cases
	coverageUC := usecase.NewCoverageUseCase(rideRepo, cacheRepo, log, usecase.CoverageOptions{
		DefaultWindow: cfg.Coverage.WindowSize,
		Workers:       cfg.Coverage.ExtractWorkers,
		CacheTTL:      cfg.Cache.CoverageCacheTTL,
	})
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	// 7. Initialize workers
	warmWorker := coverage.NewWarmWorker(
		streamRepo,
		coverageUC,
		statsUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.WarmWindows,
		cfg.Worker.MaxRetries,
		log,
	)

	manager := worker.NewWorkerManager(log)
	manager.Register(warmWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// прогрев при старте, чтобы первый запрос не считал покрытие
	if err := coverageUC.Warm(ctx, cfg.Worker.WarmWindows); err != nil {
		log.Warn("Initial warm-up failed", zap.Error(err))
	}

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	if err := manager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
