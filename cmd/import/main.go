package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/config"
	"github.com/tile-explorer/internal/infrastructure/ridecsv"
	"github.com/tile-explorer/internal/pkg/logger"
	"github.com/tile-explorer/internal/repository/cache"
	"github.com/tile-explorer/internal/repository/postgres"
	redisRepo "github.com/tile-explorer/internal/repository/redis"
	"github.com/tile-explorer/internal/usecase"
)

func main() {
	file := flag.String("file", "rides.csv", "CSV export with id,title,dist,date,max,avg,net,gross,elev,polyline columns")
	timeout := flag.Duration("timeout", 5*time.Minute, "import timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	base, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer base.Sync()
	log := logger.Named(base, "import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("Failed to open file", zap.String("file", *file), zap.Error(err))
	}
	defer f.Close()

	rides, rowErrs, err := ridecsv.Read(f)
	if err != nil {
		log.Fatal("Failed to read CSV", zap.String("file", *file), zap.Error(err))
	}
	for _, re := range rowErrs {
		log.Warn("Skipping row", zap.Int("line", re.Line), zap.Error(re.Err))
	}
	log.Info("CSV parsed", zap.Int("rides", len(rides)), zap.Int("bad_rows", len(rowErrs)))

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	rideRepo := postgres.NewRideRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)

	coverageUC := usecase.NewCoverageUseCase(rideRepo, cacheRepo, log, usecase.CoverageOptions{
		DefaultWindow: cfg.Coverage.WindowSize,
		Workers:       cfg.Coverage.ExtractWorkers,
		CacheTTL:      cfg.Cache.CoverageCacheTTL,
	})
	rideUC := usecase.NewRideUseCase(rideRepo, streamRepo, coverageUC, log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := rideUC.ImportRides(ctx, rides)
	if err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	log.Info("Import complete",
		zap.Int("read", result.Read),
		zap.Int("stored", result.Stored),
		zap.Int64s("rejected", result.Rejected))
}
