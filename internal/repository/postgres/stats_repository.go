package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
)

const statsDataVersion = "1.0"

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics возвращает агрегированную статистику по всем поездкам
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		LastUpdated: time.Now(),
		DataVersion: statsDataVersion,
	}

	rideStats, err := r.getRideStats(ctx)
	if err != nil {
		r.logger.Error("failed to get ride stats", zap.Error(err))
		return nil, fmt.Errorf("get ride stats: %w", err)
	}
	stats.Rides = *rideStats

	return stats, nil
}

// getRideStats считает агрегаты по таблице rides
func (r *statsRepository) getRideStats(ctx context.Context) (*domain.RideStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_rides,
			COALESCE(SUM(distance), 0) AS total_distance,
			COALESCE(SUM(moving_time), 0) AS total_moving_time,
			COALESCE(SUM(elevation_gain), 0) AS total_elevation,
			COALESCE(MAX(distance), 0) AS longest_ride,
			COALESCE(MAX(max_speed), 0) AS fastest_max_speed,
			MIN(start_date) AS first_ride_at,
			MAX(start_date) AS last_ride_at
		FROM rides
	`

	var stats domain.RideStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("query ride stats: %w", err)
	}
	return &stats, nil
}
