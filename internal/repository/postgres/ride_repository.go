package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
)

const rideColumns = `id, title, distance, start_date, max_speed, average_speed,
	moving_time, elapsed_time, elevation_gain, polyline, created_at`

const upsertRideQuery = `
	INSERT INTO rides (id, title, distance, start_date, max_speed, average_speed,
		moving_time, elapsed_time, elevation_gain, polyline)
	VALUES (:id, :title, :distance, :start_date, :max_speed, :average_speed,
		:moving_time, :elapsed_time, :elevation_gain, :polyline)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		distance = EXCLUDED.distance,
		start_date = EXCLUDED.start_date,
		max_speed = EXCLUDED.max_speed,
		average_speed = EXCLUDED.average_speed,
		moving_time = EXCLUDED.moving_time,
		elapsed_time = EXCLUDED.elapsed_time,
		elevation_gain = EXCLUDED.elevation_gain,
		polyline = EXCLUDED.polyline`

type rideRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRideRepository создает новый экземпляр ride repository
func NewRideRepository(db *DB) repository.RideRepository {
	return &rideRepository{
		db:     db,
		logger: db.logger,
	}
}

// List возвращает поездки в порядке даты начала
func (r *rideRepository) List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Since != nil {
		args = append(args, *filter.Since)
		conds = append(conds, fmt.Sprintf("start_date >= $%d", len(args)))
	}
	if filter.Until != nil {
		args = append(args, *filter.Until)
		conds = append(conds, fmt.Sprintf("start_date < $%d", len(args)))
	}

	query := "SELECT " + rideColumns + " FROM rides"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_date, id"
	if limit := normalizeLimit(filter.Limit); limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var rides []*domain.Ride
	if err := r.db.SelectContext(ctx, &rides, query, args...); err != nil {
		r.logger.Error("failed to list rides", zap.Error(err))
		return nil, fmt.Errorf("list rides: %w", err)
	}

	r.logger.Debug("rides listed", zap.Int("count", len(rides)))
	return rides, nil
}

// GetByID возвращает поездку по ID
func (r *rideRepository) GetByID(ctx context.Context, id int64) (*domain.Ride, error) {
	var ride domain.Ride
	err := r.db.GetContext(ctx, &ride, "SELECT "+rideColumns+" FROM rides WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ride %d: %w", id, err)
	}
	return &ride, nil
}

// Save вставляет или обновляет поездку
func (r *rideRepository) Save(ctx context.Context, ride *domain.Ride) error {
	if _, err := r.db.NamedExecContext(ctx, upsertRideQuery, ride); err != nil {
		r.logger.Error("failed to save ride", zap.Int64("ride_id", ride.ID), zap.Error(err))
		return fmt.Errorf("save ride %d: %w", ride.ID, err)
	}
	return nil
}

// SaveBatch сохраняет поездки в одной транзакции
func (r *rideRepository) SaveBatch(ctx context.Context, rides []*domain.Ride) error {
	if len(rides) == 0 {
		return nil
	}

	err := r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, upsertRideQuery)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, ride := range rides {
			if _, err := stmt.ExecContext(ctx, ride); err != nil {
				return fmt.Errorf("save ride %d: %w", ride.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("rides saved", zap.Int("count", len(rides)))
	return nil
}

// ExistingIDs возвращает ids, которые уже есть в базе
func (r *rideRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(ids))
	for _, chunk := range chunkIDs(ids, BatchSize) {
		query, args, err := sqlx.In("SELECT id FROM rides WHERE id IN (?)", chunk)
		if err != nil {
			return nil, fmt.Errorf("build existing ids query: %w", err)
		}

		var found []int64
		if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("query existing ids: %w", err)
		}
		for _, id := range found {
			existing[id] = true
		}
	}
	return existing, nil
}

// Count возвращает количество поездок
func (r *rideRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM rides"); err != nil {
		return 0, fmt.Errorf("count rides: %w", err)
	}
	return count, nil
}
