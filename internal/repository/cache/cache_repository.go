package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	"github.com/tile-explorer/internal/pkg/metrics"
)

const (
	coverageKeyPrefix = "coverage:"
	statsKey          = "stats:current"
	scanBatch         = 100
)

// CoverageKey - ключ документа покрытия для размера окна
func CoverageKey(windowSize int) string {
	return coverageKeyPrefix + strconv.Itoa(windowSize)
}

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

// Set сохраняет значение, ttl == 0 означает хранение без истечения
func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// GetCoverage получает документ покрытия из кеша
func (r *cacheRepository) GetCoverage(ctx context.Context, windowSize int) (*domain.Coverage, error) {
	var coverage domain.Coverage
	found, err := r.getJSON(ctx, CoverageKey(windowSize), "coverage", &coverage)
	if err != nil || !found {
		return nil, err
	}
	return &coverage, nil
}

// SetCoverage сохраняет документ покрытия в кеше
func (r *cacheRepository) SetCoverage(ctx context.Context, coverage *domain.Coverage, ttl time.Duration) error {
	return r.setJSON(ctx, CoverageKey(coverage.WindowSize), coverage, ttl)
}

// InvalidateCoverage удаляет документы покрытия для всех окон и статистику
func (r *cacheRepository) InvalidateCoverage(ctx context.Context) error {
	keys := []string{statsKey}
	iter := r.client.Scan(ctx, 0, coverageKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan coverage keys", zap.Error(err))
		return fmt.Errorf("cache scan error: %w", err)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to invalidate coverage", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Info("Coverage cache invalidated", zap.Int("keys", len(keys)))
	return nil
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	var stats domain.Statistics
	found, err := r.getJSON(ctx, statsKey, "stats", &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	return r.setJSON(ctx, statsKey, stats, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key, operation string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		metrics.CacheMisses.WithLabelValues(operation).Inc()
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", operation, err)
	}

	metrics.CacheHits.WithLabelValues(operation).Inc()
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return r.Set(ctx, key, data, ttl)
}
