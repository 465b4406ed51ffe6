package repository

import (
	"context"
	"time"

	"github.com/tile-explorer/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetCoverage получает документ покрытия для размера окна
	GetCoverage(ctx context.Context, windowSize int) (*domain.Coverage, error)

	// SetCoverage сохраняет документ покрытия в кеше
	SetCoverage(ctx context.Context, coverage *domain.Coverage, ttl time.Duration) error

	// InvalidateCoverage удаляет все закешированные документы покрытия и статистику
	InvalidateCoverage(ctx context.Context) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
