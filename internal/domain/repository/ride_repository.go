package repository

import (
	"context"

	"github.com/tile-explorer/internal/domain"
)

// RideRepository определяет методы для работы с поездками
type RideRepository interface {
	// List возвращает поездки, отсортированные по дате начала
	List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error)

	// GetByID возвращает поездку по ID
	GetByID(ctx context.Context, id int64) (*domain.Ride, error)

	// Save вставляет или обновляет поездку
	Save(ctx context.Context, ride *domain.Ride) error

	// SaveBatch сохраняет несколько поездок в одной транзакции
	SaveBatch(ctx context.Context, rides []*domain.Ride) error

	// ExistingIDs возвращает подмножество ids, уже сохранённых в базе
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)

	// Count возвращает количество поездок
	Count(ctx context.Context) (int, error)
}
