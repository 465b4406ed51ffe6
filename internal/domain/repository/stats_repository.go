package repository

import (
	"context"

	"github.com/tile-explorer/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой
type StatsRepository interface {
	// GetStatistics возвращает агрегированную статистику по всем поездкам
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
