package repository

import (
	"context"

	"github.com/tile-explorer/internal/domain"
)

// ActivityRepository определяет методы для работы с внешним API активностей
type ActivityRepository interface {
	// ListActivities возвращает страницу активностей атлета (нумерация с 1)
	ListActivities(ctx context.Context, token string, page, perPage int) ([]domain.Activity, error)

	// GetActivity возвращает детальную информацию об активности
	GetActivity(ctx context.Context, token string, id int64) (*domain.ActivityDetail, error)

	// ExchangeCode обменивает OAuth код авторизации на access token
	ExchangeCode(ctx context.Context, code string) (string, error)
}
