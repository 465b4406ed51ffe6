package handler

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/tile-explorer/internal/domain"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/validator"
	"github.com/tile-explorer/internal/usecase/dto"
)

// CoverageService - то, что нужно хендлеру покрытия от usecase слоя
type CoverageService interface {
	GetCoverage(ctx context.Context, window int) (*domain.Coverage, bool, error)
	GetGeoJSON(ctx context.Context, window int) (*geojson.FeatureCollection, error)
	TilePolygon(x, y int) (*domain.TileFeature, error)
}

// RideService - список и сохранение поездок
type RideService interface {
	ListRides(ctx context.Context, q dto.RideListQuery) ([]domain.RideSummary, error)
	CreateRide(ctx context.Context, req dto.CreateRideRequest) (*domain.RideSummary, error)
}

// SyncService - синхронизация с внешним API
type SyncService interface {
	Sync(ctx context.Context, req dto.SyncRequest) (*dto.SyncResult, error)
}

// StatsService - статистика по поездкам
type StatsService interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

// validationError превращает ошибку валидатора в ответ 400 с деталями
func validationError(err error) error {
	return apperrors.ErrInvalidRequest.WithDetails(validator.Describe(err))
}
