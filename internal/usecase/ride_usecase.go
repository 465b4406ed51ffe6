package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/polyline"
	"github.com/tile-explorer/internal/pkg/utils"
	"github.com/tile-explorer/internal/usecase/dto"
)

// Event sources
const (
	SourceAPI    = "api"
	SourceImport = "import"
	SourceStrava = "strava"
)

// RideUseCase - список и сохранение поездок
type RideUseCase struct {
	rideRepo   repository.RideRepository
	streamRepo repository.StreamRepository
	coverage   CoverageInvalidator
	logger     *zap.Logger
}

// NewRideUseCase создает новый экземпляр RideUseCase
func NewRideUseCase(
	rideRepo repository.RideRepository,
	streamRepo repository.StreamRepository,
	coverage CoverageInvalidator,
	logger *zap.Logger,
) *RideUseCase {
	return &RideUseCase{
		rideRepo:   rideRepo,
		streamRepo: streamRepo,
		coverage:   coverage,
		logger:     logger,
	}
}

// ListRides возвращает поездки для отображения на карте
func (uc *RideUseCase) ListRides(ctx context.Context, q dto.RideListQuery) ([]domain.RideSummary, error) {
	filter := domain.RideFilter{Limit: q.Limit}
	if q.Since != "" {
		since, err := time.Parse(time.RFC3339, q.Since)
		if err != nil {
			return nil, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"since": q.Since})
		}
		filter.Since = &since
	}
	if q.Until != "" {
		until, err := time.Parse(time.RFC3339, q.Until)
		if err != nil {
			return nil, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"until": q.Until})
		}
		filter.Until = &until
	}

	rides, err := uc.rideRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}

	summaries := make([]domain.RideSummary, len(rides))
	for i, r := range rides {
		summaries[i] = r.Summary()
	}
	return summaries, nil
}

// CreateRide сохраняет одну поездку, сбрасывает кеш покрытия и публикует событие
func (uc *RideUseCase) CreateRide(ctx context.Context, req dto.CreateRideRequest) (*domain.RideSummary, error) {
	ride := &domain.Ride{
		ID:            req.ID,
		Title:         req.Title,
		Distance:      req.Distance,
		StartDate:     req.StartDate,
		MaxSpeed:      req.MaxSpeed,
		AverageSpeed:  req.AverageSpeed,
		MovingTime:    req.MovingTime,
		ElapsedTime:   req.ElapsedTime,
		ElevationGain: req.ElevationGain,
		Polyline:      req.Polyline,
	}
	if err := PrepareRide(ride); err != nil {
		return nil, err
	}

	if err := uc.rideRepo.Save(ctx, ride); err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}

	uc.logger.Info("Ride stored", zap.Int64("ride_id", ride.ID), zap.String("title", ride.Title))

	invalidate(ctx, uc.coverage, uc.logger)
	publishRidesSynced(ctx, uc.streamRepo, uc.logger, SourceAPI, []int64{ride.ID})

	summary := ride.Summary()
	return &summary, nil
}

// ImportRides сохраняет пачку поездок; поездки с битым маршрутом отклоняются
func (uc *RideUseCase) ImportRides(ctx context.Context, rides []*domain.Ride) (*dto.ImportResult, error) {
	result := &dto.ImportResult{Read: len(rides)}

	valid := make([]*domain.Ride, 0, len(rides))
	for _, ride := range rides {
		if err := PrepareRide(ride); err != nil {
			uc.logger.Warn("Rejecting ride", zap.Int64("ride_id", ride.ID), zap.Error(err))
			result.Rejected = append(result.Rejected, ride.ID)
			continue
		}
		valid = append(valid, ride)
	}

	if err := uc.rideRepo.SaveBatch(ctx, valid); err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}
	result.Stored = len(valid)

	if len(valid) > 0 {
		ids := make([]int64, len(valid))
		for i, r := range valid {
			ids[i] = r.ID
		}
		invalidate(ctx, uc.coverage, uc.logger)
		publishRidesSynced(ctx, uc.streamRepo, uc.logger, SourceImport, ids)
	}

	uc.logger.Info("Rides imported",
		zap.Int("read", result.Read),
		zap.Int("stored", result.Stored),
		zap.Int("rejected", len(result.Rejected)))
	return result, nil
}

// PrepareRide проверяет маршрут и дополняет дистанцию, если она не задана
func PrepareRide(ride *domain.Ride) error {
	route, err := polyline.Decode(ride.Polyline)
	if err != nil {
		return apperrors.ErrInvalidPolyline.WithDetails(map[string]interface{}{"ride_id": ride.ID}).Wrap(err)
	}
	if ride.Distance == 0 {
		ride.Distance = utils.RouteLength(route)
	}
	return nil
}
