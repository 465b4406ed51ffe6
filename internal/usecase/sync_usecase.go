package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/metrics"
	"github.com/tile-explorer/internal/usecase/dto"
)

// maxSyncPages ограничивает постраничный обход
const maxSyncPages = 1000

// SyncUseCase подтягивает новые поездки из внешнего API
type SyncUseCase struct {
	activities repository.ActivityRepository
	rideRepo   repository.RideRepository
	streamRepo repository.StreamRepository
	coverage   CoverageInvalidator
	logger     *zap.Logger
	perPage    int
}

// NewSyncUseCase создает новый экземпляр SyncUseCase
func NewSyncUseCase(
	activities repository.ActivityRepository,
	rideRepo repository.RideRepository,
	streamRepo repository.StreamRepository,
	coverage CoverageInvalidator,
	logger *zap.Logger,
	perPage int,
) *SyncUseCase {
	return &SyncUseCase{
		activities: activities,
		rideRepo:   rideRepo,
		streamRepo: streamRepo,
		coverage:   coverage,
		logger:     logger,
		perPage:    perPage,
	}
}

// Sync обходит страницы активностей до первой пустой и сохраняет новые
// поездки типа Ride постранично. При ошибке на середине обхода уже
// сохранённые поездки остаются в базе, кеш сбрасывается, и вместе с ошибкой
// возвращается частичный результат
func (uc *SyncUseCase) Sync(ctx context.Context, req dto.SyncRequest) (*dto.SyncResult, error) {
	token := req.AccessToken
	if token == "" {
		t, err := uc.activities.ExchangeCode(ctx, req.Code)
		if err != nil {
			return nil, apperrors.ErrUpstreamError.Wrap(err)
		}
		token = t
	}

	result := &dto.SyncResult{Stored: []int64{}}
	for page := 1; page <= maxSyncPages; page++ {
		done, err := uc.syncPage(ctx, token, page, result)
		if err != nil {
			uc.logger.Warn("Sync interrupted",
				zap.Int("page", page),
				zap.Int("stored", len(result.Stored)),
				zap.Error(err))
			uc.finish(context.WithoutCancel(ctx), result)
			return result, err
		}
		if done {
			break
		}
	}

	uc.finish(ctx, result)
	return result, nil
}

// syncPage обрабатывает одну страницу, done == true на первой пустой
func (uc *SyncUseCase) syncPage(ctx context.Context, token string, page int, result *dto.SyncResult) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	list, err := uc.activities.ListActivities(ctx, token, page, uc.perPage)
	if err != nil {
		return false, apperrors.ErrUpstreamError.Wrap(err)
	}
	if len(list) == 0 {
		return true, nil
	}
	result.Pages++
	result.Fetched += len(list)

	candidates := make([]int64, 0, len(list))
	for _, a := range list {
		if a.Type != domain.ActivityTypeRide {
			result.NonRide++
			continue
		}
		candidates = append(candidates, a.ID)
	}

	known, err := uc.rideRepo.ExistingIDs(ctx, candidates)
	if err != nil {
		return false, apperrors.ErrDatabaseError.Wrap(err)
	}

	var rides []*domain.Ride
	var fetchErr error
	for _, id := range candidates {
		if known[id] {
			result.Known++
			continue
		}
		detail, err := uc.activities.GetActivity(ctx, token, id)
		if err != nil {
			fetchErr = apperrors.ErrUpstreamError.Wrap(err)
			break
		}
		ride := detail.ToRide()
		if err := PrepareRide(ride); err != nil {
			uc.logger.Warn("Skipping activity with invalid route", zap.Int64("activity_id", id), zap.Error(err))
			continue
		}
		rides = append(rides, ride)
	}

	// то, что успели скачать до ошибки, тоже сохраняем
	if err := uc.store(ctx, rides, result); err != nil {
		return false, err
	}
	return false, fetchErr
}

func (uc *SyncUseCase) store(ctx context.Context, rides []*domain.Ride, result *dto.SyncResult) error {
	if len(rides) == 0 {
		return nil
	}
	if err := uc.rideRepo.SaveBatch(ctx, rides); err != nil {
		return apperrors.ErrDatabaseError.Wrap(err)
	}
	for _, r := range rides {
		result.Stored = append(result.Stored, r.ID)
	}
	metrics.RidesSynced.WithLabelValues(SourceStrava).Add(float64(len(rides)))
	return nil
}

// finish сбрасывает кеш и публикует событие, если что-то сохранено
func (uc *SyncUseCase) finish(ctx context.Context, result *dto.SyncResult) {
	if len(result.Stored) > 0 {
		result.Invalidate = invalidate(ctx, uc.coverage, uc.logger)
		publishRidesSynced(ctx, uc.streamRepo, uc.logger, SourceStrava, result.Stored)
	}

	uc.logger.Info("Sync finished",
		zap.Int("pages", result.Pages),
		zap.Int("fetched", result.Fetched),
		zap.Int("known", result.Known),
		zap.Int("stored", len(result.Stored)))
}
