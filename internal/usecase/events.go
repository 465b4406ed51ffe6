package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
)

// CoverageInvalidator сбрасывает закешированное покрытие
type CoverageInvalidator interface {
	Invalidate(ctx context.Context) error
}

// publishRidesSynced публикует событие о новых поездках, ошибка только логируется
func publishRidesSynced(ctx context.Context, streams repository.StreamRepository, logger *zap.Logger, source string, ids []int64) {
	if streams == nil || len(ids) == 0 {
		return
	}

	event := domain.NewRideSyncedEvent(source, ids)
	if err := streams.PublishToStream(ctx, domain.StreamRidesSynced, event); err != nil {
		logger.Warn("Failed to publish rides synced event",
			zap.String("event_id", event.EventID.String()),
			zap.Int("rides", len(ids)),
			zap.Error(err))
		return
	}

	logger.Debug("Rides synced event published",
		zap.String("event_id", event.EventID.String()),
		zap.Int("rides", len(ids)))
}

// invalidate сбрасывает кеш покрытия, возвращает успех
func invalidate(ctx context.Context, inv CoverageInvalidator, logger *zap.Logger) bool {
	if inv == nil {
		return false
	}
	if err := inv.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate coverage cache", zap.Error(err))
		return false
	}
	return true
}
