package coverage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	"github.com/tile-explorer/internal/pkg/metrics"
	"github.com/tile-explorer/internal/worker"
)

const (
	retryDelay = 500 * time.Millisecond

	resultOK      = "ok"
	resultInvalid = "invalid"
	resultFailed  = "failed"
)

// Warmer пересчитывает покрытие и складывает его в кеш
type Warmer interface {
	Invalidate(ctx context.Context) error
	Warm(ctx context.Context, windows []int) error
}

// StatsRefresher обновляет закешированную статистику
type StatsRefresher interface {
	RefreshStatistics(ctx context.Context) (*domain.Statistics, error)
}

// WarmWorker слушает stream:rides:synced и прогревает кеш покрытия
// после каждого сохранения новых поездок
type WarmWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	warmer     Warmer
	stats      StatsRefresher
	windows    []int
	maxRetries int
}

// NewWarmWorker создает новый WarmWorker. stats может быть nil
func NewWarmWorker(
	streamRepo repository.StreamRepository,
	warmer Warmer,
	stats StatsRefresher,
	consumerGroup string,
	windows []int,
	maxRetries int,
	logger *zap.Logger,
) *WarmWorker {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &WarmWorker{
		BaseWorker: worker.NewBaseWorker("coverage-warm", consumerGroup, logger),
		streamRepo: streamRepo,
		warmer:     warmer,
		stats:      stats,
		windows:    windows,
		maxRetries: maxRetries,
	}
}

// Start запускает воркер и блокируется до Stop или отмены ctx
func (w *WarmWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting coverage warm worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Ints("windows", w.windows))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRidesSynced, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	runCtx, cancel := w.RunContext(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(runCtx, domain.StreamRidesSynced, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-runCtx.Done():
			logger.Info("Worker stopped")
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			w.handle(runCtx, msg)
		}
	}
}

// handle обрабатывает одно сообщение и подтверждает его
func (w *WarmWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseEvent(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		w.finish(ctx, msg.ID, resultInvalid)
		return
	}

	logger = logger.With(
		zap.String("event_id", event.EventID.String()),
		zap.String("source", event.Source),
		zap.Int("rides", len(event.RideIDs)))

	if event.IsEmpty() {
		logger.Debug("Empty event, nothing to warm")
		w.finish(ctx, msg.ID, resultOK)
		return
	}

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		err = w.process(ctx)
		if err == nil {
			break
		}
		logger.Warn("Coverage warm-up failed",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(err))
		if attempt < w.maxRetries && !w.Sleep(ctx, retryDelay*time.Duration(attempt)) {
			// остановка: сообщение останется в pending
			return
		}
	}

	if err != nil {
		// следующее событие снова прогреет кеш, держать сообщение нет смысла
		logger.Error("Giving up on event", zap.Error(err))
		w.finish(ctx, msg.ID, resultFailed)
		return
	}

	logger.Info("Coverage cache warmed")
	w.finish(ctx, msg.ID, resultOK)
}

func (w *WarmWorker) process(ctx context.Context) error {
	if err := w.warmer.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate: %w", err)
	}
	if err := w.warmer.Warm(ctx, w.windows); err != nil {
		return fmt.Errorf("warm: %w", err)
	}
	if w.stats != nil {
		if _, err := w.stats.RefreshStatistics(ctx); err != nil {
			return fmt.Errorf("refresh stats: %w", err)
		}
	}
	return nil
}

func (w *WarmWorker) finish(ctx context.Context, id, result string) {
	metrics.StreamEventsProcessed.WithLabelValues(domain.StreamRidesSynced, result).Inc()
	if err := w.streamRepo.AckMessage(ctx, domain.StreamRidesSynced, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

func parseEvent(msg domain.StreamMessage) (*domain.RideSyncedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty payload")
	}

	var event domain.RideSyncedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
