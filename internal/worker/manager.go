package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoWorkers - Start вызван без зарегистрированных воркеров
var ErrNoWorkers = errors.New("no workers registered")

// WorkerManager управляет несколькими воркерами
type WorkerManager struct {
	workers []Worker
	logger  *zap.Logger
	group   *errgroup.Group
	done    chan struct{}
	mu      sync.Mutex
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers: make([]Worker, 0),
		logger:  logger,
	}
}

// Register регистрирует воркер
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает все зарегистрированные воркеры и сразу возвращается.
// Ошибка одного воркера не останавливает остальные, она доступна через Wait
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.workers) == 0 {
		return ErrNoWorkers
	}
	if m.group != nil {
		return fmt.Errorf("workers already started")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(m.workers)))

	m.group = new(errgroup.Group)
	m.done = make(chan struct{})
	for _, w := range m.workers {
		m.group.Go(func() error {
			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
				return fmt.Errorf("worker %s: %w", w.Name(), err)
			}
			return nil
		})
	}

	group, done := m.group, m.done
	go func() {
		_ = group.Wait()
		close(done)
	}()

	return nil
}

// Wait блокируется до завершения всех воркеров
func (m *WorkerManager) Wait() error {
	m.mu.Lock()
	group := m.group
	m.mu.Unlock()

	if group == nil {
		return nil
	}
	return group.Wait()
}

// Stop сигнализирует воркерам и ждёт их завершения до дедлайна ctx
func (m *WorkerManager) Stop(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	done := m.done
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	if done == nil {
		return nil
	}

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-ctx.Done():
		m.logger.Warn("Workers shutdown timed out, some events may not have been processed")
		return fmt.Errorf("workers shutdown: %w", ctx.Err())
	}
}
