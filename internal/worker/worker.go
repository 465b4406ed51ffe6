package worker

import (
	"context"
)

// Worker - долгоживущий потребитель стрима
type Worker interface {
	// Start блокируется до Stop или отмены ctx. context.Canceled
	// менеджер ошибкой не считает
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении, повторный вызов безопасен
	Stop() error

	Name() string
}
