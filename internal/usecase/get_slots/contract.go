package get_slots

import (
	"context"

	"prenota/internal/domain"
)

// SlotCache интерфейс кэша слотов
type SlotCache interface {
	EnsureReady(ctx context.Context) error
	Load(ctx context.Context) error
	Snapshot() (header []string, slots []domain.Slot)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
