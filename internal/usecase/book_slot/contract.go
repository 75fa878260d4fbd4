package book_slot

import (
	"context"

	"prenota/internal/domain"
)

// SlotCache интерфейс кэша слотов
type SlotCache interface {
	EnsureReady(ctx context.Context) error
	Reserve(id string) (*domain.Slot, error)
	Release(id string)
	Get(id string) (*domain.Slot, error)
}

// Ledger интерфейс ledger-клиента для сохранения бронирования
type Ledger interface {
	AppendBooking(ctx context.Context, rec domain.BookingRecord) error
	WriteSlotRemaining(ctx context.Context, slot *domain.Slot) error
}

// BookingMetrics счетчики бронирований; nil-safe через usecase
type BookingMetrics interface {
	BookingPersisted()
	BookingRolledBack()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
