package cache

import (
	"context"

	"prenota/internal/domain"
)

// Ledger интерфейс ledger-клиента, необходимый кэшу для загрузки снапшота
type Ledger interface {
	FetchSlotTable(ctx context.Context) (*domain.SlotTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
