package get_names

import "context"

// Ledger интерфейс ledger-клиента для чтения списка имен
type Ledger interface {
	FetchNames(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
