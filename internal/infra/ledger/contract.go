package ledger

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector records ledger round trips; nil-safe via the client
type MetricsCollector interface {
	ObserveLedgerCall(operation string, err error, duration time.Duration)
}
