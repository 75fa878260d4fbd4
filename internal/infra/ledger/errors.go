package ledger

import "errors"

var (
	// ErrUnavailable возвращается, когда чтение из таблицы не удалось
	ErrUnavailable = errors.New("ledger: spreadsheet unavailable")

	// ErrWriteFailed возвращается, когда запись в таблицу не удалась
	ErrWriteFailed = errors.New("ledger: spreadsheet write failed")

	// ErrEmptyTable возвращается, когда таблица слотов не содержит данных
	ErrEmptyTable = errors.New("ledger: slot table is empty")
)
