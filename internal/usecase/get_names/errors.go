package get_names

import "errors"

var (
	// ErrLedgerUnavailable возвращается, когда список имен не удалось прочитать
	ErrLedgerUnavailable = errors.New("get_names: ledger unavailable")
)
