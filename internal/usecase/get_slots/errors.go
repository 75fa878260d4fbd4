package get_slots

import "errors"

var (
	// ErrCacheLoadFailed возвращается, когда кэш не удалось загрузить из ledger
	ErrCacheLoadFailed = errors.New("get_slots: failed to load slot cache")
)
