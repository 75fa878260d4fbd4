package cache

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с таким ID отсутствует в снапшоте
	ErrSlotNotFound = errors.New("cache: slot not found")

	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	ErrSlotFull = errors.New("cache: slot is full")

	// ErrLoadFailed возвращается, когда загрузка снапшота из ledger не удалась
	ErrLoadFailed = errors.New("cache: failed to load slot table")
)
