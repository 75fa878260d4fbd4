package book_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrSlotNotFound возвращается, когда слот не найден в снапшоте кэша
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	ErrSlotFull = errors.New("book_slot: slot is full")

	// ErrCacheLoadFailed возвращается, когда кэш не удалось загрузить из ledger
	ErrCacheLoadFailed = errors.New("book_slot: failed to load slot cache")

	// ErrPersistFailed возвращается, когда бронирование не удалось сохранить
	// в ledger; локальная резервация к этому моменту уже откатена
	ErrPersistFailed = errors.New("book_slot: failed to persist booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
