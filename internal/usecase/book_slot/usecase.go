package book_slot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"prenota/internal/domain"
	"prenota/internal/infra/cache"
)

// UseCase use case бронирования слота.
//
// Протокол: оптимистичная локальная резервация с компенсацией. Место
// сначала захватывается в кэше (дешево, атомарно, сериализует конкурентных
// бронирующих), затем бронирование сохраняется в ledger; при неудачной
// записи резервация откатывается. У ledger нет примитива
// "reserve-if-capacity-remains", поэтому точка линеаризации - кэш.
type UseCase struct {
	cache   SlotCache
	ledger  Ledger
	metrics BookingMetrics
	logger  Logger

	// writeMu сериализует write-back остатков: порядок записей в ledger
	// должен совпадать с порядком чтения актуального остатка из кэша
	writeMu sync.Mutex
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если сбор метрик выключен.
func NewUseCase(slotCache SlotCache, ledger Ledger, metrics BookingMetrics, logger Logger) *UseCase {
	return &UseCase{
		cache:   slotCache,
		ledger:  ledger,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%s, name=%s", req.SlotID, req.Name)

	// 1. Валидация входных данных - до любых обращений к кэшу и ledger
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Ленивый прогрев кэша; без снапшота емкостей бронирование невозможно
	if err := uc.cache.EnsureReady(ctx); err != nil {
		uc.logger.Error("BookSlot: cache warm-up failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCacheLoadFailed, err)
	}

	// 3. Атомарная резервация места в кэше
	slot, err := uc.cache.Reserve(req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, cache.ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, cache.ErrSlotFull):
			uc.logger.Warn("BookSlot: slot=%s is full", req.SlotID)
			return nil, ErrSlotFull
		default:
			uc.logger.Error("BookSlot: reserve failed for slot=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: reserve: %v", ErrInternal, err)
		}
	}

	// 4. Сохраняем бронирование в ledger: строка журнала + новый остаток
	rec := domain.BookingRecord{Name: req.Name, Day: slot.Day, Time: slot.Time}
	if err := uc.persist(ctx, rec, slot); err != nil {
		// 5. Компенсирующий откат: кэш не должен показывать резервацию,
		// которой нет в ledger
		uc.cache.Release(req.SlotID)
		if uc.metrics != nil {
			uc.metrics.BookingRolledBack()
		}
		uc.logger.Error("BookSlot: persist failed for slot=%s, reservation rolled back: %v",
			req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingPersisted()
	}
	uc.logger.Info("BookSlot: booked slot=%s for %s (%s %s), remaining=%d",
		slot.ID, req.Name, slot.Day, slot.Time, slot.Remaining())

	return &Response{
		SlotID:    slot.ID,
		Name:      req.Name,
		Day:       slot.Day,
		Time:      slot.Time,
		Remaining: slot.Remaining(),
	}, nil
}

// persist durably records the booking: the audit-log append first, then the
// remaining-count write-back to the slot cell
func (uc *UseCase) persist(ctx context.Context, rec domain.BookingRecord, slot *domain.Slot) error {
	if err := uc.ledger.AppendBooking(ctx, rec); err != nil {
		return fmt.Errorf("append booking: %w", err)
	}

	// Write-backs are serialized and carry the remaining count read from the
	// cache at write time, not the reservation-time copy: the cell is
	// authoritative on the next load, so a delayed write-back must not land
	// a stale, higher value over a later reservation's.
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	current, err := uc.cache.Get(slot.ID)
	if err != nil {
		// Snapshot was replaced and the slot is gone; the reservation-time
		// copy is the best value left
		current = slot
	}
	if err := uc.ledger.WriteSlotRemaining(ctx, current); err != nil {
		return fmt.Errorf("write slot remaining: %w", err)
	}
	return nil
}
