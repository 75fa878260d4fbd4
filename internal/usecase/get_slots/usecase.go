package get_slots

import (
	"context"
	"fmt"
)

// UseCase use case получения снапшота слотов
type UseCase struct {
	cache  SlotCache
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotCache SlotCache, logger Logger) *UseCase {
	return &UseCase{cache: slotCache, logger: logger}
}

// Execute returns the current cache snapshot, lazily loading it first if the
// cache is still uninitialized
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	if err := uc.cache.EnsureReady(ctx); err != nil {
		uc.logger.Error("GetSlots: cache warm-up failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCacheLoadFailed, err)
	}

	header, slots := uc.cache.Snapshot()
	uc.logger.Info("GetSlots: returning %d slots", len(slots))
	return &Response{Header: header, Slots: slots}, nil
}

// Reload forces a fresh snapshot from the ledger, replacing the current one
func (uc *UseCase) Reload(ctx context.Context) (*Response, error) {
	if err := uc.cache.Load(ctx); err != nil {
		uc.logger.Error("GetSlots: forced reload failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCacheLoadFailed, err)
	}

	header, slots := uc.cache.Snapshot()
	uc.logger.Info("GetSlots: snapshot reloaded, %d slots", len(slots))
	return &Response{Header: header, Slots: slots}, nil
}
