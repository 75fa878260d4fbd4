package get_names

import (
	"context"
	"fmt"
)

// UseCase use case получения списка известных имен.
// Читает ledger напрямую, без кэширования: проекция не на горячем пути
// бронирования, и всегда-свежий медленный ответ здесь приемлем.
type UseCase struct {
	ledger Ledger
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger Ledger, logger Logger) *UseCase {
	return &UseCase{ledger: ledger, logger: logger}
}

// Execute returns the names column from the ledger
func (uc *UseCase) Execute(ctx context.Context) ([]string, error) {
	names, err := uc.ledger.FetchNames(ctx)
	if err != nil {
		uc.logger.Error("GetNames: fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	uc.logger.Info("GetNames: fetched %d names", len(names))
	return names, nil
}
