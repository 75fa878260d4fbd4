package get_slots

import (
	"context"

	getSlots "prenota/internal/usecase/get_slots"
)

type GetSlotsUseCase interface {
	Execute(ctx context.Context) (*getSlots.Response, error)
	Reload(ctx context.Context) (*getSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
