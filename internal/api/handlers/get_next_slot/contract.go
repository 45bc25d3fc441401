package get_next_slot

import (
	"context"

	nextAvailableSlot "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/next_available_slot"
)

type NextAvailableSlotUseCase interface {
	Execute(ctx context.Context, req *nextAvailableSlot.Request) (*nextAvailableSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
