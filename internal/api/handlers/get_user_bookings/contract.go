package get_user_bookings

import (
	"context"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, telegramID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
