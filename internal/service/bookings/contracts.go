package bookings

import (
	"context"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*domain.Customer, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
