package create_booking

import (
	"context"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetActiveByStationAndRange(ctx context.Context, stationID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// ZoneRepository интерфейс репозитория зон
type ZoneRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Zone, error)
}

// TariffRepository интерфейс репозитория тарифных правил
type TariffRepository interface {
	GetByZoneID(ctx context.Context, zoneID int64) ([]*domain.TariffRule, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Upsert(ctx context.Context, telegramID, name string, phone *string) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
