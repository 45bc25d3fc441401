package get_availability

import (
	"context"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetActiveByStationsAndRange(ctx context.Context, stationIDs []int64, from, to time.Time) ([]*domain.Reservation, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	ListBookable(ctx context.Context, zoneID *int64) ([]*domain.Station, error)
}

// ZoneRepository интерфейс репозитория зон
type ZoneRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Zone, error)
}

// CalendarRepository интерфейс репозитория календаря особых дней
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarException, error)
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
