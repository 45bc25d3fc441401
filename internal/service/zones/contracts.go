package zones

import (
	"context"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// ZoneRepository интерфейс репозитория зон
type ZoneRepository interface {
	ListActive(ctx context.Context) ([]*domain.Zone, error)
}

// TariffRepository интерфейс репозитория тарифных правил
type TariffRepository interface {
	GetByZoneIDs(ctx context.Context, zoneIDs []int64) ([]*domain.TariffRule, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	ListBookable(ctx context.Context, zoneID *int64) ([]*domain.Station, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetActiveByStationsAndRange(ctx context.Context, stationIDs []int64, from, to time.Time) ([]*domain.Reservation, error)
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
