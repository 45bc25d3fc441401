package next_available_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	stationRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/station"
)

// Settings параметры поиска из конфигурации приложения
type Settings struct {
	MinDurationMinutes     int
	MaxDurationMinutes     int
	DefaultDurationMinutes int
	HorizonDays            int
	Grid                   domain.SlotGrid
	Location               *time.Location
}

// UseCase use case для поиска ближайшего свободного слота станции
type UseCase struct {
	reservationRepo ReservationRepository
	stationRepo     StationRepository
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	stationRepo StationRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		stationRepo:     stationRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute ищет ближайший свободный слот станции в пределах горизонта поиска
// Перебирает дни по порядку, бронирования каждого дня читаются одним запросом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StationID <= 0 {
		return nil, fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	duration := uc.settings.DefaultDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	if duration < uc.settings.MinDurationMinutes || duration > uc.settings.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidDuration, uc.settings.MinDurationMinutes, uc.settings.MaxDurationMinutes)
	}

	if duration%uc.settings.Grid.StepMinutes != 0 {
		return nil, fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidDuration, uc.settings.Grid.StepMinutes)
	}

	uc.logger.Info("NextAvailableSlot: station=%d, duration=%d", req.StationID, duration)

	// 1. Получаем станцию
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("NextAvailableSlot: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("NextAvailableSlot: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}

	if !station.IsBookable() {
		uc.logger.Warn("NextAvailableSlot: station id=%d is %s", station.ID, station.Status)
		return nil, ErrStationUnavailable
	}

	slotTimes, err := uc.settings.Grid.Slots()
	if err != nil {
		uc.logger.Error("NextAvailableSlot: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().In(uc.settings.Location)
	durationSpan := time.Duration(duration) * time.Minute

	// 2. Перебираем дни горизонта
	for dayOffset := 0; dayOffset < uc.settings.HorizonDays; dayOffset++ {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.settings.Location).
			AddDate(0, 0, dayOffset)
		// Окно расширено на длительность: сессия с позднего слота может
		// пересечься с ранним бронированием следующего дня
		dayEnd := day.AddDate(0, 0, 1).Add(durationSpan)

		reservations, err := uc.reservationRepo.GetActiveByStationAndRange(ctx, station.ID, day, dayEnd)
		if err != nil {
			uc.logger.Error("NextAvailableSlot: failed to get reservations for %s: %v",
				day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		for _, st := range slotTimes {
			slotStart, err := st.At(day, uc.settings.Location)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to resolve slot time: %v", ErrInternal, err)
			}

			// Прошедшие слоты пропускаем
			if !slotStart.After(now) {
				continue
			}

			// Сессия с позднего слота может переходить за полночь
			slotEnd := slotStart.Add(durationSpan)
			if !overlapsAny(reservations, slotStart, slotEnd) {
				uc.logger.Info("NextAvailableSlot: found slot %s for station id=%d",
					slotStart.Format(time.RFC3339), station.ID)
				return &Response{
					StationID:       station.ID,
					StationLabel:    station.Label,
					StartTime:       slotStart,
					EndTime:         slotEnd,
					DurationMinutes: duration,
				}, nil
			}
		}
	}

	uc.logger.Warn("NextAvailableSlot: no free slot for station id=%d within %d days",
		station.ID, uc.settings.HorizonDays)
	return nil, ErrNoSlotFound
}

func overlapsAny(reservations []*domain.Reservation, start, end time.Time) bool {
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if r.Overlaps(start, end) {
			return true
		}
	}
	return false
}
