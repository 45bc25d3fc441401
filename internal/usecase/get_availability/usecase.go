package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	calendarRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/calendar"
	zoneRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/zone"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/types"
)

// Settings параметры сетки слотов из конфигурации приложения
type Settings struct {
	Grid     domain.SlotGrid
	Location *time.Location
}

// UseCase use case для получения доступности станций на дату
type UseCase struct {
	reservationRepo ReservationRepository
	stationRepo     StationRepository
	zoneRepo        ZoneRepository
	calendarRepo    CalendarRepository
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	stationRepo StationRepository,
	zoneRepo ZoneRepository,
	calendarRepo CalendarRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		stationRepo:     stationRepo,
		zoneRepo:        zoneRepo,
		calendarRepo:    calendarRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает сетку слотов всех доступных станций на дату
// Слот помечается занятым, если он уже прошел или пересекается с активным бронированием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailability: date=%s, zone=%v", req.Date.Format(domain.DateFormat), req.ZoneID)

	// 1. Проверяем фильтр по зоне
	if req.ZoneID != nil {
		if _, err := uc.zoneRepo.GetByID(ctx, *req.ZoneID); err != nil {
			if errors.Is(err, zoneRepo.ErrZoneNotFound) {
				uc.logger.Warn("GetAvailability: zone id=%d not found", *req.ZoneID)
				return nil, ErrZoneNotFound
			}
			uc.logger.Error("GetAvailability: failed to get zone id=%d: %v", *req.ZoneID, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}
	}

	// 2. Получаем доступные для бронирования станции
	stations, err := uc.stationRepo.ListBookable(ctx, req.ZoneID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list stations: %v", err)
		return nil, fmt.Errorf("%w: failed to list stations: %v", ErrInternal, err)
	}

	// 3. Строим сетку слотов на дату в часовом поясе клуба
	slotTimes, err := uc.settings.Grid.Slots()
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.settings.Location)
	dayEnd := day.AddDate(0, 0, 1)

	// 4. Читаем все активные бронирования станций на день одним запросом
	stationIDs := make([]int64, 0, len(stations))
	for _, s := range stations {
		stationIDs = append(stationIDs, s.ID)
	}

	reservations := make([]*domain.Reservation, 0)
	if len(stationIDs) > 0 {
		reservations, err = uc.reservationRepo.GetActiveByStationsAndRange(ctx, stationIDs, day, dayEnd)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
	}

	byStation := make(map[int64][]*domain.Reservation, len(stations))
	for _, r := range reservations {
		byStation[r.StationID] = append(byStation[r.StationID], r)
	}

	// 5. Проверяем, не особый ли день
	isHoliday := false
	if _, err := uc.calendarRepo.GetByDate(ctx, day); err == nil {
		isHoliday = true
	} else if !errors.Is(err, calendarRepo.ErrExceptionNotFound) {
		uc.logger.Error("GetAvailability: failed to check calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to check calendar: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().In(uc.settings.Location)
	step := time.Duration(uc.settings.Grid.StepMinutes) * time.Minute

	result := make([]StationAvailability, 0, len(stations))
	for _, station := range stations {
		slots, err := buildSlots(slotTimes, day, uc.settings.Location, step, now, byStation[station.ID])
		if err != nil {
			uc.logger.Error("GetAvailability: failed to build slots for station id=%d: %v", station.ID, err)
			return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
		}

		result = append(result, StationAvailability{
			StationID: station.ID,
			Label:     station.Label,
			ZoneID:    station.ZoneID,
			Slots:     slots,
		})
	}

	return &Response{
		Date:      day,
		IsHoliday: isHoliday,
		Stations:  result,
	}, nil
}

// buildSlots строит сетку одной станции
// Слот занят, если его начало уже прошло или интервал слота пересекается
// с активным бронированием (касание границ пересечением не считается)
func buildSlots(
	slotTimes []types.TimeString,
	day time.Time,
	loc *time.Location,
	step time.Duration,
	now time.Time,
	reservations []*domain.Reservation,
) ([]Slot, error) {
	slots := make([]Slot, 0, len(slotTimes))

	for _, st := range slotTimes {
		slotStart, err := st.At(day, loc)
		if err != nil {
			return nil, err
		}
		slotEnd := slotStart.Add(step)

		available := slotStart.After(now)
		if available {
			for _, r := range reservations {
				if !r.IsActive() {
					continue
				}
				if r.Overlaps(slotStart, slotEnd) {
					available = false
					break
				}
			}
		}

		slots = append(slots, Slot{Time: st, Available: available})
	}

	return slots, nil
}
