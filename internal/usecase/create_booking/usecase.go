package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	stationRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/station"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/pricing"
)

// Settings параметры бронирования из конфигурации приложения
type Settings struct {
	MinDurationMinutes int
	MaxDurationMinutes int
	Grid               domain.SlotGrid
	Weekend            pricing.WeekendWindow
	JoystickPrice      int64
	Location           *time.Location
}

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	stationRepo     StationRepository
	zoneRepo        ZoneRepository
	tariffRepo      TariffRepository
	customerRepo    CustomerRepository
	txManager       TransactionManager
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	stationRepo StationRepository,
	zoneRepo ZoneRepository,
	tariffRepo TariffRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		stationRepo:     stationRepo,
		zoneRepo:        zoneRepo,
		tariffRepo:      tariffRepo,
		customerRepo:    customerRepo,
		txManager:       txManager,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки за слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tg=%s, station=%d, interval=[%s, %s)",
		req.TelegramID, req.StationID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.settings); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Приводим интервал к часовому поясу клуба
	start := req.StartTime.In(uc.settings.Location)
	end := req.EndTime.In(uc.settings.Location)
	now := uc.timeProvider.Now().In(uc.settings.Location)

	if !start.After(now) {
		uc.logger.Warn("CreateBooking: start %s is in the past", start.Format(time.RFC3339))
		return nil, ErrStartInPast
	}

	// 3. Проверяем попадание начала в сетку слотов
	if err := validateSchedule(start, uc.settings.Grid, uc.settings.Location); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем станцию
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("CreateBooking: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}

	if !station.IsBookable() {
		uc.logger.Warn("CreateBooking: station id=%d is %s", station.ID, station.Status)
		return nil, ErrStationUnavailable
	}

	// 5. Получаем зону для тарификации и отображения
	zone, err := uc.zoneRepo.GetByID(ctx, station.ZoneID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get zone id=%d: %v", station.ZoneID, err)
		return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
	}

	var (
		result *domain.Reservation
		quote  *pricing.Quote
	)

	// 6. Проверка пересечений и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Создаем или обновляем клиента по Telegram ID
		customer, err := uc.customerRepo.Upsert(txCtx, req.TelegramID, req.CustomerName, req.CustomerPhone)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to upsert customer tg=%s: %v", req.TelegramID, err)
			return fmt.Errorf("%w: failed to upsert customer: %v", ErrInternal, err)
		}

		// 6.2. Читаем активные бронирования станции с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetActiveByStationAndRange(txCtx, station.ID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 6.3. Проверяем пересечение интервалов
		// Касание границ (конец одного == начало другого) пересечением не считается
		if hasConflict(reservations, start, end) {
			uc.logger.Warn("CreateBooking: station id=%d has conflicting reservation in [%s, %s)",
				station.ID, start.Format(time.RFC3339), end.Format(time.RFC3339))
			return ErrSlotConflict
		}

		// 6.4. Считаем цену по тарифам зоны
		rules, err := uc.tariffRepo.GetByZoneID(txCtx, zone.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get tariff rules for zone id=%d: %v", zone.ID, err)
			return fmt.Errorf("%w: failed to get tariff rules: %v", ErrInternal, err)
		}

		quote, err = pricing.Calculate(rules, start, end, req.ExtraJoysticks, uc.settings.Weekend, uc.settings.JoystickPrice)
		if err != nil {
			if errors.Is(err, pricing.ErrNoTariff) {
				uc.logger.Error("CreateBooking: no tariff configured for zone id=%d", zone.ID)
				return ErrNoTariffConfigured
			}
			uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		// 6.5. Сохраняем бронирование
		reservation := &domain.Reservation{
			StationID:      station.ID,
			CustomerID:     customer.ID,
			StartTime:      start,
			EndTime:        end,
			Status:         domain.ReservationActive,
			TotalPrice:     quote.Total,
			ExtraJoysticks: req.ExtraJoysticks,
			Notes:          req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created reservation id=%d, total=%d", result.ID, result.TotalPrice)

	return &Response{
		ID:              result.ID,
		StationID:       station.ID,
		StationLabel:    station.Label,
		ZoneID:          zone.ID,
		ZoneName:        zone.DisplayName,
		CustomerID:      result.CustomerID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		BasePrice:       quote.Base,
		ExtrasPrice:     quote.Extras,
		TotalPrice:      quote.Total,
		TariffName:      quote.RuleName,
		IsWeekend:       quote.IsWeekend,
		ExtraJoysticks:  result.ExtraJoysticks,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
