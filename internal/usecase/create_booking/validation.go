package create_booking

import (
	"fmt"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, settings Settings) error {
	if req.TelegramID == "" {
		return fmt.Errorf("%w: telegramID is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if req.ExtraJoysticks < 0 {
		return fmt.Errorf("%w: extraJoysticks must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	span := req.EndTime.Sub(req.StartTime)
	if span <= 0 {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	minutes := int(span / time.Minute)
	if minutes < settings.MinDurationMinutes || minutes > settings.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidDuration, settings.MinDurationMinutes, settings.MaxDurationMinutes)
	}

	if span%time.Minute != 0 || minutes%settings.Grid.StepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidDuration, settings.Grid.StepMinutes)
	}

	return nil
}

// validateSchedule проверяет, что начало интервала попадает в сетку слотов
// Конец не ограничен: сессия с позднего слота может переходить за полночь
func validateSchedule(start time.Time, grid domain.SlotGrid, loc *time.Location) error {
	openAt, err := grid.OpenTime.At(start, loc)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve open time: %v", ErrInternal, err)
	}

	lastSlotAt, err := grid.LastSlotStart.At(start, loc)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve last slot time: %v", ErrInternal, err)
	}

	if start.Before(openAt) || start.After(lastSlotAt) {
		return ErrOutsideWorkingHours
	}

	offset := start.Sub(openAt)
	if offset%(time.Duration(grid.StepMinutes)*time.Minute) != 0 {
		return ErrStartNotAligned
	}

	return nil
}

// hasConflict проверяет пересечение интервала с активными бронированиями
func hasConflict(reservations []*domain.Reservation, start, end time.Time) bool {
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
