package next_available_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("next_available_slot: invalid input data")

	// ErrInvalidDuration возвращается, когда длительность вне допустимого диапазона
	ErrInvalidDuration = errors.New("next_available_slot: invalid duration")

	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("next_available_slot: station not found")

	// ErrStationUnavailable возвращается, когда станция на обслуживании или списана
	ErrStationUnavailable = errors.New("next_available_slot: station is not bookable")

	// ErrNoSlotFound возвращается, когда в пределах горизонта поиска нет свободного слота
	ErrNoSlotFound = errors.New("next_available_slot: no free slot within search horizon")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("next_available_slot: internal error")
)
