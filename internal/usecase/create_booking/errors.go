package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDuration возвращается, когда длительность вне допустимого диапазона
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrStartNotAligned возвращается, когда время начала не попадает в сетку слотов
	ErrStartNotAligned = errors.New("create_booking: start time is not aligned to slot grid")

	// ErrStartInPast возвращается, когда время начала уже прошло
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за рабочие часы клуба
	ErrOutsideWorkingHours = errors.New("create_booking: interval is outside working hours")

	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("create_booking: station not found")

	// ErrStationUnavailable возвращается, когда станция на обслуживании или списана
	ErrStationUnavailable = errors.New("create_booking: station is not bookable")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным бронированием
	ErrSlotConflict = errors.New("create_booking: time slot is already taken")

	// ErrNoTariffConfigured возвращается, когда у зоны нет применимого тарифа
	// Это ошибка конфигурации инвентаря, а не запроса клиента
	ErrNoTariffConfigured = errors.New("create_booking: no tariff configured for zone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
