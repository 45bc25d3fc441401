package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование уже отменено или завершено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrAlreadyStarted возвращается при попытке отменить начавшееся бронирование
	ErrAlreadyStarted = errors.New("booking has already started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
