package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrZoneNotFound возвращается, когда фильтр указывает на несуществующую зону
	ErrZoneNotFound = errors.New("get_availability: zone not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
