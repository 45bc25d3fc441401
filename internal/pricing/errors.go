package pricing

import "errors"

var (
	// ErrNoTariff возвращается, когда для зоны не удалось подобрать ни одного
	// применимого тарифного правила (ошибка конфигурации тарифов)
	ErrNoTariff = errors.New("pricing: no applicable tariff rule for zone")

	// ErrInvalidInterval возвращается при некорректном интервале (end <= start)
	ErrInvalidInterval = errors.New("pricing: invalid interval, end must be after start")
)
