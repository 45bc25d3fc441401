package domain

// TariffKind вид тарифного правила
type TariffKind string

const (
	// TariffHourly почасовой тариф: цена за час, итог пропорционален длительности
	TariffHourly TariffKind = "hourly"

	// TariffPackage пакетный тариф: фиксированная цена при длительности
	// не меньше минимальной
	TariffPackage TariffKind = "package"
)

// TariffRule тарифное правило зоны
// Цены хранятся в минорных единицах валюты (копейках)
type TariffRule struct {
	ID                 int64
	ZoneID             int64
	Kind               TariffKind
	Name               string
	WeekdayPrice       int64
	WeekendPrice       int64
	MinDurationMinutes int // Для package: минимальная длительность, с которой правило применимо
}

// RateFor возвращает цену правила для буднего или выходного тарифа
func (r *TariffRule) RateFor(isWeekend bool) int64 {
	if isWeekend {
		return r.WeekendPrice
	}
	return r.WeekdayPrice
}

// QualifiesFor проверяет, применимо ли правило к интервалу указанной длительности
// Почасовые правила применимы всегда, пакетные - начиная с минимальной длительности
func (r *TariffRule) QualifiesFor(durationMinutes int) bool {
	switch r.Kind {
	case TariffHourly:
		return true
	case TariffPackage:
		return r.MinDurationMinutes > 0 && durationMinutes >= r.MinDurationMinutes
	default:
		return false
	}
}
