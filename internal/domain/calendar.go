package domain

import "time"

// CalendarExceptionType вид особого дня календаря
type CalendarExceptionType string

const (
	CalendarHoliday CalendarExceptionType = "holiday"
	CalendarSpecial CalendarExceptionType = "special"
)

// CalendarException особый день (праздник или специальная дата)
// Зарезервированная точка расширения: хранится и отдается наружу,
// но на расчет цены пока не влияет
type CalendarException struct {
	ID     int64
	Date   time.Time // Дата без времени
	Type   CalendarExceptionType
	Active bool
}
