package pricing

import "time"

// WeekendWindow окно действия выходного тарифа:
// с пятницы FridayStartHour:00 до воскресенья SundayEndHour:00 включительно
// Границы вынесены в конфигурацию, чтобы календарь клуба можно было менять
// без правки классификатора
type WeekendWindow struct {
	FridayStartHour int
	SundayEndHour   int
}

// DefaultWeekendWindow окно клуба: пятница 18:00 - воскресенье 22:00
func DefaultWeekendWindow() WeekendWindow {
	return WeekendWindow{
		FridayStartHour: 18,
		SundayEndHour:   22,
	}
}

// Applies возвращает true, если интервал [start, end) затрагивает выходное окно
// Проверяются ОБЕ граничные точки: интервал может начаться в пятницу вечером
// и закончиться в субботу, либо начаться в воскресенье утром и выйти за 22:00
// Это предикат "касается", а не "полностью внутри"
//
// Моменты времени должны быть заранее нормализованы к временной зоне клуба
func (w WeekendWindow) Applies(start, end time.Time) bool {
	return w.touches(start) || w.touches(end)
}

// touches проверяет попадание момента времени в выходное окно
// Граница воскресенья сравнивается включительно (hour <= SundayEndHour)
// для обеих граничных точек - поведение подтверждается регрессионными
// тестами и ждет решения продукта
func (w WeekendWindow) touches(t time.Time) bool {
	switch t.Weekday() {
	case time.Friday:
		return t.Hour() >= w.FridayStartHour
	case time.Saturday:
		return true
	case time.Sunday:
		return t.Hour() <= w.SundayEndHour
	default:
		return false
	}
}
