package domain

import "time"

// ReservationStatus статус бронирования
// В хранилище живут только active и cancelled; completed вычисляется
// на чтении для активных бронирований, у которых время окончания прошло
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation бронирование станции на интервал [StartTime, EndTime)
// Моменты времени нормализованы к временной зоне клуба
type Reservation struct {
	ID             int64
	StationID      int64
	CustomerID     int64
	StartTime      time.Time
	EndTime        time.Time
	Status         ReservationStatus
	TotalPrice     int64 // Минорные единицы валюты
	ExtraJoysticks int
	Notes          *string
	CreatedAt      time.Time
}

// IsActive возвращает true, если бронирование активно (не отменено)
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationActive
}

// EffectiveStatus возвращает статус с учетом текущего времени:
// активное бронирование с прошедшим временем окончания считается завершенным
func (r *Reservation) EffectiveStatus(now time.Time) ReservationStatus {
	if r.Status == ReservationActive && !now.Before(r.EndTime) {
		return ReservationCompleted
	}
	return r.Status
}

// HasStarted проверяет, что бронирование уже началось к моменту now
func (r *Reservation) HasStarted(now time.Time) bool {
	return !now.Before(r.StartTime)
}

// DurationMinutes длительность бронирования в минутах
func (r *Reservation) DurationMinutes() int {
	return int(r.EndTime.Sub(r.StartTime) / time.Minute)
}

// Overlaps проверяет пересечение бронирования с интервалом [start, end)
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return Overlaps(r.StartTime, r.EndTime, start, end)
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы пересекаются, только если начало одного СТРОГО раньше конца другого
// и наоборот; граничащие интервалы (aEnd == bStart) пересечением не считаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
