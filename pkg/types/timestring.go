package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (например, "10:00")
// Используется для меток слотов и обмена с HTTP слоем
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

const timeStringLayout = "15:04"

// NewTimeString создает TimeString из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeStringLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return nil
}

// minutes возвращает количество минут от начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
// Результат усекается по модулю суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m = (m + minutes) % (24 * 60)
	if m < 0 {
		m += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// IsBefore проверяет, что время строго раньше other
// Некорректные значения считаются равными нулю минут
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// At возвращает момент времени: дата date с часами и минутами из t
// в указанной временной зоне
func (t TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := t.minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, loc), nil
}
