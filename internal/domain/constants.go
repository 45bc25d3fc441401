package domain

// Ограничения длительности бронирования
const (
	MinBookingDurationMinutes = 60  // 1 час
	MaxBookingDurationMinutes = 480 // 8 часов
)

// Параметры сетки слотов по умолчанию
const (
	DefaultSlotStepMinutes = 30
	DefaultOpenTime        = "09:00"
	DefaultLastSlotStart   = "23:30"
)

// Параметры поиска ближайшего свободного слота по умолчанию
const (
	DefaultNextSlotHorizonDays     = 7
	DefaultNextSlotDurationMinutes = 60
)

// DefaultJoystickPriceMinorUnits доплата за дополнительный джойстик (PS5)
const DefaultJoystickPriceMinorUnits = 50

// FacilityTimezone фиксированная временная зона клуба
// Все расчеты границ суток и выходного окна выполняются в ней
const FacilityTimezone = "Europe/Moscow"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxNotesLength максимальная длина заметки к бронированию
const MaxNotesLength = 500
