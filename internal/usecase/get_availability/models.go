package get_availability

import (
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/types"
)

// Request модель запроса доступности на дату
type Request struct {
	Date   time.Time // Дата (без времени)
	ZoneID *int64    // Фильтр по зоне (опционально)
}

// Slot один слот сетки для станции
type Slot struct {
	Time      types.TimeString // Начало слота ("09:00")
	Available bool             // Свободен ли слот
}

// StationAvailability сетка слотов одной станции
type StationAvailability struct {
	StationID int64  // ID станции
	Label     string // Метка станции
	ZoneID    int64  // ID зоны
	Slots     []Slot // Слоты в порядке сетки
}

// Response модель ответа с доступностью на дату
type Response struct {
	Date      time.Time             // Запрошенная дата
	IsHoliday bool                  // Есть ли на дату активный особый день
	Stations  []StationAvailability // Станции с их сетками
}
