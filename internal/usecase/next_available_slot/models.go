package next_available_slot

import "time"

// Request модель запроса ближайшего свободного слота
type Request struct {
	StationID       int64 // ID станции
	DurationMinutes *int  // Желаемая длительность (опционально, по умолчанию из конфигурации)
}

// Response модель ответа с найденным слотом
type Response struct {
	StationID       int64     // ID станции
	StationLabel    string    // Метка станции
	StartTime       time.Time // Начало найденного слота
	EndTime         time.Time // Конец
	DurationMinutes int       // Длительность в минутах
}
