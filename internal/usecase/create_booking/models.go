package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	TelegramID      string    // Telegram ID клиента (из заголовка X-User-ID)
	CustomerName    string    // Имя клиента
	CustomerPhone   *string   // Телефон клиента (опционально)
	StationID       int64     // ID станции
	StartTime      time.Time // Начало бронирования
	EndTime        time.Time // Конец бронирования
	ExtraJoysticks int       // Дополнительные джойстики (PS5 зона)
	Notes          *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с подтверждением бронирования
type Response struct {
	ID              int64     // ID созданного бронирования
	StationID       int64     // ID станции
	StationLabel    string    // Метка станции (S-01, PS5-01)
	ZoneID          int64     // ID зоны
	ZoneName        string    // Отображаемое название зоны
	CustomerID      int64     // Внутренний ID клиента
	StartTime       time.Time // Начало
	EndTime         time.Time // Конец
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус бронирования

	// Разбивка цены в копейках
	BasePrice      int64  // Стоимость по тарифу
	ExtrasPrice    int64  // Доплата за джойстики
	TotalPrice     int64  // Итог
	TariffName     string // Название применённого тарифа
	IsWeekend      bool   // Применён ли тариф выходного дня
	ExtraJoysticks int    // Количество дополнительных джойстиков

	Notes     *string   // Заметки
	CreatedAt time.Time // Время создания
}
