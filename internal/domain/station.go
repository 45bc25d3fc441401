package domain

import "time"

// StationStatus статус игровой станции
type StationStatus string

const (
	StationActive      StationStatus = "active"
	StationMaintenance StationStatus = "maintenance"
	StationRetired     StationStatus = "retired"
)

// Station игровая станция (ПК или консоль)
// Станции не удаляются физически, только выводятся из эксплуатации (retired)
type Station struct {
	ID        int64
	Label     string // Например "S-01", "VIP-03", "PS5-01"
	ZoneID    int64
	Status    StationStatus
	Specs     string // Свободное описание железа (JSON)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает true, если станцию можно бронировать
func (s *Station) IsBookable() bool {
	return s.Status == StationActive
}
