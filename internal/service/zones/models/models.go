package models

import (
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// TariffResponse тарифное правило зоны
// Цены в копейках
type TariffResponse struct {
	ID                 int64  `json:"id"`
	Kind               string `json:"kind"`
	Name               string `json:"name"`
	WeekdayPrice       int64  `json:"weekdayPrice"`
	WeekendPrice       int64  `json:"weekendPrice"`
	MinDurationMinutes int    `json:"minDurationMinutes,omitempty"`
}

// ZoneResponse зона с ее тарифами
type ZoneResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	DisplayName string           `json:"displayName"`
	Description string           `json:"description,omitempty"`
	Color       string           `json:"color,omitempty"`
	SortOrder   int              `json:"sortOrder"`
	Tariffs     []TariffResponse `json:"tariffs"`
}

// ZoneListResponse ответ со списком зон
type ZoneListResponse struct {
	Zones []ZoneResponse `json:"zones"`
}

// ZoneSummary занятость одной зоны на текущий момент
type ZoneSummary struct {
	ZoneID            int64   `json:"zoneId"`
	Name              string  `json:"name"`
	DisplayName       string  `json:"displayName"`
	TotalStations     int     `json:"totalStations"`
	AvailableStations int     `json:"availableStations"`
	OccupancyRate     float64 `json:"occupancyRate"`
}

// SummaryResponse сводка занятости по зонам
type SummaryResponse struct {
	Zones       []ZoneSummary `json:"zones"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// FromDomainZone конвертирует domain модель зоны в DTO
func FromDomainZone(z *domain.Zone, rules []*domain.TariffRule) *ZoneResponse {
	if z == nil {
		return nil
	}

	tariffs := make([]TariffResponse, 0, len(rules))
	for _, r := range rules {
		tariffs = append(tariffs, TariffResponse{
			ID:                 r.ID,
			Kind:               string(r.Kind),
			Name:               r.Name,
			WeekdayPrice:       r.WeekdayPrice,
			WeekendPrice:       r.WeekendPrice,
			MinDurationMinutes: r.MinDurationMinutes,
		})
	}

	return &ZoneResponse{
		ID:          z.ID,
		Name:        z.Name,
		DisplayName: z.DisplayName,
		Description: z.Description,
		Color:       z.Color,
		SortOrder:   z.SortOrder,
		Tariffs:     tariffs,
	}
}
