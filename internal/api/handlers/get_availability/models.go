package get_availability

import (
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	getAvailability "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/get_availability"
)

// SlotResponse один слот сетки
type SlotResponse struct {
	Time      string `json:"time"` // "09:00"
	Available bool   `json:"available"`
}

// StationResponse сетка слотов одной станции
type StationResponse struct {
	StationID int64          `json:"stationId"`
	Label     string         `json:"label"`
	ZoneID    int64          `json:"zoneId"`
	Slots     []SlotResponse `json:"slots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string            `json:"date"` // "2026-09-05"
	IsHoliday bool              `json:"isHoliday"`
	Stations  []StationResponse `json:"stations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	stations := make([]StationResponse, 0, len(resp.Stations))
	for _, st := range resp.Stations {
		slots := make([]SlotResponse, 0, len(st.Slots))
		for _, s := range st.Slots {
			slots = append(slots, SlotResponse{
				Time:      s.Time.String(),
				Available: s.Available,
			})
		}
		stations = append(stations, StationResponse{
			StationID: st.StationID,
			Label:     st.Label,
			ZoneID:    st.ZoneID,
			Slots:     slots,
		})
	}

	return &AvailabilityResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		IsHoliday: resp.IsHoliday,
		Stations:  stations,
	}
}
