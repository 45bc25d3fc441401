package models

import (
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// BookingResponse ответ с данными бронирования
// Статус вычисляется на момент запроса: активное бронирование,
// чей конец уже прошел, отдается как завершенное
type BookingResponse struct {
	ID              int64     `json:"id"`
	StationID       int64     `json:"stationId"`
	StationLabel    string    `json:"stationLabel"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	TotalPrice      int64     `json:"totalPrice"`
	ExtraJoysticks  int       `json:"extraJoysticks,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation, stationLabel string, now time.Time) *BookingResponse {
	if r == nil {
		return nil
	}

	return &BookingResponse{
		ID:              r.ID,
		StationID:       r.StationID,
		StationLabel:    stationLabel,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes(),
		Status:          string(r.EffectiveStatus(now)),
		TotalPrice:      r.TotalPrice,
		ExtraJoysticks:  r.ExtraJoysticks,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
}
