package create_booking

import (
	"time"

	createBooking "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StationID      int64   `json:"stationId"`
	StartTime      string  `json:"startTime"` // RFC 3339, например "2026-09-05T18:00:00+03:00"
	EndTime        string  `json:"endTime"`   // RFC 3339
	CustomerName   string  `json:"customerName"`
	CustomerPhone  *string `json:"customerPhone,omitempty"`
	ExtraJoysticks int     `json:"extraJoysticks,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// BookingConfirmationResponse HTTP response model
type BookingConfirmationResponse struct {
	ID              int64   `json:"id"`
	StationID       int64   `json:"stationId"`
	StationLabel    string  `json:"stationLabel"`
	ZoneID          int64   `json:"zoneId"`
	ZoneName        string  `json:"zoneName"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	BasePrice       int64   `json:"basePrice"`
	ExtrasPrice     int64   `json:"extrasPrice"`
	TotalPrice      int64   `json:"totalPrice"`
	TariffName      string  `json:"tariffName"`
	IsWeekend       bool    `json:"isWeekend"`
	ExtraJoysticks  int     `json:"extraJoysticks,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(telegramID string) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TelegramID:     telegramID,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		StationID:      r.StationID,
		StartTime:      startTime,
		EndTime:        endTime,
		ExtraJoysticks: r.ExtraJoysticks,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		ID:              resp.ID,
		StationID:       resp.StationID,
		StationLabel:    resp.StationLabel,
		ZoneID:          resp.ZoneID,
		ZoneName:        resp.ZoneName,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		BasePrice:       resp.BasePrice,
		ExtrasPrice:     resp.ExtrasPrice,
		TotalPrice:      resp.TotalPrice,
		TariffName:      resp.TariffName,
		IsWeekend:       resp.IsWeekend,
		ExtraJoysticks:  resp.ExtraJoysticks,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
