package get_next_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers"
	nextAvailableSlot "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/next_available_slot"
)

const (
	msgInvalidStationID   = "некорректный ID станции"
	msgInvalidDuration    = "некорректная длительность"
	msgStationNotFound    = "станция не найдена"
	msgStationUnavailable = "станция недоступна для бронирования"
	msgNoSlotFound        = "нет свободных слотов в пределах горизонта поиска"
)

// NextSlotResponse HTTP response model
type NextSlotResponse struct {
	StationID       int64  `json:"stationId"`
	StationLabel    string `json:"stationLabel"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

type Handler struct {
	useCase NextAvailableSlotUseCase
	logger  Logger
}

func NewHandler(useCase NextAvailableSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/next-slot?duration=MINUTES
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stationIDStr := vars["stationId"]

	stationID, err := strconv.ParseInt(stationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/next-slot - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	req := &nextAvailableSlot.Request{StationID: stationID}

	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /stations/{id}/next-slot - Invalid duration %q: %v", durationStr, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = &duration
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, nextAvailableSlot.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/next-slot - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, nextAvailableSlot.ErrStationUnavailable):
			h.logger.Warn("GET /stations/{id}/next-slot - Station unavailable: station_id=%d", stationID)
			handlers.RespondConflict(w, msgStationUnavailable)

		case errors.Is(err, nextAvailableSlot.ErrNoSlotFound):
			h.logger.Warn("GET /stations/{id}/next-slot - No slot found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgNoSlotFound)

		case errors.Is(err, nextAvailableSlot.ErrInvalidDuration),
			errors.Is(err, nextAvailableSlot.ErrInvalidInput):
			h.logger.Warn("GET /stations/{id}/next-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /stations/{id}/next-slot - Failed: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stations/{id}/next-slot - Slot found: station_id=%d, start=%s",
		stationID, result.StartTime.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, &NextSlotResponse{
		StationID:       result.StationID,
		StationLabel:    result.StationLabel,
		StartTime:       result.StartTime.Format(time.RFC3339),
		EndTime:         result.EndTime.Format(time.RFC3339),
		DurationMinutes: result.DurationMinutes,
	})
}
