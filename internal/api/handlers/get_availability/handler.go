package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	getAvailability "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/get_availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidZone  = "некорректный ID зоны"
	msgZoneNotFound = "зона не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&zone=ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{Date: date}

	if zoneStr := r.URL.Query().Get("zone"); zoneStr != "" {
		zoneID, err := strconv.ParseInt(zoneStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid zone %q: %v", zoneStr, err)
			handlers.RespondBadRequest(w, msgInvalidZone)
			return
		}
		req.ZoneID = &zoneID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrZoneNotFound):
			h.logger.Warn("GET /availability - Zone not found: zone_id=%v", req.ZoneID)
			handlers.RespondNotFound(w, msgZoneNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: date=%s, stations=%d", dateStr, len(result.Stations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
