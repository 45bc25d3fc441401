package get_zone_summary

import (
	"net/http"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers"
)

type Handler struct {
	service ZoneService
	logger  Logger
}

func NewHandler(service ZoneService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/zones/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.logger.Error("GET /zones/summary - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /zones/summary - Summary built for %d zones", len(result.Zones))
	handlers.RespondJSON(w, http.StatusOK, result)
}
