package get_zones

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

// Handle GET /api/v1/zones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListZones(r.Context())
	if err != nil {
		h.logger.Error("GET /zones - Failed to list zones: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /zones - Retrieved %d zones", len(result.Zones))
	handlers.RespondJSON(w, http.StatusOK, result)
}
