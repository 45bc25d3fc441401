package get_user_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
// Клиент может запросить только собственную историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathUserID := vars["userId"]

	telegramID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if pathUserID != telegramID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: path=%s, tg=%s", pathUserID, telegramID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), telegramID)
	if err != nil {
		h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: tg=%s, error=%v", telegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Retrieved %d bookings for tg=%s", len(result.Bookings), telegramID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
