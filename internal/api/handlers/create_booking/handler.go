package create_booking

import (
	"errors"
	"net/http"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/middleware"
	createBooking "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInterval     = "некорректный формат времени начала или конца, ожидается RFC 3339"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные входные данные"
	msgInvalidDuration     = "некорректная длительность бронирования"
	msgStartNotAligned     = "время начала не попадает в сетку слотов"
	msgStartInPast         = "время начала уже прошло"
	msgOutsideWorkingHours = "интервал выходит за рабочие часы клуба"
	msgStationNotFound     = "станция не найдена"
	msgStationUnavailable  = "станция недоступна для бронирования"
	msgSlotConflict        = "выбранный интервал уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	telegramID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(telegramID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: tg=%s, station_id=%d", telegramID, req.StationID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrStationNotFound):
			h.logger.Warn("POST /bookings - Station not found: station_id=%d", req.StationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, createBooking.ErrStationUnavailable):
			h.logger.Warn("POST /bookings - Station unavailable: station_id=%d", req.StationID)
			handlers.RespondConflict(w, msgStationUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: tg=%s, start=%s, end=%s",
				telegramID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrStartNotAligned):
			h.logger.Warn("POST /bookings - Start not aligned: tg=%s, start=%s", telegramID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartNotAligned)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Start in past: tg=%s, start=%s", telegramID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: tg=%s, start=%s", telegramID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tg=%s, error=%v", telegramID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			// ErrNoTariffConfigured тоже попадает сюда: для клиента это
			// внутренняя проблема конфигурации клуба
			h.logger.Error("POST /bookings - Failed to create booking: tg=%s, station_id=%d, error=%v",
				telegramID, req.StationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, tg=%s, station_id=%d",
		result.ID, telegramID, req.StationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
