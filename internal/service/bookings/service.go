package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	customerRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/customer"
	reservationRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/reservation"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	customerRepo    CustomerRepository
	stationRepo     StationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	customerRepo CustomerRepository,
	stationRepo StationRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		stationRepo:     stationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id int64, telegramID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for tg=%s", id, telegramID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwner(ctx, reservation, telegramID); err != nil {
		s.logger.Warn("GetByID: access denied for tg=%s to booking id=%d", telegramID, id)
		return nil, err
	}

	label, err := s.stationLabel(ctx, reservation.StationID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainReservation(reservation, label, s.timeProvider.Now()), nil
}

// GetUserBookings получает историю бронирований клиента, новые первыми
// Клиент без единого бронирования получает пустой список, а не ошибку
func (s *Service) GetUserBookings(ctx context.Context, telegramID string) (*models.BookingListResponse, error) {
	if telegramID == "" {
		return nil, fmt.Errorf("%w: telegramID is required", ErrInvalidInput)
	}

	s.logger.Info("GetUserBookings: fetching bookings for tg=%s", telegramID)

	customer, err := s.customerRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Info("GetUserBookings: tg=%s has no bookings yet", telegramID)
			return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
		}
		s.logger.Error("GetUserBookings: failed to get customer tg=%s: %v", telegramID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for customer id=%d: %v", customer.ID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	labels := make(map[int64]string)

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		label, ok := labels[r.StationID]
		if !ok {
			label, err = s.stationLabel(ctx, r.StationID)
			if err != nil {
				return nil, err
			}
			labels[r.StationID] = label
		}

		resp.Bookings = append(resp.Bookings, *models.FromDomainReservation(r, label, now))
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for tg=%s", len(resp.Bookings), telegramID)
	return resp, nil
}

// Cancel отменяет бронирование
// Порядок проверок фиксирован: существование, владелец, статус, время начала
func (s *Service) Cancel(ctx context.Context, bookingID int64, telegramID string) error {
	s.logger.Info("Cancel: cancelling booking id=%d by tg=%s", bookingID, telegramID)

	reservation, err := s.reservationRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwner(ctx, reservation, telegramID); err != nil {
		s.logger.Warn("Cancel: access denied for tg=%s to booking id=%d", telegramID, bookingID)
		return err
	}

	if !reservation.IsActive() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, reservation.Status)
		return ErrCannotCancel
	}

	if reservation.HasStarted(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: booking id=%d has already started", bookingID)
		return ErrAlreadyStarted
	}

	if err := s.reservationRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkOwner проверяет, что бронирование принадлежит клиенту с данным Telegram ID
func (s *Service) checkOwner(ctx context.Context, reservation *domain.Reservation, telegramID string) error {
	customer, err := s.customerRepo.GetByID(ctx, reservation.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkOwner: failed to get customer id=%d: %v", reservation.CustomerID, err)
		return fmt.Errorf("%w: checkOwner - repository error: %v", ErrInternal, err)
	}

	if customer.TelegramID != telegramID {
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) stationLabel(ctx context.Context, stationID int64) (string, error) {
	station, err := s.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		s.logger.Error("stationLabel: failed to get station id=%d: %v", stationID, err)
		return "", fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}
	return station.Label, nil
}
