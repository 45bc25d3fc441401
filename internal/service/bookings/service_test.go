package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	customerRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/customer"
	reservationRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/reservation"
)

var msk = time.FixedZone("MSK", 3*60*60)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, msk)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	byID       map[int64]*domain.Reservation
	byCustomer map[int64][]*domain.Reservation
	cancelled  []int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*domain.Reservation, error) {
	return f.byCustomer[customerID], nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByTelegramID(_ context.Context, telegramID string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.TelegramID == telegramID {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

type fakeStationRepo struct{}

func (fakeStationRepo) GetByID(_ context.Context, id int64) (*domain.Station, error) {
	return &domain.Station{ID: id, Label: "S-01", ZoneID: 1, Status: domain.StationActive}, nil
}

func newTestService(reservations *fakeReservationRepo, customers *fakeCustomerRepo) *Service {
	svc := NewService(reservations, customers, fakeStationRepo{}, nopLogger{})
	svc.timeProvider = fixedTime{t: testNow}
	return svc
}

func testFixtures() (*fakeReservationRepo, *fakeCustomerRepo) {
	owner := &domain.Customer{ID: 7, TelegramID: "111", Name: "Иван"}
	other := &domain.Customer{ID: 8, TelegramID: "222", Name: "Петр"}

	// Будущее активное бронирование владельца
	future := &domain.Reservation{
		ID:         1,
		StationID:  5,
		CustomerID: 7,
		StartTime:  testNow.Add(time.Hour),
		EndTime:    testNow.Add(3 * time.Hour),
		Status:     domain.ReservationActive,
		TotalPrice: 26000,
	}
	// Прошедшее активное бронирование: на чтении отдается как завершенное
	past := &domain.Reservation{
		ID:         2,
		StationID:  5,
		CustomerID: 7,
		StartTime:  testNow.Add(-4 * time.Hour),
		EndTime:    testNow.Add(-2 * time.Hour),
		Status:     domain.ReservationActive,
		TotalPrice: 26000,
	}

	reservations := &fakeReservationRepo{
		byID:       map[int64]*domain.Reservation{1: future, 2: past},
		byCustomer: map[int64][]*domain.Reservation{7: {future, past}},
	}
	customers := &fakeCustomerRepo{
		customers: map[int64]*domain.Customer{7: owner, 8: other},
	}
	return reservations, customers
}

func TestGetByID_Success(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	resp, err := svc.GetByID(context.Background(), 1, "111")
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "S-01", resp.StationLabel)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 120, resp.DurationMinutes)
}

func TestGetByID_CompletedStatusIsDerived(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	resp, err := svc.GetByID(context.Background(), 2, "111")
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	_, err := svc.GetByID(context.Background(), 99, "111")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_AccessDenied(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	_, err := svc.GetByID(context.Background(), 1, "222")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_UnknownCustomerGetsEmptyList(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	resp, err := svc.GetUserBookings(context.Background(), "999")
	require.NoError(t, err)

	assert.Empty(t, resp.Bookings)
}

func TestGetUserBookings_Success(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	resp, err := svc.GetUserBookings(context.Background(), "111")
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "active", resp.Bookings[0].Status)
	assert.Equal(t, "completed", resp.Bookings[1].Status)
}

func TestCancel_Success(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	err := svc.Cancel(context.Background(), 1, "111")
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, reservations.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	err := svc.Cancel(context.Background(), 99, "111")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AccessDenied(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	err := svc.Cancel(context.Background(), 1, "222")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, reservations.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	reservations, customers := testFixtures()
	reservations.byID[1].Status = domain.ReservationCancelled
	svc := newTestService(reservations, customers)

	err := svc.Cancel(context.Background(), 1, "111")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyStarted(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	// Бронирование началось две минуты назад и еще идет
	reservations.byID[1].StartTime = testNow.Add(-2 * time.Minute)

	err := svc.Cancel(context.Background(), 1, "111")
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestCancel_RightBeforeStart(t *testing.T) {
	reservations, customers := testFixtures()
	svc := newTestService(reservations, customers)

	// За десять минут до начала отмена еще возможна
	reservations.byID[1].StartTime = testNow.Add(10 * time.Minute)

	err := svc.Cancel(context.Background(), 1, "111")
	assert.NoError(t, err)
}
