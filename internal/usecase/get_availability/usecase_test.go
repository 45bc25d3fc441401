package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	calendarRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/calendar"
	zoneRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/zone"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/ptr"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/types"
)

var msk = time.FixedZone("MSK", 3*60*60)

// Понедельник 2026-08-31, запрос на завтра
var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, msk)
var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, msk)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetActiveByStationsAndRange(_ context.Context, _ []int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fakeStationRepo struct {
	stations []*domain.Station
}

func (f *fakeStationRepo) ListBookable(_ context.Context, zoneID *int64) ([]*domain.Station, error) {
	if zoneID == nil {
		return f.stations, nil
	}
	filtered := make([]*domain.Station, 0)
	for _, s := range f.stations {
		if s.ZoneID == *zoneID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

type fakeZoneRepo struct {
	zones map[int64]*domain.Zone
}

func (f *fakeZoneRepo) GetByID(_ context.Context, id int64) (*domain.Zone, error) {
	z, ok := f.zones[id]
	if !ok {
		return nil, zoneRepo.ErrZoneNotFound
	}
	return z, nil
}

type fakeCalendarRepo struct {
	exception *domain.CalendarException
}

func (f *fakeCalendarRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CalendarException, error) {
	if f.exception == nil {
		return nil, calendarRepo.ErrExceptionNotFound
	}
	return f.exception, nil
}

func newTestUseCase(
	reservations *fakeReservationRepo,
	stations *fakeStationRepo,
	calendar *fakeCalendarRepo,
) *UseCase {
	uc := NewUseCase(
		reservations,
		stations,
		&fakeZoneRepo{zones: map[int64]*domain.Zone{1: {ID: 1, Name: "standard"}}},
		calendar,
		Settings{
			Grid:     domain.DefaultSlotGrid(),
			Location: msk,
		},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func testStations() *fakeStationRepo {
	return &fakeStationRepo{stations: []*domain.Station{
		{ID: 5, Label: "S-01", ZoneID: 1, Status: domain.StationActive},
	}}
}

func slotByTime(t *testing.T, slots []Slot, at types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == at {
			return s
		}
	}
	t.Fatalf("slot %s not found", at)
	return Slot{}
}

func TestExecute_FullGridForFutureDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testStations(), &fakeCalendarRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Stations, 1)
	require.Len(t, resp.Stations[0].Slots, 30)
	assert.False(t, resp.IsHoliday)

	// На завтрашний день все слоты свободны
	for _, s := range resp.Stations[0].Slots {
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

func TestExecute_ReservedSlotsAreUnavailable(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{{
		StationID: 5,
		StartTime: time.Date(2026, 9, 1, 14, 0, 0, 0, msk),
		EndTime:   time.Date(2026, 9, 1, 16, 0, 0, 0, msk),
		Status:    domain.ReservationActive,
	}}}
	uc := newTestUseCase(reservations, testStations(), &fakeCalendarRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	slots := resp.Stations[0].Slots
	assert.True(t, slotByTime(t, slots, "13:30").Available)
	assert.False(t, slotByTime(t, slots, "14:00").Available)
	assert.False(t, slotByTime(t, slots, "15:30").Available)
	// Слот, начинающийся ровно в момент окончания, свободен
	assert.True(t, slotByTime(t, slots, "16:00").Available)
}

func TestExecute_PastSlotsAreUnavailable(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testStations(), &fakeCalendarRepo{})
	// Запрос на сегодня в 12:00: утренние слоты уже прошли
	uc.timeProvider = fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, msk)}

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	slots := resp.Stations[0].Slots
	assert.False(t, slotByTime(t, slots, "09:00").Available)
	assert.False(t, slotByTime(t, slots, "12:00").Available)
	assert.True(t, slotByTime(t, slots, "12:30").Available)
}

func TestExecute_HolidayFlag(t *testing.T) {
	calendar := &fakeCalendarRepo{exception: &domain.CalendarException{
		ID:     1,
		Date:   testDate,
		Type:   domain.CalendarHoliday,
		Active: true,
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, testStations(), calendar)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.IsHoliday)
}

func TestExecute_ZoneNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testStations(), &fakeCalendarRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, ZoneID: ptr.Ptr(int64(99))})
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testStations(), &fakeCalendarRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
