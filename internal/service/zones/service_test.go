package zones

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

var msk = time.FixedZone("MSK", 3*60*60)

var testNow = time.Date(2026, 9, 1, 14, 30, 0, 0, msk)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeZoneRepo struct {
	zones []*domain.Zone
}

func (f *fakeZoneRepo) ListActive(_ context.Context) ([]*domain.Zone, error) {
	return f.zones, nil
}

type fakeTariffRepo struct {
	rules []*domain.TariffRule
}

func (f *fakeTariffRepo) GetByZoneIDs(_ context.Context, _ []int64) ([]*domain.TariffRule, error) {
	return f.rules, nil
}

type fakeStationRepo struct {
	stations []*domain.Station
}

func (f *fakeStationRepo) ListBookable(_ context.Context, _ *int64) ([]*domain.Station, error) {
	return f.stations, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetActiveByStationsAndRange(_ context.Context, _ []int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func testZones() *fakeZoneRepo {
	return &fakeZoneRepo{zones: []*domain.Zone{
		{ID: 1, Name: "standard", DisplayName: "Стандарт", SortOrder: 1, Active: true},
		{ID: 2, Name: "vip", DisplayName: "VIP", SortOrder: 2, Active: true},
	}}
}

func newTestService(
	reservations *fakeReservationRepo,
	stations *fakeStationRepo,
	tariffs *fakeTariffRepo,
) *Service {
	svc := NewService(testZones(), tariffs, stations, reservations, nopLogger{})
	svc.timeProvider = fixedTime{t: testNow}
	return svc
}

func TestListZones(t *testing.T) {
	tariffs := &fakeTariffRepo{rules: []*domain.TariffRule{
		{ID: 1, ZoneID: 1, Kind: domain.TariffHourly, Name: "Час", WeekdayPrice: 13000, WeekendPrice: 14000},
		{ID: 2, ZoneID: 1, Kind: domain.TariffPackage, Name: "Пакет 3 часа", WeekdayPrice: 35000, WeekendPrice: 38000, MinDurationMinutes: 180},
		{ID: 3, ZoneID: 2, Kind: domain.TariffHourly, Name: "Час VIP", WeekdayPrice: 20000, WeekendPrice: 22000},
	}}
	svc := newTestService(&fakeReservationRepo{}, &fakeStationRepo{}, tariffs)

	resp, err := svc.ListZones(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Zones, 2)
	assert.Equal(t, "standard", resp.Zones[0].Name)
	require.Len(t, resp.Zones[0].Tariffs, 2)
	assert.Equal(t, int64(13000), resp.Zones[0].Tariffs[0].WeekdayPrice)
	require.Len(t, resp.Zones[1].Tariffs, 1)
	assert.Equal(t, "Час VIP", resp.Zones[1].Tariffs[0].Name)
}

func TestGetSummary(t *testing.T) {
	stations := &fakeStationRepo{stations: []*domain.Station{
		{ID: 1, Label: "S-01", ZoneID: 1, Status: domain.StationActive},
		{ID: 2, Label: "S-02", ZoneID: 1, Status: domain.StationActive},
		{ID: 3, Label: "VIP-01", ZoneID: 2, Status: domain.StationActive},
	}}
	// Станция S-01 занята прямо сейчас, S-02 освободилась час назад
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{
			StationID: 1,
			StartTime: testNow.Add(-30 * time.Minute),
			EndTime:   testNow.Add(90 * time.Minute),
			Status:    domain.ReservationActive,
		},
		{
			StationID: 2,
			StartTime: testNow.Add(-3 * time.Hour),
			EndTime:   testNow.Add(-time.Hour),
			Status:    domain.ReservationActive,
		},
	}}
	svc := newTestService(reservations, stations, &fakeTariffRepo{})

	resp, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Zones, 2)

	standard := resp.Zones[0]
	assert.Equal(t, 2, standard.TotalStations)
	assert.Equal(t, 1, standard.AvailableStations)
	assert.InDelta(t, 0.5, standard.OccupancyRate, 1e-9)

	vip := resp.Zones[1]
	assert.Equal(t, 1, vip.TotalStations)
	assert.Equal(t, 1, vip.AvailableStations)
	assert.Equal(t, 0.0, vip.OccupancyRate)
}

func TestGetSummary_NoStations(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{}, &fakeStationRepo{}, &fakeTariffRepo{})

	resp, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Zones, 2)
	assert.Equal(t, 0, resp.Zones[0].TotalStations)
	assert.Equal(t, 0.0, resp.Zones[0].OccupancyRate)
}
