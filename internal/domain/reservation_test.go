package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var msk = time.FixedZone("MSK", 3*60*60)

func TestOverlaps(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 1, hour, minute, 0, 0, msk)
	}

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "касание границ не пересечение",
			aStart: at(14, 0), aEnd: at(16, 0),
			bStart: at(16, 0), bEnd: at(18, 0),
			want: false,
		},
		{
			name:   "касание границ в обратном порядке",
			aStart: at(16, 0), aEnd: at(18, 0),
			bStart: at(14, 0), bEnd: at(16, 0),
			want: false,
		},
		{
			name:   "частичное пересечение",
			aStart: at(14, 0), aEnd: at(16, 0),
			bStart: at(15, 0), bEnd: at(17, 0),
			want: true,
		},
		{
			name:   "вложенный интервал",
			aStart: at(14, 0), aEnd: at(18, 0),
			bStart: at(15, 0), bEnd: at(16, 0),
			want: true,
		},
		{
			name:   "одинаковые интервалы",
			aStart: at(14, 0), aEnd: at(16, 0),
			bStart: at(14, 0), bEnd: at(16, 0),
			want: true,
		},
		{
			name:   "непересекающиеся интервалы",
			aStart: at(9, 0), aEnd: at(10, 0),
			bStart: at(12, 0), bEnd: at(13, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestReservation_EffectiveStatus(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	end := start.Add(2 * time.Hour)

	active := &Reservation{StartTime: start, EndTime: end, Status: ReservationActive}
	cancelled := &Reservation{StartTime: start, EndTime: end, Status: ReservationCancelled}

	// До окончания активное остается активным
	assert.Equal(t, ReservationActive, active.EffectiveStatus(end.Add(-time.Minute)))

	// Ровно в момент окончания и позже - завершено
	assert.Equal(t, ReservationCompleted, active.EffectiveStatus(end))
	assert.Equal(t, ReservationCompleted, active.EffectiveStatus(end.Add(time.Hour)))

	// Отмененное не становится завершенным
	assert.Equal(t, ReservationCancelled, cancelled.EffectiveStatus(end.Add(time.Hour)))
}

func TestReservation_HasStarted(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	r := &Reservation{StartTime: start, EndTime: start.Add(time.Hour)}

	assert.False(t, r.HasStarted(start.Add(-time.Minute)))
	assert.True(t, r.HasStarted(start))
	assert.True(t, r.HasStarted(start.Add(time.Minute)))
}

func TestReservation_DurationMinutes(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	r := &Reservation{StartTime: start, EndTime: start.Add(90 * time.Minute)}

	assert.Equal(t, 90, r.DurationMinutes())
}
