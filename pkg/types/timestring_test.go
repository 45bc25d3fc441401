package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"25:00", "9:60", "abc", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", invalid)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), next)

	wrapped, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("01:00"), wrapped)

	back, err := TimeString("00:30").AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:30"), back)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("23:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_At(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2026, 9, 5, 23, 59, 0, 0, msk)

	got, err := TimeString("18:30").At(date, msk)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 5, 18, 30, 0, 0, msk), got)
}
