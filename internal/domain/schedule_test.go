package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/types"
)

func TestSlotGrid_DefaultSlots(t *testing.T) {
	slots, err := DefaultSlotGrid().Slots()
	require.NoError(t, err)

	// С 09:00 по 23:30 с шагом 30 минут ровно 30 слотов
	require.Len(t, slots, 30)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("23:30"), slots[len(slots)-1])
}

func TestSlotGrid_CustomStep(t *testing.T) {
	grid := SlotGrid{
		OpenTime:      "10:00",
		LastSlotStart: "12:00",
		StepMinutes:   60,
	}

	slots, err := grid.Slots()
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:00", "12:00"}, slots)
}

func TestSlotGrid_InvalidOpenTime(t *testing.T) {
	grid := SlotGrid{
		OpenTime:      "25:00",
		LastSlotStart: "12:00",
		StepMinutes:   30,
	}

	_, err := grid.Slots()
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
