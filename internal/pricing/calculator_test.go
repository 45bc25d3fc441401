package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

var msk = time.FixedZone("MSK", 3*60*60)

const joystickPrice = int64(5000)

func hourlyRule(id int64, weekday, weekend int64) *domain.TariffRule {
	return &domain.TariffRule{
		ID:           id,
		ZoneID:       1,
		Kind:         domain.TariffHourly,
		Name:         "Час",
		WeekdayPrice: weekday,
		WeekendPrice: weekend,
	}
}

func packageRule(id int64, weekday, weekend int64, minDuration int) *domain.TariffRule {
	return &domain.TariffRule{
		ID:                 id,
		ZoneID:             1,
		Kind:               domain.TariffPackage,
		Name:               "Пакет",
		WeekdayPrice:       weekday,
		WeekendPrice:       weekend,
		MinDurationMinutes: minDuration,
	}
}

func TestCalculate_WeekdayHourly(t *testing.T) {
	// Вторник 14:00 - 16:00
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	end := start.Add(2 * time.Hour)

	quote, err := Calculate(
		[]*domain.TariffRule{hourlyRule(1, 13000, 14000)},
		start, end, 0, DefaultWeekendWindow(), joystickPrice,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(26000), quote.Base)
	assert.Equal(t, int64(0), quote.Extras)
	assert.Equal(t, int64(26000), quote.Total)
	assert.False(t, quote.IsWeekend)
	assert.Equal(t, 120, quote.DurationMinutes)
}

func TestCalculate_WeekendSaturday(t *testing.T) {
	// Суббота 14:00 - 16:00
	start := time.Date(2026, 9, 5, 14, 0, 0, 0, msk)
	end := start.Add(2 * time.Hour)

	quote, err := Calculate(
		[]*domain.TariffRule{hourlyRule(1, 13000, 14000)},
		start, end, 0, DefaultWeekendWindow(), joystickPrice,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(28000), quote.Base)
	assert.True(t, quote.IsWeekend)
}

func TestCalculate_ExtraJoysticks(t *testing.T) {
	// Вторник 18:00 - 19:00, два дополнительных джойстика
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, msk)
	end := start.Add(time.Hour)

	quote, err := Calculate(
		[]*domain.TariffRule{hourlyRule(1, 13000, 14000)},
		start, end, 2, DefaultWeekendWindow(), joystickPrice,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(13000), quote.Base)
	assert.Equal(t, int64(10000), quote.Extras)
	assert.Equal(t, int64(23000), quote.Total)
}

func TestCalculate_PicksCheapestQualifyingRule(t *testing.T) {
	// Пакет "3 часа" дешевле трех почасовых часов
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	end := start.Add(3 * time.Hour)

	rules := []*domain.TariffRule{
		hourlyRule(1, 13000, 14000),
		packageRule(2, 35000, 38000, 180),
	}

	quote, err := Calculate(rules, start, end, 0, DefaultWeekendWindow(), joystickPrice)
	require.NoError(t, err)

	assert.Equal(t, int64(2), quote.RuleID)
	assert.Equal(t, domain.TariffPackage, quote.RuleKind)
	assert.Equal(t, int64(35000), quote.Total)
}

func TestCalculate_PackageBelowThresholdUsesHourly(t *testing.T) {
	// Два часа не дотягивают до пакетного порога в три часа
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	end := start.Add(2 * time.Hour)

	rules := []*domain.TariffRule{
		hourlyRule(1, 13000, 14000),
		packageRule(2, 35000, 38000, 180),
	}

	quote, err := Calculate(rules, start, end, 0, DefaultWeekendWindow(), joystickPrice)
	require.NoError(t, err)

	assert.Equal(t, int64(1), quote.RuleID)
	assert.Equal(t, int64(26000), quote.Total)
}

func TestCalculate_HalfHourPrecision(t *testing.T) {
	// 90 минут по 13000 за час = 19500, без округления до часа
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	end := start.Add(90 * time.Minute)

	quote, err := Calculate(
		[]*domain.TariffRule{hourlyRule(1, 13000, 14000)},
		start, end, 0, DefaultWeekendWindow(), joystickPrice,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(19500), quote.Total)
}

func TestCalculate_HourlyTotalTruncatesSubUnit(t *testing.T) {
	// Нечетная ставка на полчаса: 125 * 90 / 60 = 187.5, дробная часть
	// минорной единицы отбрасывается
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)
	end := start.Add(90 * time.Minute)

	quote, err := Calculate(
		[]*domain.TariffRule{hourlyRule(1, 125, 135)},
		start, end, 0, DefaultWeekendWindow(), joystickPrice,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(187), quote.Total)
}

func TestCalculate_MonotonicInDuration(t *testing.T) {
	// При фиксированном почасовом правиле цена не убывает с ростом длительности
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, msk)
	rules := []*domain.TariffRule{hourlyRule(1, 13000, 14000)}

	var prev int64
	for minutes := 60; minutes <= 480; minutes += 30 {
		quote, err := Calculate(
			rules, start, start.Add(time.Duration(minutes)*time.Minute),
			0, DefaultWeekendWindow(), joystickPrice,
		)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, quote.Total, prev, "duration %d", minutes)
		prev = quote.Total
	}
}

func TestCalculate_NoRules(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)

	_, err := Calculate(nil, start, start.Add(time.Hour), 0, DefaultWeekendWindow(), joystickPrice)
	assert.ErrorIs(t, err, ErrNoTariff)
}

func TestCalculate_OnlyUnreachablePackages(t *testing.T) {
	// Одни пакетные правила с недостигнутым порогом и без почасового отката
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)

	_, err := Calculate(
		[]*domain.TariffRule{packageRule(1, 35000, 38000, 180)},
		start, start.Add(time.Hour), 0, DefaultWeekendWindow(), joystickPrice,
	)
	assert.ErrorIs(t, err, ErrNoTariff)
}

func TestCalculate_InvalidInterval(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, msk)

	_, err := Calculate(
		[]*domain.TariffRule{hourlyRule(1, 13000, 14000)},
		start, start, 0, DefaultWeekendWindow(), joystickPrice,
	)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
