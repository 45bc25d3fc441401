package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekendWindow_Applies(t *testing.T) {
	window := DefaultWeekendWindow()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "будний день целиком",
			start: time.Date(2026, 9, 1, 14, 0, 0, 0, msk), // вторник
			end:   time.Date(2026, 9, 1, 16, 0, 0, 0, msk),
			want:  false,
		},
		{
			name:  "пятница до начала окна",
			start: time.Date(2026, 9, 4, 15, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 4, 17, 0, 0, 0, msk),
			want:  false,
		},
		{
			name:  "пятница 18:00 ровно",
			start: time.Date(2026, 9, 4, 18, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 4, 20, 0, 0, 0, msk),
			want:  true,
		},
		{
			name:  "пятница касается окна концом",
			start: time.Date(2026, 9, 4, 17, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 4, 19, 0, 0, 0, msk),
			want:  true,
		},
		{
			name:  "суббота любое время",
			start: time.Date(2026, 9, 5, 3, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 5, 5, 0, 0, 0, msk),
			want:  true,
		},
		{
			name:  "воскресенье утро",
			start: time.Date(2026, 9, 6, 10, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 6, 12, 0, 0, 0, msk),
			want:  true,
		},
		{
			// Граница воскресенья включительна: 22:30 все еще 22-й час
			name:  "воскресенье 22:30",
			start: time.Date(2026, 9, 6, 22, 30, 0, 0, msk),
			end:   time.Date(2026, 9, 6, 23, 30, 0, 0, msk),
			want:  true,
		},
		{
			name:  "воскресенье после окна",
			start: time.Date(2026, 9, 6, 23, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 6, 23, 30, 0, 0, msk),
			want:  false,
		},
		{
			name:  "воскресенье вечер касается окна началом",
			start: time.Date(2026, 9, 6, 21, 0, 0, 0, msk),
			end:   time.Date(2026, 9, 6, 23, 30, 0, 0, msk),
			want:  true,
		},
		{
			name:  "понедельник ночь",
			start: time.Date(2026, 9, 7, 0, 30, 0, 0, msk),
			end:   time.Date(2026, 9, 7, 2, 0, 0, 0, msk),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.Applies(tt.start, tt.end))
		})
	}
}
