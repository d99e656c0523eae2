package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eslsoft/vocdrill/internal/entity"
)

func activity(day entity.Date, reviews int) entity.DailyActivity {
	return entity.DailyActivity{Day: day, Reviews: reviews}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []entity.DailyActivity
		want int
	}{
		{name: "no history", want: 0},
		{name: "today only", days: []entity.DailyActivity{activity(today, 3)}, want: 1},
		{
			name: "ending today",
			days: []entity.DailyActivity{activity(today, 1), activity(today.AddDays(-1), 4), activity(today.AddDays(-2), 2)},
			want: 3,
		},
		{
			name: "today not started yet",
			days: []entity.DailyActivity{activity(today.AddDays(-1), 4), activity(today.AddDays(-2), 2)},
			want: 2,
		},
		{
			name: "gap breaks streak",
			days: []entity.DailyActivity{activity(today, 1), activity(today.AddDays(-2), 2)},
			want: 1,
		},
		{
			name: "empty day does not count",
			days: []entity.DailyActivity{activity(today, 0), activity(today.AddDays(-1), 0)},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.days, today))
		})
	}
}
