package srs

import "github.com/eslsoft/vocdrill/internal/entity"

// Streak counts consecutive study days ending today. When nothing was studied
// today yet the count starts from yesterday, so an unfinished day does not
// break the streak.
func Streak(days []entity.DailyActivity, today entity.Date) int {
	active := make(map[entity.Date]struct{}, len(days))
	for _, d := range days {
		if d.Reviews > 0 {
			active[d.Day] = struct{}{}
		}
	}

	day := today
	if _, ok := active[day]; !ok {
		day = today.AddDays(-1)
	}
	streak := 0
	for {
		if _, ok := active[day]; !ok {
			return streak
		}
		streak++
		day = day.AddDays(-1)
	}
}
