package srs

import "github.com/eslsoft/vocdrill/internal/entity"

// intervalDays maps a mastery level to the days until the next review.
var intervalDays = [entity.LevelCount]int{0, 1, 3, 7, 14, 30}

// ClampLevel forces a level into [LevelNew, LevelMax].
func ClampLevel(level int) int {
	switch {
	case level < entity.LevelNew:
		return entity.LevelNew
	case level > entity.LevelMax:
		return entity.LevelMax
	default:
		return level
	}
}

// IntervalDays returns the review interval for level.
func IntervalDays(level int) int {
	return intervalDays[ClampLevel(level)]
}

// NextDue returns the date an item at level should next be reviewed.
func NextDue(level int, today entity.Date) entity.Date {
	return today.AddDays(IntervalDays(level))
}

// IsDue reports whether an item with the given next-due date needs review today.
// An unscheduled item is always due.
func IsDue(nextDue *entity.Date, today entity.Date) bool {
	return nextDue == nil || !nextDue.After(today)
}
