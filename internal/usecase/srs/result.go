package srs

import "github.com/eslsoft/vocdrill/internal/entity"

// LevelUpStreak is the correct-answer streak at which an item starts moving up a level.
const LevelUpStreak = 2

// ApplyResult returns the statistics that follow from answering itemID with
// outcome on today. current may be nil for an item that was never seen; it is
// never modified.
func ApplyResult(current *entity.ItemStatistics, itemID string, outcome entity.Outcome, today entity.Date) entity.ItemStatistics {
	var next entity.ItemStatistics
	if current != nil {
		next = current.Clone()
	} else {
		next = entity.NewItemStatistics(itemID)
	}
	next.Level = ClampLevel(next.Level)
	next.TimesSeen++
	next.LastSeen = entity.DatePtr(today)

	switch outcome {
	case entity.OutcomeCorrect:
		next.TimesCorrect++
		next.Streak++
		// The streak is not reset on promotion: once it reaches
		// LevelUpStreak every further correct answer promotes again.
		if next.Streak >= LevelUpStreak && next.Level < entity.LevelMax {
			next.Level++
		}
		next.NextDue = entity.DatePtr(NextDue(next.Level, today))
	case entity.OutcomeWrong:
		next.TimesWrong++
		next.Streak = 0
		next.LastWrong = entity.DatePtr(today)
		if next.Level > entity.LevelNew {
			next.Level--
		}
		next.NextDue = entity.DatePtr(NextDue(next.Level, today))
	case entity.OutcomeSkipped:
		// Exposure only: level, streak and schedule stay as they were.
	}
	return next
}
