package srs

import (
	"math"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// Summarize aggregates progress across the corpus. Statistics for ids outside
// items are ignored. Categories appear in order of first occurrence.
func Summarize(items []entity.VocabularyItem, stats map[string]entity.ItemStatistics, streak int, today entity.Date) entity.ProgressSummary {
	summary := entity.ProgressSummary{
		TotalItems: len(items),
		Streak:     streak,
		Categories: []entity.CategoryProgress{},
	}
	categoryIndex := make(map[string]int)

	for _, item := range items {
		idx, ok := categoryIndex[item.Category]
		if !ok {
			idx = len(summary.Categories)
			categoryIndex[item.Category] = idx
			summary.Categories = append(summary.Categories, entity.CategoryProgress{Category: item.Category})
		}
		summary.Categories[idx].Total++

		st, ok := stats[item.ID]
		if !ok || !st.Seen() {
			summary.New++
			summary.Levels[entity.LevelNew]++
			continue
		}

		level := ClampLevel(st.Level)
		summary.Levels[level]++
		if level >= entity.LevelLearned {
			summary.Learned++
			summary.Categories[idx].Learned++
		}
		if level >= entity.LevelMastered {
			summary.Mastered++
		} else {
			summary.InProgress++
		}
		summary.TotalSeen += st.TimesSeen
		summary.TotalCorrect += st.TimesCorrect
		if IsDue(st.NextDue, today) {
			summary.DueToday++
		}
	}

	summary.Accuracy = Accuracy(summary.TotalCorrect, summary.TotalSeen)
	return summary
}

// Accuracy returns correct/seen as a rounded percentage, 0 when nothing was seen.
func Accuracy(correct, seen int) int {
	if seen <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(seen)))
}
