package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eslsoft/vocdrill/internal/entity"
)

func TestSummarize(t *testing.T) {
	items := append(makeItems("food", "food", 3), makeItems("verb", "verbs", 2)...)
	learning := seenStats("food-00", 1, today)
	learning.TimesSeen, learning.TimesCorrect = 4, 3
	strong := seenStats("food-01", 4, today.AddDays(14))
	strong.TimesSeen, strong.TimesCorrect = 6, 6
	struggling := seenStats("verb-00", 0, today.AddDays(-1))
	struggling.TimesSeen, struggling.TimesCorrect = 2, 0
	stats := map[string]entity.ItemStatistics{
		"food-00": learning,
		"food-01": strong,
		"verb-00": struggling,
		"orphan":  seenStats("orphan", 5, today),
	}

	s := Summarize(items, stats, 3, today)
	assert.Equal(t, 5, s.TotalItems)
	assert.Equal(t, 2, s.Learned)
	assert.Equal(t, 1, s.Mastered)
	assert.Equal(t, 2, s.InProgress)
	assert.Equal(t, 2, s.New)
	assert.Equal(t, 2, s.DueToday)
	assert.Equal(t, 12, s.TotalSeen)
	assert.Equal(t, 9, s.TotalCorrect)
	assert.Equal(t, 75, s.Accuracy)
	assert.Equal(t, [entity.LevelCount]int{3, 1, 0, 0, 1, 0}, s.Levels)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, []entity.CategoryProgress{
		{Category: "food", Total: 3, Learned: 2},
		{Category: "verbs", Total: 2, Learned: 0},
	}, s.Categories)
}

func TestSummarizeEmptyStore(t *testing.T) {
	s := Summarize(makeItems("w", "food", 4), nil, 0, today)
	assert.Zero(t, s.Learned)
	assert.Zero(t, s.Mastered)
	assert.Zero(t, s.Accuracy)
	assert.Equal(t, 4, s.New)
	assert.Equal(t, 4, s.Levels[0])
}

func TestAccuracyRounds(t *testing.T) {
	assert.Equal(t, 0, Accuracy(0, 0))
	assert.Equal(t, 67, Accuracy(2, 3))
	assert.Equal(t, 33, Accuracy(1, 3))
	assert.Equal(t, 100, Accuracy(5, 5))
}
