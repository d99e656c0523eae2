package srs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdrill/internal/entity"
)

func TestApplyResultHolaScenario(t *testing.T) {
	first := ApplyResult(nil, "hola", entity.OutcomeCorrect, today)
	assert.Equal(t, "hola", first.ItemID)
	assert.Equal(t, 1, first.TimesSeen)
	assert.Equal(t, 1, first.TimesCorrect)
	assert.Equal(t, 1, first.Streak)
	assert.Equal(t, 0, first.Level)
	require.NotNil(t, first.NextDue)
	assert.Equal(t, today, *first.NextDue)

	second := ApplyResult(&first, "hola", entity.OutcomeCorrect, today)
	assert.Equal(t, 2, second.TimesSeen)
	assert.Equal(t, 2, second.TimesCorrect)
	assert.Equal(t, 2, second.Streak)
	assert.Equal(t, 1, second.Level)
	assert.Equal(t, today.AddDays(1), *second.NextDue)

	third := ApplyResult(&second, "hola", entity.OutcomeWrong, today)
	assert.Equal(t, 3, third.TimesSeen)
	assert.Equal(t, 1, third.TimesWrong)
	assert.Equal(t, 0, third.Streak)
	assert.Equal(t, 0, third.Level)
	assert.Equal(t, today, *third.NextDue)
	require.NotNil(t, third.LastWrong)
	assert.Equal(t, today, *third.LastWrong)
}

func TestApplyResultLevelUpOnSecondCorrect(t *testing.T) {
	for level := 0; level < entity.LevelMax; level++ {
		start := entity.ItemStatistics{ItemID: "x", TimesSeen: 1, Level: level}
		once := ApplyResult(&start, "x", entity.OutcomeCorrect, today)
		assert.Equal(t, level, once.Level, "first correct must not promote from %d", level)
		twice := ApplyResult(&once, "x", entity.OutcomeCorrect, today)
		assert.Equal(t, level+1, twice.Level, "second correct must promote from %d", level)
	}
}

// Once warmed up, the streak keeps promoting on every correct answer.
func TestApplyResultStreakNotResetOnLevelUp(t *testing.T) {
	st := ApplyResult(nil, "x", entity.OutcomeCorrect, today)
	st = ApplyResult(&st, "x", entity.OutcomeCorrect, today)
	require.Equal(t, 1, st.Level)
	st = ApplyResult(&st, "x", entity.OutcomeCorrect, today)
	assert.Equal(t, 3, st.Streak)
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, today.AddDays(3), *st.NextDue)
}

func TestApplyResultLevelDown(t *testing.T) {
	start := entity.ItemStatistics{ItemID: "x", TimesSeen: 5, Streak: 4, Level: 3}
	next := ApplyResult(&start, "x", entity.OutcomeWrong, today)
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, 0, next.Streak)
	assert.Equal(t, today.AddDays(3), *next.NextDue)

	floor := entity.ItemStatistics{ItemID: "x", TimesSeen: 1}
	next = ApplyResult(&floor, "x", entity.OutcomeWrong, today)
	assert.Equal(t, 0, next.Level)
}

func TestApplyResultSkipNeutrality(t *testing.T) {
	due := today.AddDays(5)
	start := entity.ItemStatistics{ItemID: "x", TimesSeen: 4, TimesCorrect: 3, Streak: 2, Level: 2, NextDue: &due}
	next := ApplyResult(&start, "x", entity.OutcomeSkipped, today)
	assert.Equal(t, 5, next.TimesSeen)
	assert.Equal(t, today, *next.LastSeen)
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, 2, next.Streak)
	assert.Equal(t, due, *next.NextDue)
	assert.Equal(t, 3, next.TimesCorrect)
	assert.Zero(t, next.TimesWrong)

	fresh := ApplyResult(nil, "y", entity.OutcomeSkipped, today)
	assert.Equal(t, 1, fresh.TimesSeen)
	assert.Nil(t, fresh.NextDue)
}

func TestApplyResultDoesNotMutateInput(t *testing.T) {
	due := today.AddDays(1)
	start := entity.ItemStatistics{ItemID: "x", TimesSeen: 1, Level: 1, NextDue: &due}
	_ = ApplyResult(&start, "x", entity.OutcomeWrong, today)
	assert.Equal(t, 1, start.TimesSeen)
	assert.Equal(t, today.AddDays(1), *start.NextDue)
	assert.Nil(t, start.LastWrong)
}

func TestApplyResultLevelStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	outcomes := []entity.Outcome{entity.OutcomeCorrect, entity.OutcomeWrong, entity.OutcomeSkipped}
	st := entity.ItemStatistics{ItemID: "x", Level: 9}
	day := today
	for i := 0; i < 2000; i++ {
		st = ApplyResult(&st, "x", outcomes[rng.Intn(len(outcomes))], day)
		require.GreaterOrEqual(t, st.Level, entity.LevelNew)
		require.LessOrEqual(t, st.Level, entity.LevelMax)
		day = day.AddDays(rng.Intn(3))
	}
	assert.Equal(t, st.TimesSeen, 2000)
}
