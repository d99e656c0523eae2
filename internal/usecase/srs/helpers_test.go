package srs

import (
	"fmt"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
)

var today = entity.NewDate(2024, time.March, 15)

func makeItems(prefix, category string, n int) []entity.VocabularyItem {
	items := make([]entity.VocabularyItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entity.VocabularyItem{
			ID:       fmt.Sprintf("%s-%02d", prefix, i),
			Source:   fmt.Sprintf("%s source %d", prefix, i),
			Target:   fmt.Sprintf("%s target %d", prefix, i),
			Category: category,
		})
	}
	return items
}

func ids(items []entity.VocabularyItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func seenStats(id string, level int, nextDue entity.Date) entity.ItemStatistics {
	return entity.ItemStatistics{
		ItemID:       id,
		TimesSeen:    3,
		TimesCorrect: 2,
		TimesWrong:   1,
		Level:        level,
		LastSeen:     entity.DatePtr(nextDue.AddDays(-1)),
		NextDue:      entity.DatePtr(nextDue),
	}
}
