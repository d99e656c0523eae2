package srs

import "github.com/eslsoft/vocdrill/internal/entity"

// RecentlyWrongDays is the look-back window of the recently-wrong bucket.
const RecentlyWrongDays = 7

// Classification is the raw bucket membership of every corpus item. A seen
// item may appear in several of Due, RecentlyWrong and HardFlagged.
type Classification struct {
	Due              []entity.VocabularyItem
	RecentlyWrong    []entity.VocabularyItem
	HardFlagged      []entity.VocabularyItem
	New              []entity.VocabularyItem
	SeenUnclassified []entity.VocabularyItem
}

// Classify sorts items into candidate buckets. Items never seen go to New no
// matter what else is recorded for them.
func Classify(items []entity.VocabularyItem, stats map[string]entity.ItemStatistics, today entity.Date) Classification {
	var c Classification
	windowStart := today.AddDays(-RecentlyWrongDays)
	for _, item := range items {
		st, ok := stats[item.ID]
		if !ok || !st.Seen() {
			c.New = append(c.New, item)
			continue
		}
		matched := false
		if IsDue(st.NextDue, today) {
			c.Due = append(c.Due, item)
			matched = true
		}
		if st.LastWrong != nil && !st.LastWrong.Before(windowStart) {
			c.RecentlyWrong = append(c.RecentlyWrong, item)
			matched = true
		}
		if st.Hard {
			c.HardFlagged = append(c.HardFlagged, item)
			matched = true
		}
		if !matched {
			c.SeenUnclassified = append(c.SeenUnclassified, item)
		}
	}
	return c
}
