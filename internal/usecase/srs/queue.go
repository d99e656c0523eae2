package srs

import (
	"math"
	"math/rand"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// MinutesPerItem is the study time budgeted for one queued item.
const MinutesPerItem = 0.5

// BuildDailyQueue assembles today's queue. Due, recently-wrong and hard items
// are always included in full; new and mixed-review items only fill what is
// left of dailyGoal. Each item lands in the highest-precedence bucket it
// qualifies for, and every bucket is shuffled with rng.
func BuildDailyQueue(items []entity.VocabularyItem, stats map[string]entity.ItemStatistics, dailyGoal int, today entity.Date, rng *rand.Rand) entity.DailyQueue {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := Classify(items, stats, today)
	placed := make(map[string]struct{}, len(items))

	var q entity.DailyQueue
	q.Due = shuffle(place(c.Due, placed), rng)
	q.RecentlyWrong = shuffle(place(c.RecentlyWrong, placed), rng)
	q.HardFlagged = shuffle(place(c.HardFlagged, placed), rng)
	priority := len(q.Due) + len(q.RecentlyWrong) + len(q.HardFlagged)

	newBudget := max(0, dailyGoal-priority)
	q.New = place(sample(c.New, newBudget, rng), placed)

	mixedBudget := max(0, dailyGoal-priority-len(q.New))
	q.MixedReview = place(sample(c.SeenUnclassified, mixedBudget, rng), placed)

	q.Total = priority + len(q.New) + len(q.MixedReview)
	q.EstimatedMinutes = EstimateMinutes(q.Total)
	return q
}

// SessionQueue flattens the queue in bucket order and interleaves it by category.
func SessionQueue(q entity.DailyQueue) []entity.VocabularyItem {
	return Interleave(q.Flatten())
}

// EstimateMinutes converts an item count into whole study minutes.
func EstimateMinutes(total int) int {
	return int(math.Ceil(float64(total) * MinutesPerItem))
}

// place drops items already claimed by an earlier bucket and claims the rest.
func place(items []entity.VocabularyItem, placed map[string]struct{}) []entity.VocabularyItem {
	out := make([]entity.VocabularyItem, 0, len(items))
	for _, item := range items {
		if _, dup := placed[item.ID]; dup {
			continue
		}
		placed[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// sample returns up to n items chosen uniformly without replacement.
func sample(items []entity.VocabularyItem, n int, rng *rand.Rand) []entity.VocabularyItem {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	cp := shuffle(append([]entity.VocabularyItem(nil), items...), rng)
	if len(cp) > n {
		cp = cp[:n]
	}
	return cp
}

func shuffle(items []entity.VocabularyItem, rng *rand.Rand) []entity.VocabularyItem {
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items
}
