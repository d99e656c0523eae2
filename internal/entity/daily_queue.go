package entity

// Bucket names one section of the daily queue. Buckets are listed in
// precedence order: an item eligible for several lands in the first.
type Bucket int

const (
	BucketDue Bucket = iota
	BucketRecentlyWrong
	BucketHardFlagged
	BucketNew
	BucketMixedReview
)

// Buckets lists every bucket in precedence order.
var Buckets = []Bucket{BucketDue, BucketRecentlyWrong, BucketHardFlagged, BucketNew, BucketMixedReview}

func (b Bucket) String() string {
	switch b {
	case BucketDue:
		return "due"
	case BucketRecentlyWrong:
		return "recently_wrong"
	case BucketHardFlagged:
		return "hard_flagged"
	case BucketNew:
		return "new"
	case BucketMixedReview:
		return "mixed_review"
	default:
		return "unknown"
	}
}

// DailyQueue is the prioritized study list for one day.
type DailyQueue struct {
	Due              []VocabularyItem `json:"due"`
	RecentlyWrong    []VocabularyItem `json:"recently_wrong"`
	HardFlagged      []VocabularyItem `json:"hard_flagged"`
	New              []VocabularyItem `json:"new"`
	MixedReview      []VocabularyItem `json:"mixed_review"`
	Total            int              `json:"total"`
	EstimatedMinutes int              `json:"estimated_minutes"`
}

// Items returns the list backing bucket b.
func (q *DailyQueue) Items(b Bucket) []VocabularyItem {
	switch b {
	case BucketDue:
		return q.Due
	case BucketRecentlyWrong:
		return q.RecentlyWrong
	case BucketHardFlagged:
		return q.HardFlagged
	case BucketNew:
		return q.New
	case BucketMixedReview:
		return q.MixedReview
	default:
		return nil
	}
}

// Flatten concatenates all buckets in precedence order.
func (q *DailyQueue) Flatten() []VocabularyItem {
	out := make([]VocabularyItem, 0, q.Total)
	for _, b := range Buckets {
		out = append(out, q.Items(b)...)
	}
	return out
}
