package entity

import "time"

// Mastery levels run from LevelNew to LevelMax.
const (
	LevelNew      = 0
	LevelLearned  = 1
	LevelMastered = 4
	LevelMax      = 5
	LevelCount    = LevelMax + 1
)

var levelNames = [LevelCount]string{"New", "Learning", "Familiar", "Known", "Strong", "Mastered"}

// LevelName returns the display name of a mastery level.
func LevelName(level int) string {
	if level < LevelNew || level > LevelMax {
		return "Unknown"
	}
	return levelNames[level]
}

// ItemStatistics is the learner's scheduling state for one vocabulary item.
// An absent record means the item is new at level 0.
type ItemStatistics struct {
	ItemID       string    `json:"item_id"`
	TimesSeen    int       `json:"times_seen"`
	TimesCorrect int       `json:"times_correct"`
	TimesWrong   int       `json:"times_wrong"`
	Streak       int       `json:"streak"`
	Level        int       `json:"level"`
	LastSeen     *Date     `json:"last_seen,omitempty"`
	NextDue      *Date     `json:"next_due,omitempty"`
	LastWrong    *Date     `json:"last_wrong,omitempty"`
	Hard         bool      `json:"hard"`
	Version      int64     `json:"version"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewItemStatistics returns the implicit record of an item that was never seen.
func NewItemStatistics(itemID string) ItemStatistics {
	return ItemStatistics{ItemID: itemID}
}

// Seen reports whether the item was presented at least once.
func (s *ItemStatistics) Seen() bool {
	return s != nil && s.TimesSeen > 0
}

// Clone returns a deep copy.
func (s ItemStatistics) Clone() ItemStatistics {
	s.LastSeen = CloneDate(s.LastSeen)
	s.NextDue = CloneDate(s.NextDue)
	s.LastWrong = CloneDate(s.LastWrong)
	return s
}

// ItemProgress pairs a corpus item with its statistics for listings.
type ItemProgress struct {
	Item  VocabularyItem `json:"item"`
	Stats ItemStatistics `json:"stats"`
}
