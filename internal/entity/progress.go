package entity

// ProgressSummary aggregates learner progress over the whole corpus.
type ProgressSummary struct {
	TotalItems   int                `json:"total_items"`
	Learned      int                `json:"learned"`
	Mastered     int                `json:"mastered"`
	InProgress   int                `json:"in_progress"`
	New          int                `json:"new"`
	DueToday     int                `json:"due_today"`
	TotalSeen    int                `json:"total_seen"`
	TotalCorrect int                `json:"total_correct"`
	Accuracy     int                `json:"accuracy"`
	Levels       [LevelCount]int    `json:"levels"`
	Categories   []CategoryProgress `json:"categories"`
	Streak       int                `json:"streak"`
}

// CategoryProgress counts items per category.
type CategoryProgress struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Learned  int    `json:"learned"`
}

// DailyActivity tallies the answers given on one calendar day.
type DailyActivity struct {
	Day     Date `json:"day"`
	Reviews int  `json:"reviews"`
	Correct int  `json:"correct"`
	Wrong   int  `json:"wrong"`
	Skipped int  `json:"skipped"`
}

// Add counts one answer.
func (a *DailyActivity) Add(outcome Outcome) {
	a.Reviews++
	switch outcome {
	case OutcomeCorrect:
		a.Correct++
	case OutcomeWrong:
		a.Wrong++
	case OutcomeSkipped:
		a.Skipped++
	}
}
