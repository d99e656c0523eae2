package repository

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// StatisticsRepository persists per-item scheduling state.
type StatisticsRepository interface {
	// Find returns nil without error when the item has no record yet.
	Find(ctx context.Context, itemID string) (*entity.ItemStatistics, error)
	List(ctx context.Context) ([]entity.ItemStatistics, error)
	// Save writes stats if the stored version still equals stats.Version
	// (0 meaning "no record yet") and returns the record with its new
	// version. A mismatch yields entity.ErrStaleStatistics.
	Save(ctx context.Context, stats *entity.ItemStatistics) (*entity.ItemStatistics, error)
	Delete(ctx context.Context, itemID string) error
	DeleteAll(ctx context.Context) error
}

// ActivityRepository keeps per-day answer tallies used for streaks and history.
type ActivityRepository interface {
	Record(ctx context.Context, day entity.Date, outcome entity.Outcome) error
	// List returns days in [from, to], newest first. A zero bound is open.
	List(ctx context.Context, from, to entity.Date) ([]entity.DailyActivity, error)
	// Put replaces the tally of one day.
	Put(ctx context.Context, activity entity.DailyActivity) error
	DeleteAll(ctx context.Context) error
}
