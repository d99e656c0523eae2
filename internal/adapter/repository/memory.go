package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

// MemoryStatisticsRepository keeps statistics in process memory. It backs the
// "memory" database driver and mirrors the SQL version checks.
type MemoryStatisticsRepository struct {
	mu    sync.Mutex
	items map[string]entity.ItemStatistics
	clock func() time.Time
}

func NewMemoryStatisticsRepository() *MemoryStatisticsRepository {
	return &MemoryStatisticsRepository{items: make(map[string]entity.ItemStatistics), clock: time.Now}
}

var _ repository.StatisticsRepository = (*MemoryStatisticsRepository)(nil)

func (r *MemoryStatisticsRepository) Find(_ context.Context, itemID string) (*entity.ItemStatistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	c := st.Clone()
	return &c, nil
}

func (r *MemoryStatisticsRepository) List(_ context.Context) ([]entity.ItemStatistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.ItemStatistics, 0, len(r.items))
	for _, st := range r.items {
		out = append(out, st.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *MemoryStatisticsRepository) Save(_ context.Context, stats *entity.ItemStatistics) (*entity.ItemStatistics, error) {
	if stats == nil || stats.ItemID == "" {
		return nil, entity.ErrInvalidItem
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var current int64
	if existing, ok := r.items[stats.ItemID]; ok {
		current = existing.Version
	}
	if current != stats.Version {
		return nil, entity.ErrStaleStatistics
	}
	next := stats.Clone()
	next.Version++
	next.UpdatedAt = r.clock().UTC()
	r.items[next.ItemID] = next
	out := next.Clone()
	return &out, nil
}

func (r *MemoryStatisticsRepository) Delete(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	return nil
}

func (r *MemoryStatisticsRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]entity.ItemStatistics)
	return nil
}

// MemoryActivityRepository is the in-memory activity log.
type MemoryActivityRepository struct {
	mu   sync.Mutex
	days map[entity.Date]entity.DailyActivity
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{days: make(map[entity.Date]entity.DailyActivity)}
}

var _ repository.ActivityRepository = (*MemoryActivityRepository)(nil)

func (r *MemoryActivityRepository) Record(_ context.Context, day entity.Date, outcome entity.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.days[day]
	a.Day = day
	a.Add(outcome)
	r.days[day] = a
	return nil
}

func (r *MemoryActivityRepository) List(_ context.Context, from, to entity.Date) ([]entity.DailyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.DailyActivity, 0, len(r.days))
	for day, a := range r.days {
		if !from.IsZero() && day.Before(from) {
			continue
		}
		if !to.IsZero() && day.After(to) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.After(out[j].Day) })
	return out, nil
}

func (r *MemoryActivityRepository) Put(_ context.Context, activity entity.DailyActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days[activity.Day] = activity
	return nil
}

func (r *MemoryActivityRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days = make(map[entity.Date]entity.DailyActivity)
	return nil
}
