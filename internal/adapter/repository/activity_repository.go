package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

const recordActivity = `INSERT INTO daily_activity (day, reviews, correct, wrong, skipped)
	VALUES (?, 1, ?, ?, ?)
	ON CONFLICT (day) DO UPDATE SET
		reviews = daily_activity.reviews + 1,
		correct = daily_activity.correct + excluded.correct,
		wrong = daily_activity.wrong + excluded.wrong,
		skipped = daily_activity.skipped + excluded.skipped`

const putActivity = `INSERT INTO daily_activity (day, reviews, correct, wrong, skipped)
	VALUES (:day, :reviews, :correct, :wrong, :skipped)
	ON CONFLICT (day) DO UPDATE SET
		reviews = excluded.reviews,
		correct = excluded.correct,
		wrong = excluded.wrong,
		skipped = excluded.skipped`

type ActivityRepository struct {
	sqlStore
}

// NewActivityRepository constructs an sqlx-backed activity log.
func NewActivityRepository(db *sqlx.DB, opts ...Option) repository.ActivityRepository {
	return &ActivityRepository{sqlStore: newSQLStore(db, opts)}
}

func (r *ActivityRepository) Record(ctx context.Context, day entity.Date, outcome entity.Outcome) error {
	var tally entity.DailyActivity
	tally.Add(outcome)
	query := r.db.Rebind(recordActivity)
	r.trace(ctx, query, day.String(), outcome.String())
	if _, err := r.db.ExecContext(ctx, query, day.String(), tally.Correct, tally.Wrong, tally.Skipped); err != nil {
		return fmt.Errorf("record activity %s: %w", day, err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, from, to entity.Date) ([]entity.DailyActivity, error) {
	var (
		where []string
		args  []any
	)
	if !from.IsZero() {
		where = append(where, "day >= ?")
		args = append(args, from.String())
	}
	if !to.IsZero() {
		where = append(where, "day <= ?")
		args = append(args, to.String())
	}
	query := `SELECT day, reviews, correct, wrong, skipped FROM daily_activity`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query = r.db.Rebind(query + ` ORDER BY day DESC`)
	r.trace(ctx, query, args...)

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	out := make([]entity.DailyActivity, 0, len(rows))
	for _, row := range rows {
		a, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("list activity: %w", err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *ActivityRepository) Put(ctx context.Context, activity entity.DailyActivity) error {
	if activity.Day.IsZero() {
		return fmt.Errorf("put activity: missing day")
	}
	row := activityRow{
		Day:     activity.Day.String(),
		Reviews: activity.Reviews,
		Correct: activity.Correct,
		Wrong:   activity.Wrong,
		Skipped: activity.Skipped,
	}
	r.trace(ctx, putActivity, row.Day)
	if _, err := r.db.NamedExecContext(ctx, putActivity, row); err != nil {
		return fmt.Errorf("put activity %s: %w", row.Day, err)
	}
	return nil
}

func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	const query = `DELETE FROM daily_activity`
	r.trace(ctx, query)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("delete all activity: %w", err)
	}
	return nil
}
