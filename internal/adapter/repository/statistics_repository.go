package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

const statisticsColumns = `item_id, times_seen, times_correct, times_wrong, streak, level,
	last_seen, next_due, last_wrong, hard, version, updated_at`

const insertStatistics = `INSERT INTO item_statistics (` + statisticsColumns + `)
	VALUES (:item_id, :times_seen, :times_correct, :times_wrong, :streak, :level,
	        :last_seen, :next_due, :last_wrong, :hard, :version, :updated_at)
	ON CONFLICT (item_id) DO NOTHING`

const updateStatistics = `UPDATE item_statistics SET
	times_seen = :times_seen, times_correct = :times_correct, times_wrong = :times_wrong,
	streak = :streak, level = :level, last_seen = :last_seen, next_due = :next_due,
	last_wrong = :last_wrong, hard = :hard, version = :version, updated_at = :updated_at
	WHERE item_id = :item_id AND version = :expected_version`

type StatisticsRepository struct {
	sqlStore
	clock func() time.Time
}

// NewStatisticsRepository constructs an sqlx-backed repository. The schema
// must already be migrated.
func NewStatisticsRepository(db *sqlx.DB, opts ...Option) repository.StatisticsRepository {
	return &StatisticsRepository{sqlStore: newSQLStore(db, opts), clock: time.Now}
}

func (r *StatisticsRepository) Find(ctx context.Context, itemID string) (*entity.ItemStatistics, error) {
	query := r.db.Rebind(`SELECT ` + statisticsColumns + ` FROM item_statistics WHERE item_id = ?`)
	r.trace(ctx, query, itemID)

	var row statisticsRow
	if err := r.db.GetContext(ctx, &row, query, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find statistics %s: %w", itemID, err)
	}
	return row.toEntity()
}

func (r *StatisticsRepository) List(ctx context.Context) ([]entity.ItemStatistics, error) {
	query := `SELECT ` + statisticsColumns + ` FROM item_statistics ORDER BY item_id`
	r.trace(ctx, query)

	var rows []statisticsRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	out := make([]entity.ItemStatistics, 0, len(rows))
	for _, row := range rows {
		st, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, *st)
	}
	return out, nil
}

func (r *StatisticsRepository) Save(ctx context.Context, stats *entity.ItemStatistics) (*entity.ItemStatistics, error) {
	if stats == nil || stats.ItemID == "" {
		return nil, entity.ErrInvalidItem
	}
	next := stats.Clone()
	expected := next.Version
	next.Version = expected + 1
	next.UpdatedAt = r.clock().UTC()

	row := toStatisticsRow(&next)
	var (
		res sql.Result
		err error
	)
	if expected == 0 {
		r.trace(ctx, insertStatistics, row.ItemID)
		res, err = r.db.NamedExecContext(ctx, insertStatistics, row)
	} else {
		r.trace(ctx, updateStatistics, row.ItemID, expected)
		res, err = r.db.NamedExecContext(ctx, updateStatistics, struct {
			statisticsRow
			ExpectedVersion int64 `db:"expected_version"`
		}{row, expected})
	}
	if err != nil {
		return nil, fmt.Errorf("save statistics %s: %w", stats.ItemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("save statistics %s: %w", stats.ItemID, err)
	}
	if affected == 0 {
		return nil, entity.ErrStaleStatistics
	}
	return &next, nil
}

func (r *StatisticsRepository) Delete(ctx context.Context, itemID string) error {
	query := r.db.Rebind(`DELETE FROM item_statistics WHERE item_id = ?`)
	r.trace(ctx, query, itemID)
	if _, err := r.db.ExecContext(ctx, query, itemID); err != nil {
		return fmt.Errorf("delete statistics %s: %w", itemID, err)
	}
	return nil
}

func (r *StatisticsRepository) DeleteAll(ctx context.Context) error {
	const query = `DELETE FROM item_statistics`
	r.trace(ctx, query)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("delete all statistics: %w", err)
	}
	return nil
}
