package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
)

type statisticsRow struct {
	ItemID       string         `db:"item_id"`
	TimesSeen    int            `db:"times_seen"`
	TimesCorrect int            `db:"times_correct"`
	TimesWrong   int            `db:"times_wrong"`
	Streak       int            `db:"streak"`
	Level        int            `db:"level"`
	LastSeen     sql.NullString `db:"last_seen"`
	NextDue      sql.NullString `db:"next_due"`
	LastWrong    sql.NullString `db:"last_wrong"`
	Hard         bool           `db:"hard"`
	Version      int64          `db:"version"`
	UpdatedAt    string         `db:"updated_at"`
}

type activityRow struct {
	Day     string `db:"day"`
	Reviews int    `db:"reviews"`
	Correct int    `db:"correct"`
	Wrong   int    `db:"wrong"`
	Skipped int    `db:"skipped"`
}

func toStatisticsRow(s *entity.ItemStatistics) statisticsRow {
	return statisticsRow{
		ItemID:       s.ItemID,
		TimesSeen:    s.TimesSeen,
		TimesCorrect: s.TimesCorrect,
		TimesWrong:   s.TimesWrong,
		Streak:       s.Streak,
		Level:        s.Level,
		LastSeen:     nullDate(s.LastSeen),
		NextDue:      nullDate(s.NextDue),
		LastWrong:    nullDate(s.LastWrong),
		Hard:         s.Hard,
		Version:      s.Version,
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (r statisticsRow) toEntity() (*entity.ItemStatistics, error) {
	lastSeen, err := parseNullDate(r.LastSeen)
	if err != nil {
		return nil, fmt.Errorf("item %s last_seen: %w", r.ItemID, err)
	}
	nextDue, err := parseNullDate(r.NextDue)
	if err != nil {
		return nil, fmt.Errorf("item %s next_due: %w", r.ItemID, err)
	}
	lastWrong, err := parseNullDate(r.LastWrong)
	if err != nil {
		return nil, fmt.Errorf("item %s last_wrong: %w", r.ItemID, err)
	}
	var updatedAt time.Time
	if r.UpdatedAt != "" {
		if updatedAt, err = time.Parse(time.RFC3339Nano, r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("item %s updated_at: %w", r.ItemID, err)
		}
	}
	return &entity.ItemStatistics{
		ItemID:       r.ItemID,
		TimesSeen:    r.TimesSeen,
		TimesCorrect: r.TimesCorrect,
		TimesWrong:   r.TimesWrong,
		Streak:       r.Streak,
		Level:        r.Level,
		LastSeen:     lastSeen,
		NextDue:      nextDue,
		LastWrong:    lastWrong,
		Hard:         r.Hard,
		Version:      r.Version,
		UpdatedAt:    updatedAt,
	}, nil
}

func (r activityRow) toEntity() (entity.DailyActivity, error) {
	day, err := entity.ParseDate(r.Day)
	if err != nil {
		return entity.DailyActivity{}, err
	}
	return entity.DailyActivity{Day: day, Reviews: r.Reviews, Correct: r.Correct, Wrong: r.Wrong, Skipped: r.Skipped}, nil
}

func nullDate(d *entity.Date) sql.NullString {
	if d == nil || d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func parseNullDate(s sql.NullString) (*entity.Date, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
