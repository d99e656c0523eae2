package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

var day = entity.NewDate(2024, time.June, 10)

func runStatisticsContract(t *testing.T, repo repository.StatisticsRepository) {
	t.Helper()
	ctx := context.Background()

	got, err := repo.Find(ctx, "hola")
	if err != nil || got != nil {
		t.Fatalf("expected absent record, got %+v %v", got, err)
	}

	created, err := repo.Save(ctx, &entity.ItemStatistics{
		ItemID:       "hola",
		TimesSeen:    1,
		TimesCorrect: 1,
		Streak:       1,
		LastSeen:     entity.DatePtr(day),
		NextDue:      entity.DatePtr(day),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}

	if _, err := repo.Save(ctx, &entity.ItemStatistics{ItemID: "hola", TimesSeen: 9}); !errors.Is(err, entity.ErrStaleStatistics) {
		t.Fatalf("expected stale insert to fail, got %v", err)
	}

	update := created.Clone()
	update.TimesSeen = 2
	update.Level = 1
	update.Hard = true
	update.LastWrong = entity.DatePtr(day.AddDays(-1))
	update.NextDue = entity.DatePtr(day.AddDays(1))
	updated, err := repo.Save(ctx, &update)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != 2 {
		t.Fatalf("expected version 2, got %d", updated.Version)
	}

	if _, err := repo.Save(ctx, &update); !errors.Is(err, entity.ErrStaleStatistics) {
		t.Fatalf("expected stale update to fail, got %v", err)
	}

	found, err := repo.Find(ctx, "hola")
	if err != nil || found == nil {
		t.Fatalf("find: %+v %v", found, err)
	}
	if found.TimesSeen != 2 || found.Level != 1 || !found.Hard || found.Version != 2 {
		t.Fatalf("unexpected stored record %+v", found)
	}
	if found.NextDue == nil || !found.NextDue.Equal(day.AddDays(1)) {
		t.Fatalf("unexpected next due %v", found.NextDue)
	}
	if found.LastWrong == nil || !found.LastWrong.Equal(day.AddDays(-1)) {
		t.Fatalf("unexpected last wrong %v", found.LastWrong)
	}
	if found.LastSeen == nil || !found.LastSeen.Equal(day) {
		t.Fatalf("unexpected last seen %v", found.LastSeen)
	}

	if _, err := repo.Save(ctx, &entity.ItemStatistics{ItemID: "adios", TimesSeen: 1}); err != nil {
		t.Fatalf("create second: %v", err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].ItemID != "adios" || all[1].ItemID != "hola" {
		t.Fatalf("unexpected list %+v", all)
	}
	if all[0].NextDue != nil {
		t.Fatalf("expected nil next due to round-trip, got %v", all[0].NextDue)
	}

	if err := repo.Delete(ctx, "hola"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if got, _ := repo.Find(ctx, "hola"); got != nil {
		t.Fatalf("expected deleted record to be gone")
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if all, _ := repo.List(ctx); len(all) != 0 {
		t.Fatalf("expected empty store, got %d", len(all))
	}
}

func runActivityContract(t *testing.T, repo repository.ActivityRepository) {
	t.Helper()
	ctx := context.Background()

	for _, o := range []entity.Outcome{entity.OutcomeCorrect, entity.OutcomeCorrect, entity.OutcomeWrong, entity.OutcomeSkipped} {
		if err := repo.Record(ctx, day, o); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := repo.Record(ctx, day.AddDays(-1), entity.OutcomeWrong); err != nil {
		t.Fatalf("record yesterday: %v", err)
	}
	if err := repo.Put(ctx, entity.DailyActivity{Day: day.AddDays(-10), Reviews: 7, Correct: 7}); err != nil {
		t.Fatalf("put: %v", err)
	}

	all, err := repo.List(ctx, entity.Date{}, entity.Date{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 days, got %+v", all)
	}
	first := all[0]
	if !first.Day.Equal(day) || first.Reviews != 4 || first.Correct != 2 || first.Wrong != 1 || first.Skipped != 1 {
		t.Fatalf("unexpected tally %+v", first)
	}
	if !all[2].Day.Equal(day.AddDays(-10)) || all[2].Reviews != 7 {
		t.Fatalf("unexpected oldest day %+v", all[2])
	}

	window, err := repo.List(ctx, day.AddDays(-1), day.AddDays(-1))
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	if len(window) != 1 || window[0].Wrong != 1 {
		t.Fatalf("unexpected window %+v", window)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if all, _ := repo.List(ctx, entity.Date{}, entity.Date{}); len(all) != 0 {
		t.Fatalf("expected no activity, got %d", len(all))
	}
}
