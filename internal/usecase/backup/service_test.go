package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/eslsoft/vocdrill/internal/adapter/repository"
	"github.com/eslsoft/vocdrill/internal/entity"
)

type fixture struct {
	stats    *repository.MemoryStatisticsRepository
	activity *repository.MemoryActivityRepository
	svc      *Service
}

func newFixture() *fixture {
	stats := repository.NewMemoryStatisticsRepository()
	activity := repository.NewMemoryActivityRepository()
	svc := NewService(stats, activity)
	svc.clock = func() time.Time { return time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC) }
	return &fixture{stats: stats, activity: activity, svc: svc}
}

func seedData(t *testing.T, ctx context.Context, f *fixture) {
	t.Helper()
	day := entity.NewDate(2025, 1, 1)
	records := []entity.ItemStatistics{
		{ItemID: "apple", TimesSeen: 3, TimesCorrect: 2, TimesWrong: 1, Streak: 2, Level: 1, LastSeen: entity.DatePtr(day), NextDue: entity.DatePtr(day.AddDays(1)), LastWrong: entity.DatePtr(day.AddDays(-2))},
		{ItemID: "pear", Hard: true},
	}
	for i := range records {
		if _, err := f.stats.Save(ctx, &records[i]); err != nil {
			t.Fatalf("seed statistics: %v", err)
		}
	}
	for _, a := range []entity.DailyActivity{
		{Day: day.AddDays(-1), Reviews: 2, Correct: 1, Wrong: 1},
		{Day: day, Reviews: 1, Correct: 1},
	} {
		if err := f.activity.Put(ctx, a); err != nil {
			t.Fatalf("seed activity: %v", err)
		}
	}
}

type statSnapshot struct {
	ItemID                           string
	Seen, Correct, Wrong, Streak, Lv int
	LastSeen, NextDue, LastWrong     string
	Hard                             bool
}

func snapshotStats(t *testing.T, ctx context.Context, f *fixture) []statSnapshot {
	t.Helper()
	list, err := f.stats.List(ctx)
	if err != nil {
		t.Fatalf("list statistics: %v", err)
	}
	out := make([]statSnapshot, 0, len(list))
	for _, st := range list {
		out = append(out, statSnapshot{
			ItemID: st.ItemID, Seen: st.TimesSeen, Correct: st.TimesCorrect, Wrong: st.TimesWrong,
			Streak: st.Streak, Lv: st.Level,
			LastSeen: dateString(st.LastSeen), NextDue: dateString(st.NextDue), LastWrong: dateString(st.LastWrong),
			Hard: st.Hard,
		})
	}
	return out
}

func dateString(d *entity.Date) string {
	if d == nil {
		return "<nil>"
	}
	return d.String()
}

func snapshotActivity(t *testing.T, ctx context.Context, f *fixture) []entity.DailyActivity {
	t.Helper()
	days, err := f.activity.List(ctx, entity.Date{}, entity.Date{})
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	return days
}

func equalStats(a, b []statSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalActivity(a, b []entity.DailyActivity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Day.Equal(b[i].Day) || a[i].Reviews != b[i].Reviews || a[i].Correct != b[i].Correct ||
			a[i].Wrong != b[i].Wrong || a[i].Skipped != b[i].Skipped {
			return false
		}
	}
	return true
}

func TestServiceExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newFixture()
	seedData(t, ctx, src)

	var buf bytes.Buffer
	if err := src.svc.Export(ctx, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	dst := newFixture()
	if err := dst.svc.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if want, got := snapshotStats(t, ctx, src), snapshotStats(t, ctx, dst); !equalStats(want, got) {
		t.Fatalf("statistics mismatch after import:\nwant %#v\ngot  %#v", want, got)
	}
	if want, got := snapshotActivity(t, ctx, src), snapshotActivity(t, ctx, dst); !equalActivity(want, got) {
		t.Fatalf("activity mismatch after import:\nwant %#v\ngot  %#v", want, got)
	}

	// Importing again over existing rows overwrites instead of failing on versions.
	if err := dst.svc.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if got := snapshotStats(t, ctx, dst); len(got) != 2 {
		t.Fatalf("expected 2 records after re-import, got %d", len(got))
	}
}

func TestServiceExportMeta(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedData(t, ctx, f)

	var buf bytes.Buffer
	if err := f.svc.Export(ctx, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected meta + 4 records, got %d lines", len(lines))
	}
	var meta rawRecord
	if err := json.Unmarshal([]byte(lines[0]), &meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	if meta.Type != "meta" || meta.Version != formatVersion || meta.RowCounts[TableStatistics] != 2 || meta.RowCounts[TableActivity] != 2 {
		t.Fatalf("unexpected meta %#v", meta)
	}
	if meta.ExportedAt == nil || !meta.ExportedAt.Equal(time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected export time %v", meta.ExportedAt)
	}
	// Activity is exported oldest first.
	if !strings.Contains(lines[3], "2024-12-31") || !strings.Contains(lines[4], "2025-01-01") {
		t.Fatalf("unexpected activity order:\n%s\n%s", lines[3], lines[4])
	}
}

type recordingProgress struct {
	started  map[string]int
	counts   map[string]int
	finished []string
}

func (p *recordingProgress) StartTable(table string, total int) { p.started[table] = total }
func (p *recordingProgress) Increment(table string, delta int)  { p.counts[table] += delta }
func (p *recordingProgress) FinishTable(table string)           { p.finished = append(p.finished, table) }

func TestServiceExportTablesFilter(t *testing.T) {
	ctx := context.Background()
	src := newFixture()
	seedData(t, ctx, src)

	progress := &recordingProgress{started: map[string]int{}, counts: map[string]int{}}
	var buf bytes.Buffer
	if err := src.svc.Export(ctx, &buf, WithTables([]string{"item_statistics"}), WithProgressReporter(progress)); err != nil {
		t.Fatalf("filtered export failed: %v", err)
	}
	if progress.started[TableStatistics] != 2 || progress.counts[TableStatistics] != 2 || len(progress.finished) != 1 {
		t.Fatalf("unexpected progress %#v", progress)
	}

	dst := newFixture()
	if err := dst.svc.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("filtered import failed: %v", err)
	}
	if got := snapshotStats(t, ctx, dst); len(got) != 2 {
		t.Fatalf("expected statistics to be imported, got %#v", got)
	}
	if got := snapshotActivity(t, ctx, dst); len(got) != 0 {
		t.Fatalf("expected no activity, got %#v", got)
	}

	if err := src.svc.Export(ctx, &buf, WithTables([]string{"words"})); err == nil {
		t.Fatalf("expected unknown table to be rejected")
	}
	if err := src.svc.Export(ctx, &buf, WithTables([]string{" "})); err != errNoTablesSelected {
		t.Fatalf("expected errNoTablesSelected, got %v", err)
	}
}

func TestServiceImportReplace(t *testing.T) {
	ctx := context.Background()
	src := newFixture()
	seedData(t, ctx, src)
	var buf bytes.Buffer
	if err := src.svc.Export(ctx, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	dst := newFixture()
	extra := entity.ItemStatistics{ItemID: "stale", TimesSeen: 1}
	if _, err := dst.stats.Save(ctx, &extra); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := dst.svc.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("merge import failed: %v", err)
	}
	if got := snapshotStats(t, ctx, dst); len(got) != 3 {
		t.Fatalf("merge should keep existing rows, got %d", len(got))
	}

	if err := dst.svc.Import(ctx, bytes.NewReader(buf.Bytes()), WithReplace(true)); err != nil {
		t.Fatalf("replace import failed: %v", err)
	}
	if want, got := snapshotStats(t, ctx, src), snapshotStats(t, ctx, dst); !equalStats(want, got) {
		t.Fatalf("replace should mirror the backup:\nwant %#v\ngot  %#v", want, got)
	}
}

func TestServiceImportRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"missing meta": `{"type":"item_statistics","payload":{"item_id":"a","times_seen":1}}`,
		"bad version":  `{"type":"meta","version":9}`,
		"bad json":     `{"type":"meta","version":1}` + "\n{not json",
		"no payload":   `{"type":"meta","version":1}` + "\n" + `{"type":"daily_activity"}`,
		"no item id":   `{"type":"meta","version":1}` + "\n" + `{"type":"item_statistics","payload":{"times_seen":1}}`,
		"bad date":     `{"type":"meta","version":1}` + "\n" + `{"type":"daily_activity","payload":{"day":"yesterday"}}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			seedData(t, ctx, f)
			before := snapshotStats(t, ctx, f)
			if err := f.svc.Import(ctx, strings.NewReader(input), WithReplace(true)); err == nil {
				t.Fatalf("expected error")
			}
			if after := snapshotStats(t, ctx, f); !equalStats(before, after) {
				t.Fatalf("failed import must not touch the stores")
			}
		})
	}
}
