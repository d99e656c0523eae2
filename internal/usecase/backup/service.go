package backup

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

const (
	formatVersion = 1

	TableStatistics = "item_statistics"
	TableActivity   = "daily_activity"

	maxLineBytes = 1 << 20
)

// Tables lists every table a backup may carry, in export order.
var Tables = []string{TableStatistics, TableActivity}

var errNoTablesSelected = errors.New("backup: no tables selected")

type ProgressReporter interface {
	StartTable(table string, total int)
	Increment(table string, delta int)
	FinishTable(table string)
}

type noopProgress struct{}

func (noopProgress) StartTable(string, int) {}
func (noopProgress) Increment(string, int)  {}
func (noopProgress) FinishTable(string)     {}

// Service streams learner progress to and from NDJSON.
type Service struct {
	stats    repository.StatisticsRepository
	activity repository.ActivityRepository
	clock    func() time.Time
}

// NewService constructs a backup service over the progress stores.
func NewService(stats repository.StatisticsRepository, activity repository.ActivityRepository) *Service {
	return &Service{stats: stats, activity: activity, clock: time.Now}
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	tables   []string
	reporter ProgressReporter
}

// WithTables restricts export to the provided table names.
func WithTables(tables []string) ExportOption {
	return func(cfg *exportConfig) {
		if len(tables) == 0 {
			return
		}
		cfg.tables = append([]string{}, tables...)
	}
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

type ImportOption func(*importConfig)

type importConfig struct {
	tables  []string
	replace bool
}

// WithImportTables restricts import to the provided table names.
func WithImportTables(tables []string) ImportOption {
	return func(cfg *importConfig) {
		if len(tables) == 0 {
			return
		}
		cfg.tables = append([]string{}, tables...)
	}
}

// WithReplace wipes the selected tables before the records are written.
func WithReplace(replace bool) ImportOption {
	return func(cfg *importConfig) {
		cfg.replace = replace
	}
}

type record struct {
	Type       string         `json:"type"`
	Version    int            `json:"version,omitempty"`
	ExportedAt *time.Time     `json:"exported_at,omitempty"`
	Tables     []string       `json:"tables,omitempty"`
	RowCounts  map[string]int `json:"row_counts,omitempty"`
	Payload    any            `json:"payload,omitempty"`
}

type rawRecord struct {
	Type       string          `json:"type"`
	Version    int             `json:"version"`
	ExportedAt *time.Time      `json:"exported_at"`
	Tables     []string        `json:"tables"`
	RowCounts  map[string]int  `json:"row_counts"`
	Payload    json.RawMessage `json:"payload"`
}

func (s *Service) Export(ctx context.Context, w io.Writer, opts ...ExportOption) error {
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := selectTables(cfg.tables)
	if err != nil {
		return err
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}

	rows := make(map[string][]any, len(tables))
	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		payloads, err := s.load(ctx, table)
		if err != nil {
			return fmt.Errorf("load table %s: %w", table, err)
		}
		rows[table] = payloads
		counts[table] = len(payloads)
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	now := s.clock().UTC()
	meta := record{
		Type:       "meta",
		Version:    formatVersion,
		ExportedAt: &now,
		Tables:     tables,
		RowCounts:  counts,
	}
	if err := writeRecord(writer, meta); err != nil {
		return err
	}

	for _, table := range tables {
		reporter.StartTable(table, counts[table])
		for _, payload := range rows[table] {
			if err := writeRecord(writer, record{Type: table, Payload: payload}); err != nil {
				return err
			}
			reporter.Increment(table, 1)
		}
		reporter.FinishTable(table)
	}
	return writer.Flush()
}

func (s *Service) load(ctx context.Context, table string) ([]any, error) {
	switch table {
	case TableStatistics:
		list, err := s.stats.List(ctx)
		if err != nil {
			return nil, err
		}
		slices.SortFunc(list, func(a, b entity.ItemStatistics) int { return strings.Compare(a.ItemID, b.ItemID) })
		out := make([]any, len(list))
		for i := range list {
			out[i] = list[i]
		}
		return out, nil
	case TableActivity:
		days, err := s.activity.List(ctx, entity.Date{}, entity.Date{})
		if err != nil {
			return nil, err
		}
		slices.Reverse(days)
		out := make([]any, len(days))
		for i := range days {
			out[i] = days[i]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("backup: unsupported table %q", table)
	}
}

// Import reads a whole backup before writing anything, so a malformed file
// leaves the stores untouched.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ...ImportOption) error {
	cfg := importConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := selectTables(cfg.tables)
	if err != nil {
		return err
	}

	var (
		metaSeen bool
		meta     rawRecord
		stats    []entity.ItemStatistics
		days     []entity.DailyActivity
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec rawRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("decode record on line %d: %w", lineNo, err)
		}
		if rec.Type == "meta" {
			metaSeen = true
			meta = rec
			continue
		}
		if !slices.Contains(tables, rec.Type) {
			// Skip records for tables not requested.
			continue
		}
		if len(rec.Payload) == 0 {
			return fmt.Errorf("backup: missing payload for table %s on line %d", rec.Type, lineNo)
		}
		switch rec.Type {
		case TableStatistics:
			var st entity.ItemStatistics
			if err := json.Unmarshal(rec.Payload, &st); err != nil {
				return fmt.Errorf("decode %s on line %d: %w", rec.Type, lineNo, err)
			}
			if strings.TrimSpace(st.ItemID) == "" {
				return fmt.Errorf("backup: %s on line %d has no item_id", rec.Type, lineNo)
			}
			stats = append(stats, st)
		case TableActivity:
			var day entity.DailyActivity
			if err := json.Unmarshal(rec.Payload, &day); err != nil {
				return fmt.Errorf("decode %s on line %d: %w", rec.Type, lineNo, err)
			}
			if day.Day.IsZero() {
				return fmt.Errorf("backup: %s on line %d has no day", rec.Type, lineNo)
			}
			days = append(days, day)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if !metaSeen {
		return errors.New("backup: missing meta record")
	}
	if meta.Version != formatVersion {
		return fmt.Errorf("backup: unsupported format version %d", meta.Version)
	}

	if cfg.replace {
		if err := s.truncate(ctx, tables); err != nil {
			return err
		}
	}
	for i := range stats {
		if err := s.restoreStatistics(ctx, stats[i]); err != nil {
			return err
		}
	}
	for _, day := range days {
		if err := s.activity.Put(ctx, day); err != nil {
			return fmt.Errorf("restore %s %s: %w", TableActivity, day.Day, err)
		}
	}
	return nil
}

func (s *Service) truncate(ctx context.Context, tables []string) error {
	for _, table := range tables {
		var err error
		switch table {
		case TableStatistics:
			err = s.stats.DeleteAll(ctx)
		case TableActivity:
			err = s.activity.DeleteAll(ctx)
		}
		if err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// restoreStatistics overwrites whatever is stored for the item.
func (s *Service) restoreStatistics(ctx context.Context, st entity.ItemStatistics) error {
	current, err := s.stats.Find(ctx, st.ItemID)
	if err != nil {
		return fmt.Errorf("load %s %s: %w", TableStatistics, st.ItemID, err)
	}
	st.Version = 0
	if current != nil {
		st.Version = current.Version
	}
	if _, err := s.stats.Save(ctx, &st); err != nil {
		return fmt.Errorf("restore %s %s: %w", TableStatistics, st.ItemID, err)
	}
	return nil
}

func selectTables(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return append([]string{}, Tables...), nil
	}
	set := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		n := strings.TrimSpace(strings.ToLower(name))
		if n == "" {
			continue
		}
		if !slices.Contains(Tables, n) {
			return nil, fmt.Errorf("backup: unsupported table %q", name)
		}
		set[n] = struct{}{}
	}
	if len(set) == 0 {
		return nil, errNoTablesSelected
	}
	out := make([]string, 0, len(set))
	for _, table := range Tables {
		if _, ok := set[table]; ok {
			out = append(out, table)
		}
	}
	return out, nil
}

func writeRecord(w io.Writer, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return nil
}
