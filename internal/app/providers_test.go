package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
)

func TestProvideStoresMemory(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "memory"}}

	stores, cleanup, err := provideStores(cfg, logger)
	if err != nil {
		t.Fatalf("provideStores: %v", err)
	}
	defer cleanup()

	st := entity.NewItemStatistics("hola")
	if _, err := provideStatistics(stores).Save(context.Background(), &st); err != nil {
		t.Fatalf("save: %v", err)
	}
	if provideActivity(stores) == nil {
		t.Fatalf("expected activity store")
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("expected a warning about volatile storage")
	}
}

func TestProvideStoresSQLite(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "progress.db"),
		LogSQL: true,
	}}

	stores, cleanup, err := provideStores(cfg, logger)
	if err != nil {
		t.Fatalf("provideStores: %v", err)
	}
	defer cleanup()

	if err := stores.Activity.Record(context.Background(), entity.NewDate(2024, 1, 1), entity.OutcomeCorrect); err != nil {
		t.Fatalf("record: %v", err)
	}
}

func TestProvideRandIsSeeded(t *testing.T) {
	cfg := &config.Config{Study: config.StudyConfig{Seed: 42}}
	a, b := provideRand(cfg), provideRand(cfg)
	for i := 0; i < 5; i++ {
		if a.Int63() != b.Int63() {
			t.Fatalf("same seed must give the same sequence")
		}
	}
}

func TestProvideCorpus(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "words.json")
	body := `[{"source":"hola","target":"hello","category":"greetings"}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	c, err := provideCorpus(&config.Config{Study: config.StudyConfig{Corpus: path}}, logger)
	if err != nil {
		t.Fatalf("provideCorpus: %v", err)
	}
	if _, err := c.Get(context.Background(), "hola"); err != nil {
		t.Fatalf("get: %v", err)
	}

	if _, err := provideCorpus(&config.Config{Study: config.StudyConfig{Corpus: filepath.Join(t.TempDir(), "missing.json")}}, logger); err == nil {
		t.Fatalf("expected missing corpus to fail")
	}
}

func TestProvideReminderValidatesTime(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{Study: config.StudyConfig{DailyGoal: 10}, Remind: config.RemindConfig{At: "nine"}}
	if _, err := provideReminder(cfg, nil, logger); err == nil {
		t.Fatalf("expected invalid reminder time to fail")
	}
}
