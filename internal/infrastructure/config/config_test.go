package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite3, cfg.Database.Driver)
	assert.Equal(t, "data/vocdrill.db", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Study.DailyGoal)
	assert.Equal(t, "words.json", cfg.Study.Corpus)
	assert.Equal(t, "09:00", cfg.Remind.At)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VOCDRILL_STUDY_DAILY_GOAL", "15")
	t.Setenv("VOCDRILL_DATABASE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Study.DailyGoal)
	driver, err := cfg.DatabaseDriver()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, driver)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("study:\n  corpus: spanish.csv\n  daily_goal: 8\nlog:\n  format: json\n"), 0o600))
	viper.SetConfigFile(path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "spanish.csv", cfg.Study.Corpus)
	assert.Equal(t, 8, cfg.Study.DailyGoal)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigFromHomeDirectory(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "vocdrill")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vocdrill.yaml"), []byte("study:\n  daily_goal: 12\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Study.DailyGoal)
	assert.Equal(t, filepath.Join(dir, "vocdrill.yaml"), viper.ConfigFileUsed())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("VOCDRILL_STUDY_DAILY_GOAL", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDriverAliases(t *testing.T) {
	cases := map[string]string{
		"":           DriverSQLite3,
		"SQLite3":    DriverSQLite3,
		"modernc":    DriverSQLite,
		"postgresql": DriverPostgres,
		"pgx":        DriverPgx,
		"mem":        DriverMemory,
	}
	for in, want := range cases {
		cfg := Config{Database: DatabaseConfig{Driver: in}}
		got, err := cfg.DatabaseDriver()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	cfg := Config{Database: DatabaseConfig{Driver: "oracle"}}
	_, err := cfg.DatabaseDriver()
	assert.Error(t, err)
}
