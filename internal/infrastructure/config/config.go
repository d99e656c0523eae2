package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. VOCDRILL_STUDY_DAILY_GOAL.
const EnvPrefix = "VOCDRILL"

// Supported database drivers.
const (
	DriverSQLite3  = "sqlite3"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Study    StudyConfig    `mapstructure:"study"`
	Remind   RemindConfig   `mapstructure:"remind"`
}

// DatabaseConfig selects the statistics store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StudyConfig holds the corpus location and queue defaults.
type StudyConfig struct {
	Corpus    string `mapstructure:"corpus"`
	Sheet     string `mapstructure:"sheet"`
	DailyGoal int    `mapstructure:"daily_goal"`
	Seed      int64  `mapstructure:"seed"`
}

// RemindConfig configures the daily reminder job.
type RemindConfig struct {
	At string `mapstructure:"at"`
}

// Load reads configuration from an optional config file, a .env file and
// environment variables, in increasing order of precedence. Flags bound to
// viper keys win over all of them.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if viper.ConfigFileUsed() == "" {
		viper.SetConfigName("vocdrill")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vocdrill"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("database.driver", DriverSQLite3)
	viper.SetDefault("database.dsn", "data/vocdrill.db")
	viper.SetDefault("database.log_sql", false)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("study.corpus", "words.json")
	viper.SetDefault("study.sheet", "")
	viper.SetDefault("study.daily_goal", 20)
	viper.SetDefault("study.seed", 0)

	viper.SetDefault("remind.at", "09:00")
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	if _, err := c.DatabaseDriver(); err != nil {
		return err
	}
	if c.Study.DailyGoal < 1 {
		return fmt.Errorf("study.daily_goal must be positive, got %d", c.Study.DailyGoal)
	}
	if strings.TrimSpace(c.Study.Corpus) == "" {
		return errors.New("study.corpus is required")
	}
	return nil
}

// DatabaseDriver returns the normalized driver name.
func (c *Config) DatabaseDriver() (string, error) {
	switch strings.ToLower(strings.TrimSpace(c.Database.Driver)) {
	case "", DriverSQLite3:
		return DriverSQLite3, nil
	case DriverSQLite, "modernc":
		return DriverSQLite, nil
	case DriverPostgres, "postgresql", "pq":
		return DriverPostgres, nil
	case DriverPgx:
		return DriverPgx, nil
	case DriverMemory, "mem":
		return DriverMemory, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the DSN, requiring one for server databases.
func (c *Config) DatabaseURL() (string, error) {
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}
	dsn := strings.TrimSpace(c.Database.DSN)
	if dsn == "" && driver != DriverMemory {
		return "", fmt.Errorf("database.dsn is required for driver %s", driver)
	}
	return dsn, nil
}
