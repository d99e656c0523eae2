package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// NewConnection opens the configured SQL database, applies sqlite pragmas and
// runs migrations. The memory driver has no connection and is rejected here.
func NewConnection(cfg *config.Config, logger *logrus.Logger) (*sqlx.DB, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var db *sqlx.DB
	switch driver {
	case config.DriverSQLite3, config.DriverSQLite:
		db, err = openSQLite(driver, dsn)
	case config.DriverPostgres:
		db, err = sqlx.Open(driver, dsn)
	case config.DriverPgx:
		db, err = openPgx(dsn, cfg.Database.LogSQL, logger)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if driver == config.DriverSQLite3 || driver == config.DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}

	var migrationLog *logrus.Entry
	if logger != nil {
		migrationLog = logger.WithField("component", "migrate")
	}
	if err := Migrate(ctx, db.DB, driver, gooseLogger(migrationLog)); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, func() {
		_ = db.Close()
	}, nil
}

func openSQLite(driver, dsn string) (*sqlx.DB, error) {
	if path := sqlitePath(dsn); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// sqlitePath extracts the file path of a sqlite DSN, or "" for in-memory databases.
func sqlitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}

func openPgx(dsn string, logSQL bool, logger *logrus.Logger) (*sqlx.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	if logSQL && logger != nil {
		entry := logger.WithField("component", "pgx")
		connCfg.Tracer = &tracelog.TraceLog{
			Logger: tracelog.LoggerFunc(func(_ context.Context, lvl tracelog.LogLevel, msg string, data map[string]any) {
				entry.WithFields(logrus.Fields(data)).WithField("pgx_level", lvl.String()).Debug(msg)
			}),
			LogLevel: tracelog.LogLevelTrace,
		}
	}
	return sqlx.NewDb(stdlib.OpenDB(*connCfg), config.DriverPgx), nil
}

// gooseLogger keeps migration output on the application logger.
func gooseLogger(entry *logrus.Entry) goose.Logger {
	if entry == nil {
		return nil
	}
	return &migrationLogger{entry: entry}
}

type migrationLogger struct {
	entry *logrus.Entry
}

func (l *migrationLogger) Printf(format string, v ...any) {
	l.entry.Infof(strings.TrimSpace(format), v...)
}

func (l *migrationLogger) Fatalf(format string, v ...any) {
	l.entry.Errorf(strings.TrimSpace(format), v...)
}
