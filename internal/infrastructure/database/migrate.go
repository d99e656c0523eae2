package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations for driver.
func Migrate(ctx context.Context, db *sql.DB, driver string, logger goose.Logger) error {
	dialect := "sqlite3"
	if driver == config.DriverPostgres || driver == config.DriverPgx {
		dialect = "postgres"
	}

	goose.SetBaseFS(migrations)
	if logger != nil {
		goose.SetLogger(logger)
	} else {
		goose.SetLogger(goose.NopLogger())
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
