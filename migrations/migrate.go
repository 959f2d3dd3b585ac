// Package migrations holds the embedded goose migrations for the users and
// posts tables. The SQL sticks to types both postgres and sqlite accept.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// goose dialect names per database/sql driver name.
var dialects = map[string]string{
	"pgx":     "pgx",
	"sqlite3": "sqlite3",
}

// Migrate applies all pending migrations. driverName is the database/sql
// driver the connection was opened with ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driverName string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driverName]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driverName)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
