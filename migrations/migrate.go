// Package migrations owns the database schema. SQL files are embedded per
// dialect because the auto-increment and timestamp syntax differs between
// the sqlite single-device default and the optional postgres backend.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialectDirs maps a database/sql driver name to the embedded migration
// directory and the goose dialect it requires.
var dialectDirs = map[string]struct {
	dir     string
	dialect string
}{
	"sqlite3": {dir: "sqlite", dialect: "sqlite3"},
	"pgx":     {dir: "postgres", dialect: "postgres"},
}

// Migrate brings the schema for the given driver up to date.
func Migrate(db *sql.DB, driver string) error {
	target, ok := dialectDirs[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	sub, err := fs.Sub(embedMigrations, target.dir)
	if err != nil {
		return fmt.Errorf("migration error locating %s migrations: %w", target.dir, err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
