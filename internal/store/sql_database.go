package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/smdv/password-vault/internal/config"
	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/migrations"
)

// Driver names accepted by [Connect]. They double as database/sql driver
// names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB wraps the raw connection together with the driver-specific pieces the
// repositories need: an error classifier and the right placeholder format.
type DB struct {
	*sql.DB
	driver     string
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Connect opens the backend selected by cfg.Driver. The sqlite backend is
// the single-device default; postgres is the optional shared deployment.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate brings the schema up to date for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns a squirrel statement builder using the placeholder format
// the connected driver expects.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// InsertWithID executes qb and returns the generated primary key. Postgres
// has no LastInsertId, so the insert gains a RETURNING clause there; sqlite
// reports the id through the driver result.
func (db *DB) InsertWithID(ctx context.Context, qb sq.InsertBuilder, idColumn string) (int64, error) {
	if db.driver == DriverPostgres {
		query, args, err := qb.Suffix("RETURNING " + idColumn).ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err = db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}
