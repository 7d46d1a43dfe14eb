package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier translates driver-specific failures into the conditions
// the repositories care about. Each backend ships its own implementation so
// that repository code never inspects driver error types directly.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint (duplicate email).
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a foreign key
	// constraint (vault record pointing at a missing principal).
	IsForeignKeyViolation(err error) bool
}

// SQLiteErrorClassifier implements [ErrorClassifier] for the mattn/go-sqlite3
// driver by inspecting the extended result code.
type SQLiteErrorClassifier struct{}

func (SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func (SQLiteErrorClassifier) IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// PostgresErrorClassifier implements [ErrorClassifier] for the pgx driver by
// inspecting the SQLSTATE code carried by *pgconn.PgError.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type PostgresErrorClassifier struct{}

func (PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

func (PostgresErrorClassifier) IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}
	return false
}
