package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrEmailTaken is returned when registration fails because a principal
	// with the same email (compared case-insensitively) already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Authenticate for both an unknown
	// email and a wrong password. The two cases are indistinguishable on
	// purpose: nothing may reveal whether an email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRecordNotFound is returned when a vault record is absent or is
	// owned by a different principal. The two cases are indistinguishable
	// on purpose; this is the tenant-isolation boundary failing closed.
	ErrRecordNotFound = errors.New("vault record not found")

	// ErrUnreadableSecret is returned when a stored secret cannot be
	// decrypted. The record exists; its secret field is to be treated as
	// unreadable, never as empty plaintext.
	ErrUnreadableSecret = errors.New("stored secret is unreadable")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
