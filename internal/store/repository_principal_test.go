package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"

	"github.com/smdv/password-vault/internal/crypto"
	"github.com/smdv/password-vault/internal/logger"
)

func newTestPrincipalRepo(t *testing.T) (*principalRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &principalRepository{
		db: &DB{
			DB:         db,
			driver:     DriverSQLite,
			classifier: SQLiteErrorClassifier{},
			logger:     l,
		},
		hasher: crypto.NewPasswordHasher(),
		logger: l,
	}
	return repo, mock, db
}

func uniqueViolation() error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
}

func TestRegister_Success(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO principals").
		WithArgs("alice@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Register(context.Background(), "alice@example.com", "Wonderland1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id=1, got %d", id)
	}
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	hashed := string(crypto.NewPasswordHasher().Hash("Wonderland1"))

	// the second insert argument must be the hash, not the raw password
	mock.ExpectExec("INSERT INTO principals").
		WithArgs("alice@example.com", hashed).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if _, err := repo.Register(context.Background(), "alice@example.com", "Wonderland1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO principals").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(uniqueViolation())

	_, err := repo.Register(context.Background(), "alice@example.com", "Wonderland1")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO principals").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Register(context.Background(), "alice@example.com", "Wonderland1")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	storedHash := string(crypto.NewPasswordHasher().Hash("secret"))
	rows := sqlmock.NewRows([]string{"user_id", "password_hash"}).AddRow(7, storedHash)

	mock.ExpectQuery("SELECT user_id, password_hash FROM principals").
		WithArgs("user@example.com").
		WillReturnRows(rows)

	id, err := repo.Authenticate(context.Background(), "user@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id=7, got %d", id)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	storedHash := string(crypto.NewPasswordHasher().Hash("secret"))
	rows := sqlmock.NewRows([]string{"user_id", "password_hash"}).AddRow(7, storedHash)

	mock.ExpectQuery("SELECT user_id, password_hash FROM principals").
		WillReturnRows(rows)

	_, err := repo.Authenticate(context.Background(), "user@example.com", "not-the-secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail_SameOutcomeAsWrongPassword(t *testing.T) {
	repo, mock, db := newTestPrincipalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, password_hash FROM principals").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Authenticate(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
