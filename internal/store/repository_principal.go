package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/smdv/password-vault/internal/crypto"
	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/models"
)

// principalRepository is the SQL-backed implementation of
// [PrincipalRepository]. It works against either connected backend through
// the [DB] handle and its error classifier.
type principalRepository struct {
	db     *DB
	hasher crypto.PasswordHasher
	logger *logger.Logger
}

// NewPrincipalRepository constructs a [PrincipalRepository] backed by the
// provided database connection, password hasher and logger.
func NewPrincipalRepository(db *DB, hasher crypto.PasswordHasher, logger *logger.Logger) PrincipalRepository {
	logger.Debug().Msg("creating principal repository")
	return &principalRepository{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

// Register hashes rawPassword and persists a new principal.
//
// Error handling:
//   - unique violation on email → [ErrEmailTaken]
//   - any other driver-level error → wrapped [ErrExecutingStatement]
func (r *principalRepository) Register(ctx context.Context, email, rawPassword string) (int64, error) {
	log := logger.FromContext(ctx)

	passwordHash := r.hasher.Hash(rawPassword)

	qb := r.db.Builder().
		Insert(tablePrincipals).
		Columns(colEmail, colPasswordHash).
		Values(email, string(passwordHash))

	id, err := r.db.InsertWithID(ctx, qb, colUserID)
	if err != nil {
		if r.db.classifier.IsUniqueViolation(err) {
			log.Debug().Str("func", "*principalRepository.Register").Msg("duplicate email rejected")
			return 0, ErrEmailTaken
		}
		log.Err(err).Str("func", "*principalRepository.Register").Msg("error inserting principal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Authenticate looks the principal up by email (case-insensitively) and
// verifies rawPassword against the stored hash in constant time.
//
// Both failure modes collapse into [ErrInvalidCredentials]: the caller must
// not be able to tell an unknown email from a wrong password.
func (r *principalRepository) Authenticate(ctx context.Context, email, rawPassword string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(colUserID, colPasswordHash).
		From(tablePrincipals).
		Where("lower("+colEmail+") = lower(?)", email).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*principalRepository.Authenticate").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		userID     int64
		storedHash string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID, &storedHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("func", "*principalRepository.Authenticate").Msg("error querying principal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !r.hasher.Verify(rawPassword, models.HashOutput(storedHash)) {
		return 0, ErrInvalidCredentials
	}

	return userID, nil
}
