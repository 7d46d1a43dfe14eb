package store

import (
	"context"

	"github.com/smdv/password-vault/models"
)

// PrincipalRepository persists user accounts. Password material crosses its
// boundary raw exactly once per call and is hashed before touching the
// database.
type PrincipalRepository interface {
	// Register creates a new principal and returns its assigned id.
	// A duplicate email (case-insensitive) yields [ErrEmailTaken].
	Register(ctx context.Context, email, rawPassword string) (int64, error)

	// Authenticate returns the principal id when email and rawPassword
	// match a stored account. Unknown email and wrong password both yield
	// [ErrInvalidCredentials].
	Authenticate(ctx context.Context, email, rawPassword string) (int64, error)
}

// VaultRepository persists vault records. Every operation is scoped by
// ownerID; a record owned by another principal behaves exactly like a
// missing record. Secrets are encrypted before writes and decrypted on
// single-record reads.
type VaultRepository interface {
	// List returns the owner's records ordered by name, case-insensitively.
	// The records carry ciphertext only; listings never decrypt.
	List(ctx context.Context, ownerID int64) ([]models.VaultRecord, error)

	// Get returns one record with its secret decrypted, or
	// [ErrRecordNotFound] when it is absent or foreign-owned.
	Get(ctx context.Context, recordID, ownerID int64) (models.VaultRecord, error)

	// Insert encrypts rawSecret and stores a new record for ownerID,
	// returning the assigned record id.
	Insert(ctx context.Context, ownerID int64, name, rawSecret string) (int64, error)

	// Update rewrites name and secret of an owned record and returns the
	// number of affected rows: 0 when the record is absent or foreign.
	Update(ctx context.Context, recordID, ownerID int64, name, rawSecret string) (int64, error)

	// Delete removes an owned record and returns the number of affected
	// rows: 0 when the record is absent or foreign.
	Delete(ctx context.Context, recordID, ownerID int64) (int64, error)
}
