package service

import (
	"context"

	"github.com/smdv/password-vault/models"
)

// Gateway is the public façade of the vault and the only surface the UI
// collaborator talks to. Every vault operation is scoped to the currently
// authenticated principal; callers can never supply an owner id.
type Gateway interface {
	// Login authenticates and activates a session, returning the principal
	// id. Failure is opaque: [ErrAuthenticationFailed] regardless of cause.
	Login(ctx context.Context, email, password string) (int64, error)

	// Logout drops the active session. Safe to call when not logged in.
	Logout()

	// Register creates a new account. It does not log the principal in.
	Register(ctx context.Context, email, password string) (int64, error)

	// RestoreSession adopts a previously persisted principal id, typically
	// at process startup. A non-positive id is ignored.
	RestoreSession(userID int64)

	// ListRecords returns the active principal's records ordered by name.
	ListRecords(ctx context.Context) ([]models.VaultRecord, error)

	// GetRecord returns one owned record with the secret decrypted.
	GetRecord(ctx context.Context, recordID int64) (models.VaultRecord, error)

	// AddRecord stores a new credential for the active principal.
	AddRecord(ctx context.Context, name, secret string) (int64, error)

	// UpdateRecord rewrites an owned record; false when it is absent or
	// foreign.
	UpdateRecord(ctx context.Context, recordID int64, name, secret string) (bool, error)

	// DeleteRecord removes an owned record; false when it is absent or
	// foreign.
	DeleteRecord(ctx context.Context, recordID int64) (bool, error)

	// Query resolves a logical address: the collection address lists all
	// owned records, a record address yields a one-element slice with the
	// secret decrypted.
	Query(ctx context.Context, addr models.Address) ([]models.VaultRecord, error)

	// Subscribe registers a change observer. The returned cancel func must
	// be called when the observer goes away.
	Subscribe() (<-chan models.ChangeEvent, func())
}
