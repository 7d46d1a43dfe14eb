package models

import "time"

// Principal represents a registered user account of the vault.
// Exactly one principal is active per running process at any time.
// Sensitive fields must never be exposed outside trusted boundaries.
type Principal struct {
	// UserID is the internal unique identifier of the principal,
	// assigned by the database at registration. It is positive and stable.
	UserID int64 `json:"user_id"`

	// Email is the unique login identifier. Uniqueness and lookups are
	// case-insensitive; the stored casing is preserved for display.
	Email string `json:"email"`

	// PasswordHash is the one-way hash of the login password.
	// It MUST be a KDF output, never plaintext, and is used only for
	// equality comparison during authentication.
	PasswordHash HashOutput `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Principal model.
func (p Principal) TableName() string {
	return "principals"
}
