package models

import "time"

// VaultRecord is one stored site credential: a display name plus an
// encrypted secret. Every record belongs to exactly one principal; a record
// is only ever visible to, or mutable by, its owner.
type VaultRecord struct {
	// RecordID is the unique identifier of the record, assigned on insert.
	RecordID int64 `json:"record_id"`

	// OwnerID references the owning principal. It is set from the active
	// session at insert time and is immutable afterwards.
	OwnerID int64 `json:"-"`

	// Name is the display label of the credential (e.g. "bank").
	Name string `json:"name"`

	// Secret is the decrypted secret. Populated only on single-record
	// reads; empty in listings. Never persisted.
	Secret string `json:"secret,omitempty"`

	// SecretCipherText is the encrypted, storage-safe form of the secret.
	SecretCipherText CipherText `json:"-"`

	// CreatedAt and UpdatedAt track the record lifecycle.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultRecord model.
func (v VaultRecord) TableName() string {
	return "vault_records"
}
