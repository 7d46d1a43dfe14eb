package store

// Table and column names shared by the repository query builders. They must
// stay in sync with the embedded migrations.
const (
	tablePrincipals = "principals"

	colUserID       = "user_id"
	colEmail        = "email"
	colPasswordHash = "password_hash"

	tableVaultRecords = "vault_records"

	colRecordID     = "record_id"
	colOwnerID      = "owner_id"
	colName         = "name"
	colSecretCipher = "secret_cipher"
	colCreatedAt    = "created_at"
	colUpdatedAt    = "updated_at"
)
