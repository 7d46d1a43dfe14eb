package store

import (
	"github.com/smdv/password-vault/internal/crypto"
	"github.com/smdv/password-vault/internal/logger"
)

// Repositories bundles the persistence layer handed to the service tier.
type Repositories struct {
	Principals PrincipalRepository
	Vault      VaultRepository
}

// NewRepositories wires both repositories onto a shared DB handle.
func NewRepositories(db *DB, hasher crypto.PasswordHasher, cipher crypto.SecretCipher, log *logger.Logger) *Repositories {
	return &Repositories{
		Principals: NewPrincipalRepository(db, hasher, log),
		Vault:      NewVaultRepository(db, cipher, log),
	}
}
