package crypto

import "github.com/smdv/password-vault/models"

// PasswordHasher produces the one-way, storage-safe representation of a
// login password. The output is deterministic: hashing the same password
// twice yields the same [models.HashOutput]. It is used only for equality
// comparison during authentication, never for encryption.
type PasswordHasher interface {
	// Hash derives the hash of password. The result is a lowercase hex
	// string of fixed length.
	Hash(password string) models.HashOutput

	// Verify recomputes the hash of password and compares it to stored in
	// constant time.
	Verify(password string, stored models.HashOutput) bool
}

// SecretCipher is the reversible symmetric cipher protecting vault secrets
// at rest. Decrypt is a complete inverse of Encrypt for every value Encrypt
// has produced under the same key.
type SecretCipher interface {
	// Encrypt turns plaintext into a hex-encoded [models.CipherText].
	Encrypt(plaintext string) (models.CipherText, error)

	// Decrypt recovers the plaintext from cipherText. It fails with
	// [ErrMalformedCipherText] when the input is not valid hex, is not a
	// whole number of cipher blocks, or carries invalid padding. The error
	// never contains plaintext.
	Decrypt(cipherText models.CipherText) (string, error)
}
