package crypto

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/smdv/password-vault/models"
)

// Derivation parameters. They match every hash already stored by earlier
// releases, so changing any of them invalidates existing accounts.
const (
	// passwordHashSalt is the fixed application-wide salt. There is no
	// per-user salt; stored hashes depend on this exact value.
	passwordHashSalt = "FG$SDKK"

	hashIterations = 1000
	hashBytes      = 24
)

// pbkdf2Hasher is the private implementation of [PasswordHasher] built on
// PBKDF2 with HMAC-SHA1.
type pbkdf2Hasher struct {
	salt       []byte
	iterations int
	keyLen     int
}

// NewPasswordHasher constructs a [PasswordHasher] with the application's
// fixed derivation parameters: PBKDF2-HMAC-SHA1, 1000 iterations, 24-byte
// output rendered as 48 lowercase hex characters.
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{
		salt:       []byte(passwordHashSalt),
		iterations: hashIterations,
		keyLen:     hashBytes,
	}
}

// Hash implements [PasswordHasher]. The derivation is pure CPU and cannot
// fail at runtime: SHA-1 is linked into the binary, so the "algorithm
// unavailable" failure mode of other platforms has no representation here.
func (h *pbkdf2Hasher) Hash(password string) models.HashOutput {
	key := pbkdf2.Key([]byte(password), h.salt, h.iterations, h.keyLen, sha1.New)
	return models.HashOutput(hex.EncodeToString(key))
}

// Verify implements [PasswordHasher]. The comparison is constant-time to
// avoid leaking how many leading characters matched.
func (h *pbkdf2Hasher) Verify(password string, stored models.HashOutput) bool {
	computed := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}
