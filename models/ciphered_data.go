package models

type (
	// CipherText is a hex string holding the encrypted form of a secret.
	// The database stores it opaquely and never sees the plaintext.
	CipherText string

	// HashOutput is a lowercase hex string holding the irreversible hash
	// of a login password. Used only for equality comparison.
	HashOutput string
)
