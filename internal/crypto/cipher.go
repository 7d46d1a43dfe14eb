package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/smdv/password-vault/models"
)

// secretKey is the fixed application-wide AES-128 key protecting stored
// secrets. It is not derived per user and not derived from the login
// password: records stay readable after a password change.
const secretKey = "R$HGSWDKEYPVSMD$" // 16 bytes

// ErrMalformedCipherText is returned by Decrypt when the stored ciphertext
// is not valid hex, is not a whole number of AES blocks, or unpads to
// garbage. Callers treat the field as unreadable; they must not crash and
// must not substitute plaintext.
var ErrMalformedCipherText = errors.New("malformed ciphertext")

// aesCipher is the private implementation of [SecretCipher]: AES-128 in ECB
// mode with PKCS#7 padding, hex-encoded for storage.
//
// ECB with a static key means identical plaintexts encrypt to identical
// ciphertexts across records and across runs. That weakness is preserved
// deliberately: every record written by earlier releases must remain
// decryptable, and no migration path exists for re-encrypting them.
type aesCipher struct {
	block cipher.Block
}

// NewSecretCipher constructs the application [SecretCipher] under the fixed
// key. The only possible construction failure is an invalid key length,
// which would indicate a corrupted build rather than a runtime condition.
func NewSecretCipher() (SecretCipher, error) {
	block, err := aes.NewCipher([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return &aesCipher{block: block}, nil
}

// Encrypt implements [SecretCipher]. The plaintext is PKCS#7-padded to a
// whole number of blocks, encrypted block by block, and hex-encoded.
// Encrypting the empty string yields one full padding block.
func (c *aesCipher) Encrypt(plaintext string) (models.CipherText, error) {
	padded := pkcs7Pad([]byte(plaintext), c.block.BlockSize())

	encrypted := make([]byte, len(padded))
	for i := 0; i < len(padded); i += c.block.BlockSize() {
		c.block.Encrypt(encrypted[i:i+c.block.BlockSize()], padded[i:i+c.block.BlockSize()])
	}

	return models.CipherText(hex.EncodeToString(encrypted)), nil
}

// Decrypt implements [SecretCipher]. It fails closed on any structural
// problem with the input; the error carries no plaintext and no key
// material.
func (c *aesCipher) Decrypt(cipherText models.CipherText) (string, error) {
	encrypted, err := hex.DecodeString(string(cipherText))
	if err != nil {
		return "", fmt.Errorf("%w: not valid hex", ErrMalformedCipherText)
	}

	blockSize := c.block.BlockSize()
	if len(encrypted) == 0 || len(encrypted)%blockSize != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of the block size", ErrMalformedCipherText, len(encrypted))
	}

	decrypted := make([]byte, len(encrypted))
	for i := 0; i < len(encrypted); i += blockSize {
		c.block.Decrypt(decrypted[i:i+blockSize], encrypted[i:i+blockSize])
	}

	plaintext, err := pkcs7Unpad(decrypted, blockSize)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// pkcs7Pad appends 1..blockSize padding bytes, each holding the padding
// length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad validates and strips PKCS#7 padding. data must already be a
// non-empty multiple of blockSize.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrMalformedCipherText)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: invalid padding", ErrMalformedCipherText)
		}
	}

	return data[:len(data)-padLen], nil
}
