package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

const (
	aeadKeyLen = 32
	ivLen      = 12
	tagLen     = 16
)

// ErrDecryptionFailed is the single generic error for every decrypt-side
// authentication problem (wrong key, tampered ciphertext, tampered AAD).
// Sub-checks are deliberately not distinguished to avoid handing an
// attacker a decryption oracle.
var ErrDecryptionFailed = errors.New("decryption failed: wrong password or corrupted data")

// Encrypt seals plaintext with AES-256-GCM and returns ciphertext with
// the 16-byte tag appended. The IV must be 12 fresh random bytes for
// every call; reusing an IV under the same key is a correctness
// violation. aad, when non-nil, is authenticated but not encrypted.
func Encrypt(key, iv, plaintext, aad []byte) ([]byte, error) {
	if len(key) != aeadKeyLen {
		return nil, fmt.Errorf("invalid key length: %d, want %d", len(key), aeadKeyLen)
	}
	if len(iv) != ivLen {
		return nil, fmt.Errorf("invalid IV length: %d, want %d", len(iv), ivLen)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM.Seal(nil, iv, plaintext, aad), nil
}

// Decrypt opens ciphertextWithTag. Any authentication failure, including
// malformed input, is reported as ErrDecryptionFailed.
func Decrypt(key, iv, ciphertextWithTag, aad []byte) ([]byte, error) {
	if len(key) != aeadKeyLen || len(iv) != ivLen || len(ciphertextWithTag) < tagLen {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := aesGCM.Open(nil, iv, ciphertextWithTag, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
