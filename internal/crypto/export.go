package crypto

import (
	"encoding/json"
	"fmt"

	"wvt/internal/model"
)

// EncryptWallet encrypts a wallet record into a transportable export
// blob. password must be []byte for security (caller should zero it
// after use).
func EncryptWallet(record *model.WalletRecord, password []byte, opts DeriveOptions) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal wallet record: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	return encryptPayload(plaintext, password, opts)
}

// DecryptWallet decrypts an export blob back into a wallet record.
// Derivation and authentication failures both surface as
// ErrDecryptionFailed; format problems as ErrMalformedExport.
func DecryptWallet(blob string, password []byte) (*model.WalletRecord, error) {
	plaintext, err := decryptPayload(blob, password)
	if err != nil {
		return nil, err
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var record model.WalletRecord
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet record: %w", err)
	}
	return &record, nil
}

// EncryptText applies the identical envelope to an arbitrary text
// secret.
func EncryptText(secret string, password []byte, opts DeriveOptions) (string, error) {
	plaintext, err := json.Marshal(secret)
	if err != nil {
		return "", fmt.Errorf("failed to marshal secret: %w", err)
	}
	defer clear(plaintext)

	return encryptPayload(plaintext, password, opts)
}

// DecryptText is the inverse of EncryptText.
func DecryptText(blob string, password []byte) (string, error) {
	plaintext, err := decryptPayload(blob, password)
	if err != nil {
		return "", err
	}
	defer clear(plaintext)

	var secret string
	if err := json.Unmarshal(plaintext, &secret); err != nil {
		return "", fmt.Errorf("failed to unmarshal secret: %w", err)
	}
	return secret, nil
}

// encryptPayload derives a key, builds the version-1 header, binds the
// exact header bytes as associated data, and packs the envelope. Salt
// and IV are freshly generated on every call.
func encryptPayload(plaintext, password []byte, opts DeriveOptions) (string, error) {
	derived, err := DeriveKey(password, opts)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived.Key)

	iv, err := RandomBytes(ivLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	header := &ExportHeader{
		Version: ExportVersion,
		Kdf:     derived.Params,
		Salt:    derived.Salt,
		IV:      iv,
	}
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to encode header: %w", err)
	}

	ciphertext, err := Encrypt(derived.Key, iv, plaintext, headerBytes)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt payload: %w", err)
	}

	return SerializeExport(headerBytes, ciphertext)
}

// decryptPayload re-derives the key with the exact recorded KDF kind and
// parameters from the stored header - never with fresh selection - and
// authenticates the header bytes as associated data.
func decryptPayload(blob string, password []byte) ([]byte, error) {
	header, headerBytes, ciphertext, err := DeserializeExport(blob)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKeyWithParams(password, header.Salt, header.Kdf)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer clear(key)

	return Decrypt(key, header.IV, ciphertext, headerBytes)
}
