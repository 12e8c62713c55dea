package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func aeadFixture(t *testing.T) (key, iv []byte) {
	t.Helper()
	key, err := RandomBytes(32)
	require.NoError(t, err)
	iv, err = RandomBytes(12)
	require.NoError(t, err)
	return key, iv
}

func TestEncryptDecryptRoundtrip(t *testing.T) {
	key, iv := aeadFixture(t)
	plaintext := []byte("attack at dawn")
	aad := []byte(`{"version":1}`)

	ciphertext, err := Encrypt(key, iv, plaintext, aad)
	require.NoError(t, err)
	require.Len(t, ciphertext, len(plaintext)+tagLen)

	decrypted, err := Decrypt(key, iv, ciphertext, aad)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestDecryptWrongKey(t *testing.T) {
	key, iv := aeadFixture(t)
	ciphertext, err := Encrypt(key, iv, []byte("secret"), nil)
	require.NoError(t, err)

	otherKey, err := RandomBytes(32)
	require.NoError(t, err)

	_, err = Decrypt(otherKey, iv, ciphertext, nil)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	key, iv := aeadFixture(t)
	ciphertext, err := Encrypt(key, iv, []byte("secret"), nil)
	require.NoError(t, err)

	ciphertext[0] ^= 0x01
	_, err = Decrypt(key, iv, ciphertext, nil)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptTamperedAAD(t *testing.T) {
	key, iv := aeadFixture(t)
	ciphertext, err := Encrypt(key, iv, []byte("secret"), []byte("header-a"))
	require.NoError(t, err)

	_, err = Decrypt(key, iv, ciphertext, []byte("header-b"))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptRejectsBadSizes(t *testing.T) {
	key, iv := aeadFixture(t)

	_, err := Encrypt(key[:16], iv, []byte("x"), nil)
	require.Error(t, err)

	_, err = Encrypt(key, iv[:8], []byte("x"), nil)
	require.Error(t, err)
}

func TestDecryptRejectsBadSizes(t *testing.T) {
	key, iv := aeadFixture(t)

	_, err := Decrypt(key[:16], iv, make([]byte, 32), nil)
	require.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = Decrypt(key, iv[:8], make([]byte, 32), nil)
	require.ErrorIs(t, err, ErrDecryptionFailed)

	// Shorter than a tag cannot be a valid sealed message.
	_, err = Decrypt(key, iv, make([]byte, tagLen-1), nil)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptEmptyPlaintext(t *testing.T) {
	key, iv := aeadFixture(t)

	ciphertext, err := Encrypt(key, iv, nil, nil)
	require.NoError(t, err)
	require.Len(t, ciphertext, tagLen)

	decrypted, err := Decrypt(key, iv, ciphertext, nil)
	require.NoError(t, err)
	require.Empty(t, decrypted)
}
