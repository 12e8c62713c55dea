package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"wvt/internal/model"
)

func testRecord() *model.WalletRecord {
	return &model.WalletRecord{
		Mnemonic:     "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		Network:      "mainnet",
		AddressKind:  "segwit",
		Path:         "m/84'/0'/0'/0/0",
		AccountXpub:  "xpub6CatWdiZiodmUeTDp8LT5or8nmbKNcuyvz7WyksVFkKB4RHwCD3XKbKpEhJtYDuDu7rBZZaDWbHxWoPoDwfXJvcB8QEgQSpGjQCC6Z9B6Vk",
		WIF:          "KyZpNDKnfs94vbrwhJneDi77V6jF64PWPF8x5cdJb8ifgg2DUc9d",
		PublicKeyHex: "0330d54fd0dd420a6e5f8d3624f5f3482cae350f79d5f0753bf5beef9c2d91af3c",
		Address:      "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu",
		CreatedAt:    "2026-08-31T12:00:00Z",
	}
}

func TestWalletExportRoundtrip(t *testing.T) {
	record := testRecord()
	password := []byte("correct horse battery staple")

	blob, err := EncryptWallet(record, password, fastArgonOptions(nil))
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	restored, err := DecryptWallet(blob, password)
	require.NoError(t, err)
	require.Equal(t, record, restored)
}

func TestWalletExportWrongPassword(t *testing.T) {
	blob, err := EncryptWallet(testRecord(), []byte("right"), fastArgonOptions(nil))
	require.NoError(t, err)

	_, err = DecryptWallet(blob, []byte("wrong"))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestWalletExportPbkdf2Roundtrip(t *testing.T) {
	password := []byte("password123")
	opts := DeriveOptions{PreferArgon2: false, FallbackIterations: 60000}

	blob, err := EncryptWallet(testRecord(), password, opts)
	require.NoError(t, err)

	header, _, _, err := DeserializeExport(blob)
	require.NoError(t, err)
	require.Equal(t, KdfPbkdf2, header.Kdf.Kind)
	require.Equal(t, 60000, header.Kdf.Pbkdf2.Iterations)

	restored, err := DecryptWallet(blob, password)
	require.NoError(t, err)
	require.Equal(t, testRecord(), restored)
}

func TestWalletExportFreshSaltAndIV(t *testing.T) {
	password := []byte("pw")

	first, err := EncryptWallet(testRecord(), password, fastArgonOptions(nil))
	require.NoError(t, err)
	second, err := EncryptWallet(testRecord(), password, fastArgonOptions(nil))
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	headerA, _, _, err := DeserializeExport(first)
	require.NoError(t, err)
	headerB, _, _, err := DeserializeExport(second)
	require.NoError(t, err)

	require.NotEqual(t, headerA.Salt, headerB.Salt)
	require.NotEqual(t, headerA.IV, headerB.IV)
}

// Flipping any single byte of the decoded envelope must break decryption,
// whether the flip lands in the header (AAD), the ciphertext, or the tag.
func TestWalletExportDetectsAnyByteFlip(t *testing.T) {
	password := []byte("pw")
	blob, err := EncryptWallet(testRecord(), password, fastArgonOptions(nil))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	for i := 2; i < len(raw); i += 7 {
		mutated := append([]byte{}, raw...)
		mutated[i] ^= 0x01

		_, err := DecryptWallet(base64.StdEncoding.EncodeToString(mutated), password)
		require.Error(t, err, "byte flip at offset %d went undetected", i)
	}
}

func TestDecryptWalletMalformedBlob(t *testing.T) {
	_, err := DecryptWallet("%%%not base64%%%", []byte("pw"))
	require.ErrorIs(t, err, ErrMalformedExport)
}

func TestTextSecretRoundtrip(t *testing.T) {
	password := []byte("pw")
	secret := "xprv-or-any-other-sensitive-string"

	blob, err := EncryptText(secret, password, fastArgonOptions(nil))
	require.NoError(t, err)

	restored, err := DecryptText(blob, password)
	require.NoError(t, err)
	require.Equal(t, secret, restored)

	_, err = DecryptText(blob, []byte("wrong"))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptHonorsStoredKdfParams(t *testing.T) {
	password := []byte("password123")

	opts := DeriveOptions{
		PreferArgon2:    true,
		MemoryLadderMiB: []uint32{16},
		TimeCost:        2,
		Parallelism:     1,
	}
	blob, err := EncryptWallet(testRecord(), password, opts)
	require.NoError(t, err)

	header, _, _, err := DeserializeExport(blob)
	require.NoError(t, err)
	require.Equal(t, KdfArgon2id, header.Kdf.Kind)
	require.Equal(t, uint32(16), header.Kdf.Argon2id.MemoryMiB)
	require.Equal(t, uint32(2), header.Kdf.Argon2id.TimeCost)

	// Decryption reads cost parameters from the header, so the caller
	// needs no knowledge of the encryption-time settings.
	restored, err := DecryptWallet(blob, password)
	require.NoError(t, err)
	require.Equal(t, testRecord(), restored)
}
