package hdwallet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/tyler-smith/go-bip39"

	"wvt/internal/crypto"
	"wvt/internal/model"
)

// WalletFileExt is the extension required for persisted exports.
const WalletFileExt = ".wvx"

const defaultEntropyBits = 256

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var fe *FileExistsError
	return errors.As(err, &fe)
}

// GenerateOptions tunes wallet generation.
type GenerateOptions struct {
	EntropyBits  int    // one of 128/160/192/224/256, default 256
	Passphrase   string // optional BIP-39 passphrase
	Kind         AddressKind
	CoinType     uint32
	Indexes      DerivationIndexes
	ExtraEntropy [][]byte             // mixed with the platform RNG output
	Derive       crypto.DeriveOptions // KDF policy for the export
}

// GenerateResult carries everything the caller needs after generation.
type GenerateResult struct {
	Record *model.WalletRecord
	Export string
	QR     string // base64 PNG of the receive address
}

// GenerateWallet creates a new wallet: secure entropy, structural
// validation, BIP-39 mnemonic, key derivation, and an encrypted export.
// password must be []byte for security (caller should zero it after use).
//
// If the entropy fails validation the violated rules are reported and
// the caller must regenerate; there is no silent retry loop.
func GenerateWallet(password []byte, opts GenerateOptions) (*GenerateResult, error) {
	bits := opts.EntropyBits
	if bits == 0 {
		bits = defaultEntropyBits
	}
	if bits%8 != 0 {
		return nil, fmt.Errorf("entropy bits must be a multiple of 8, got %d", bits)
	}

	entropy, err := crypto.RandomBytes(bits / 8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	// Extra caller-supplied entropy is folded in through the SHA-256
	// extractor; the result stays random as long as any one part is.
	if len(opts.ExtraEntropy) > 0 {
		parts := append([][]byte{entropy}, opts.ExtraEntropy...)
		mixed := crypto.MixEntropyParts(parts...)
		clear(entropy)
		entropy = mixed[:bits/8]
		defer clear(entropy)
	}

	report := crypto.ValidateEntropy(entropy, crypto.DefaultEntropyOptions())
	if !report.IsValid {
		return nil, fmt.Errorf("entropy failed validation, regenerate: %s",
			strings.Join(report.Errors, "; "))
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mnemonic: %w", err)
	}

	record, err := RestoreWallet(mnemonic, opts.Passphrase, opts.Kind, opts.CoinType, opts.Indexes)
	if err != nil {
		return nil, err
	}

	export, err := crypto.EncryptWallet(record, password, opts.Derive)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	qrCode, err := generateQRCode(record.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &GenerateResult{
		Record: record,
		Export: export,
		QR:     qrCode,
	}, nil
}

// RestoreWallet rebuilds a wallet record from an existing mnemonic.
// Deterministic: the same mnemonic, passphrase, and derivation options
// always produce identical key material.
func RestoreWallet(mnemonic, passphrase string, kind AddressKind, coinType uint32, idx DerivationIndexes) (*model.WalletRecord, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	defer clear(seed)

	material, err := DeriveWallet(seed, kind, coinType, idx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive wallet: %w", err)
	}

	return &model.WalletRecord{
		Mnemonic:     mnemonic,
		Network:      material.Network,
		AddressKind:  string(kind),
		Path:         material.Path,
		AccountXpub:  material.AccountXpub,
		WIF:          material.WIF,
		PublicKeyHex: material.PublicKeyHex,
		Address:      material.Address,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

// SaveExport writes an export blob to a .wvx file, refusing to
// overwrite a non-empty file.
func SaveExport(filePath, export string) error {
	if filepath.Ext(filePath) != WalletFileExt {
		return fmt.Errorf("file must have %s extension", WalletFileExt)
	}

	if fileInfo, err := os.Stat(filePath); err == nil {
		if fileInfo.Size() > 0 {
			return &FileExistsError{Message: "file is not empty"}
		}
	}

	if err := os.WriteFile(filePath, []byte(export), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadExport reads an export blob from a file.
func LoadExport(filePath string) (string, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New("file does not exist")
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return "", errors.New("file is empty")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
