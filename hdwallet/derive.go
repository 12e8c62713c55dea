package hdwallet

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"wvt/internal/common"
)

// AddressKind selects the script type and the BIP-44/49/84 purpose.
type AddressKind string

const (
	KindLegacy       AddressKind = "legacy"      // BIP-44, P2PKH
	KindNestedSegwit AddressKind = "p2sh-segwit" // BIP-49, P2SH-P2WPKH
	KindSegwit       AddressKind = "segwit"      // BIP-84, P2WPKH
)

// BIP-44 registered coin types.
const (
	CoinTypeMainnet uint32 = 0
	CoinTypeTestnet uint32 = 1
)

// DerivationIndexes locates a leaf under the account level.
type DerivationIndexes struct {
	Account uint32
	Change  uint32
	Index   uint32
}

// KeyMaterial is the derived wallet key set. Derivation is a pure
// function of (seed, path, network, address kind); identical inputs
// always yield identical material.
type KeyMaterial struct {
	WIF          string // leaf private key, WIF-encoded
	PublicKeyHex string // leaf compressed public key
	AccountXpub  string // account-level extended public key (depth 3)
	Path         string // full leaf derivation path
	AccountPath  string // account-level derivation path
	Address      string // destination address
	Network      string // "mainnet" or "testnet"
}

// DeriveWallet derives the leaf keypair, address, and account-level
// extended public key for the given seed. The returned xpub is always
// the account-level key, never the root or another parent that could
// expose sibling accounts.
func DeriveWallet(seed []byte, kind AddressKind, coinType uint32, idx DerivationIndexes) (*KeyMaterial, error) {
	purpose, err := purposeFor(kind)
	if err != nil {
		return nil, err
	}
	params, network, err := netParamsFor(coinType)
	if err != nil {
		return nil, err
	}

	indices := []uint32{
		common.HardenedOffset + purpose,
		common.HardenedOffset + coinType,
		common.HardenedOffset + idx.Account,
		idx.Change,
		idx.Index,
	}

	leaf, accountXpub, err := deriveIndices(seed, params, indices)
	if err != nil {
		return nil, err
	}
	defer leaf.Zero()

	material, err := leafMaterial(leaf, kind, params)
	if err != nil {
		return nil, err
	}

	material.AccountXpub = accountXpub
	material.Path = common.FormatPath(purpose, coinType, idx.Account, idx.Change, idx.Index)
	material.AccountPath = common.FormatAccountPath(purpose, coinType, idx.Account)
	material.Network = network
	return material, nil
}

// DeriveByPath derives wallet material at an explicit derivation path.
// The path needs at least three components so an account-level xpub can
// be computed.
func DeriveByPath(seed []byte, kind AddressKind, coinType uint32, path string) (*KeyMaterial, error) {
	if _, err := purposeFor(kind); err != nil {
		return nil, err
	}
	params, network, err := netParamsFor(coinType)
	if err != nil {
		return nil, err
	}

	indices, err := common.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}
	if len(indices) < 3 {
		return nil, fmt.Errorf("derivation path %q is too short: need at least 3 components", path)
	}

	leaf, accountXpub, err := deriveIndices(seed, params, indices)
	if err != nil {
		return nil, err
	}
	defer leaf.Zero()

	material, err := leafMaterial(leaf, kind, params)
	if err != nil {
		return nil, err
	}

	material.AccountXpub = accountXpub
	material.Path = path
	material.Network = network
	return material, nil
}

// deriveIndices walks the child indices from a fresh master key and
// returns the leaf extended key plus the neutered key at depth 3.
// Intermediate keys are zeroed before returning.
func deriveIndices(seed []byte, params *chaincfg.Params, indices []uint32) (*hdkeychain.ExtendedKey, string, error) {
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to derive master key: %w", err)
	}

	key := master
	accountXpub := ""
	for depth, index := range indices {
		child, err := key.Derive(index)
		if err != nil {
			key.Zero()
			return nil, "", fmt.Errorf("failed to derive child %d at depth %d: %w", index, depth, err)
		}
		key.Zero()
		key = child

		if depth == 2 {
			neutered, err := key.Neuter()
			if err != nil {
				key.Zero()
				return nil, "", fmt.Errorf("failed to neuter account key: %w", err)
			}
			accountXpub = neutered.String()
		}
	}
	return key, accountXpub, nil
}

// leafMaterial encodes the leaf key as WIF, compressed pubkey hex, and
// an address of the requested kind.
func leafMaterial(leaf *hdkeychain.ExtendedKey, kind AddressKind, params *chaincfg.Params) (*KeyMaterial, error) {
	privKey, err := leaf.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to extract private key: %w", err)
	}
	defer privKey.Zero()

	wif, err := btcutil.NewWIF(privKey, params, true)
	if err != nil {
		return nil, fmt.Errorf("failed to encode WIF: %w", err)
	}

	pubBytes := privKey.PubKey().SerializeCompressed()
	address, err := addressFor(kind, pubBytes, params)
	if err != nil {
		return nil, err
	}

	return &KeyMaterial{
		WIF:          wif.String(),
		PublicKeyHex: hex.EncodeToString(pubBytes),
		Address:      address,
	}, nil
}

func addressFor(kind AddressKind, pubBytes []byte, params *chaincfg.Params) (string, error) {
	pkHash := btcutil.Hash160(pubBytes)

	switch kind {
	case KindLegacy:
		addr, err := btcutil.NewAddressPubKeyHash(pkHash, params)
		if err != nil {
			return "", fmt.Errorf("failed to build P2PKH address: %w", err)
		}
		return addr.EncodeAddress(), nil
	case KindSegwit:
		addr, err := btcutil.NewAddressWitnessPubKeyHash(pkHash, params)
		if err != nil {
			return "", fmt.Errorf("failed to build P2WPKH address: %w", err)
		}
		return addr.EncodeAddress(), nil
	case KindNestedSegwit:
		// Redeem script: OP_0 <20-byte pubkey hash>
		redeemScript := append([]byte{0x00, 0x14}, pkHash...)
		addr, err := btcutil.NewAddressScriptHash(redeemScript, params)
		if err != nil {
			return "", fmt.Errorf("failed to build P2SH-P2WPKH address: %w", err)
		}
		return addr.EncodeAddress(), nil
	default:
		return "", fmt.Errorf("unknown address kind: %q", kind)
	}
}

func purposeFor(kind AddressKind) (uint32, error) {
	switch kind {
	case KindLegacy:
		return 44, nil
	case KindNestedSegwit:
		return 49, nil
	case KindSegwit:
		return 84, nil
	default:
		return 0, fmt.Errorf("unknown address kind: %q", kind)
	}
}

func netParamsFor(coinType uint32) (*chaincfg.Params, string, error) {
	switch coinType {
	case CoinTypeMainnet:
		return &chaincfg.MainNetParams, "mainnet", nil
	case CoinTypeTestnet:
		return &chaincfg.TestNet3Params, "testnet", nil
	default:
		return nil, "", errors.New("unsupported coin type: only mainnet (0) and testnet (1) are registered")
	}
}

// KindFromString validates a user-supplied address kind, defaulting to
// native segwit when empty.
func KindFromString(s string) (AddressKind, error) {
	switch s {
	case "":
		return KindSegwit, nil
	case string(KindLegacy), string(KindNestedSegwit), string(KindSegwit):
		return AddressKind(s), nil
	default:
		return "", fmt.Errorf("unknown address kind: %q", s)
	}
}

// CoinTypeFromNetwork maps a network name to its BIP-44 coin type,
// defaulting to mainnet when empty.
func CoinTypeFromNetwork(network string) (uint32, error) {
	switch network {
	case "", "mainnet":
		return CoinTypeMainnet, nil
	case "testnet":
		return CoinTypeTestnet, nil
	default:
		return 0, fmt.Errorf("unknown network: %q", network)
	}
}
