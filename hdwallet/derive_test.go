package hdwallet

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

// Reference mnemonic with published derivation vectors.
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := bip39.NewSeedWithErrorChecking(testMnemonic, "")
	require.NoError(t, err)
	return seed
}

func TestDeriveWalletSegwitVector(t *testing.T) {
	material, err := DeriveWallet(testSeed(t), KindSegwit, CoinTypeMainnet, DerivationIndexes{})
	require.NoError(t, err)

	require.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", material.Address)
	require.Equal(t, "KyZpNDKnfs94vbrwhJneDi77V6jF64PWPF8x5cdJb8ifgg2DUc9d", material.WIF)
	require.Equal(t, "0330d54fd0dd420a6e5f8d3624f5f3482cae350f79d5f0753bf5beef9c2d91af3c", material.PublicKeyHex)
	require.Equal(t, "m/84'/0'/0'/0/0", material.Path)
	require.Equal(t, "m/84'/0'/0'", material.AccountPath)
	require.Equal(t, "mainnet", material.Network)
}

func TestDeriveWalletLegacyVector(t *testing.T) {
	material, err := DeriveWallet(testSeed(t), KindLegacy, CoinTypeMainnet, DerivationIndexes{})
	require.NoError(t, err)

	require.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", material.Address)
	require.Equal(t, "xpub6BosfCnifzxcFwrSzQiqu2DBVTshkCXacvNsWGYJVVhhawA7d4R5WSWGFNbi8Aw6ZRc1brxMyWMzG3DSSSSoekkudhUd9yLb6qx39T9nMdj", material.AccountXpub)
	require.Equal(t, "m/44'/0'/0'/0/0", material.Path)
}

func TestDeriveWalletNestedSegwitVector(t *testing.T) {
	material, err := DeriveWallet(testSeed(t), KindNestedSegwit, CoinTypeMainnet, DerivationIndexes{})
	require.NoError(t, err)

	require.Equal(t, "37VucYSaXLCAsxYyAPfbSi9eh4iEcbShgf", material.Address)
	require.Equal(t, "m/49'/0'/0'/0/0", material.Path)
}

func TestDeriveWalletTestnet(t *testing.T) {
	material, err := DeriveWallet(testSeed(t), KindSegwit, CoinTypeTestnet, DerivationIndexes{})
	require.NoError(t, err)

	require.Equal(t, "testnet", material.Network)
	require.True(t, strings.HasPrefix(material.Address, "tb1"), "got %s", material.Address)
	require.True(t, strings.HasPrefix(material.AccountXpub, "tpub"), "got %s", material.AccountXpub)
	require.Equal(t, "m/84'/1'/0'/0/0", material.Path)
}

func TestDeriveWalletDeterministic(t *testing.T) {
	idx := DerivationIndexes{Account: 1, Change: 0, Index: 5}

	a, err := DeriveWallet(testSeed(t), KindSegwit, CoinTypeMainnet, idx)
	require.NoError(t, err)
	b, err := DeriveWallet(testSeed(t), KindSegwit, CoinTypeMainnet, idx)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestAccountXpubIsDepthThreeAndNeutered(t *testing.T) {
	material, err := DeriveWallet(testSeed(t), KindSegwit, CoinTypeMainnet, DerivationIndexes{})
	require.NoError(t, err)

	key, err := hdkeychain.NewKeyFromString(material.AccountXpub)
	require.NoError(t, err)
	require.EqualValues(t, 3, key.Depth())
	require.False(t, key.IsPrivate())
}

func TestDeriveByPathMatchesDeriveWallet(t *testing.T) {
	seed := testSeed(t)

	byIndexes, err := DeriveWallet(seed, KindSegwit, CoinTypeMainnet, DerivationIndexes{})
	require.NoError(t, err)

	byPath, err := DeriveByPath(seed, KindSegwit, CoinTypeMainnet, "m/84'/0'/0'/0/0")
	require.NoError(t, err)

	require.Equal(t, byIndexes.Address, byPath.Address)
	require.Equal(t, byIndexes.WIF, byPath.WIF)
	require.Equal(t, byIndexes.AccountXpub, byPath.AccountXpub)
}

func TestDeriveByPathTooShort(t *testing.T) {
	_, err := DeriveByPath(testSeed(t), KindSegwit, CoinTypeMainnet, "m/84'/0'")
	require.Error(t, err)
	require.Contains(t, err.Error(), "too short")
}

func TestDeriveWalletUnknownKind(t *testing.T) {
	_, err := DeriveWallet(testSeed(t), AddressKind("taproot"), CoinTypeMainnet, DerivationIndexes{})
	require.Error(t, err)
}

func TestDeriveWalletUnsupportedCoinType(t *testing.T) {
	_, err := DeriveWallet(testSeed(t), KindSegwit, 60, DerivationIndexes{})
	require.Error(t, err)
}

func TestKindFromString(t *testing.T) {
	kind, err := KindFromString("")
	require.NoError(t, err)
	require.Equal(t, KindSegwit, kind)

	kind, err = KindFromString("legacy")
	require.NoError(t, err)
	require.Equal(t, KindLegacy, kind)

	_, err = KindFromString("bech32m")
	require.Error(t, err)
}

func TestCoinTypeFromNetwork(t *testing.T) {
	ct, err := CoinTypeFromNetwork("")
	require.NoError(t, err)
	require.Equal(t, CoinTypeMainnet, ct)

	ct, err = CoinTypeFromNetwork("testnet")
	require.NoError(t, err)
	require.Equal(t, CoinTypeTestnet, ct)

	_, err = CoinTypeFromNetwork("regtest")
	require.Error(t, err)
}
