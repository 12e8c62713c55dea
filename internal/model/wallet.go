package model

// WalletRecord is the decrypted wallet payload. It exists only in memory
// during encrypt/decrypt and is never stored unencrypted.
type WalletRecord struct {
	Mnemonic     string `json:"mnemonic"`     // BIP-39 phrase
	Network      string `json:"network"`      // "mainnet" or "testnet"
	AddressKind  string `json:"addressKind"`  // "legacy", "p2sh-segwit", "segwit"
	Path         string `json:"path"`         // full leaf derivation path
	AccountXpub  string `json:"accountXpub"`  // account-level extended public key
	WIF          string `json:"wif"`          // leaf private key, WIF-encoded
	PublicKeyHex string `json:"publicKeyHex"` // leaf compressed public key
	Address      string `json:"address"`      // destination address
	CreatedAt    string `json:"createdAt"`
}
