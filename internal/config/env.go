package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	"wvt/internal/crypto"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	Network        string `envconfig:"NETWORK" default:"mainnet"`
	AddressKind    string `envconfig:"ADDRESS_KIND" default:"segwit"`
	WalletFilePath string `envconfig:"WALLET_FILE_PATH" default:""`
	LogPath        string `envconfig:"LOG_PATH" default:""`
	LogDebug       bool   `envconfig:"LOG_DEBUG" default:"false"`

	// Key-derivation policy for newly created exports. Decryption always
	// follows the parameters recorded in the export header instead.
	KdfPreferArgon2    bool     `envconfig:"KDF_PREFER_ARGON2" default:"true"`
	KdfMemoryLadderMiB []uint32 `envconfig:"KDF_MEMORY_LADDER_MIB" default:"64,32,16"`
	KdfTimeCost        uint32   `envconfig:"KDF_TIME_COST" default:"3"`
	KdfParallelism     uint8    `envconfig:"KDF_PARALLELISM" default:"1"`
	KdfTargetMs        int      `envconfig:"KDF_TARGET_MS" default:"350"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetNetwork returns the default network for generated wallets
func GetNetwork() string {
	return Get().Network
}

// GetAddressKind returns the default address kind for generated wallets
func GetAddressKind() string {
	return Get().AddressKind
}

// GetWalletFilePath returns path to the .wvx export file, if configured
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// DeriveOptions returns the configured key-derivation policy for
// encrypting new exports.
func DeriveOptions() crypto.DeriveOptions {
	c := Get()
	return crypto.DeriveOptions{
		PreferArgon2:     c.KdfPreferArgon2,
		MemoryLadderMiB:  c.KdfMemoryLadderMiB,
		TimeCost:         c.KdfTimeCost,
		Parallelism:      c.KdfParallelism,
		FallbackTargetMs: c.KdfTargetMs,
	}
}

// PromptPassword prompts for a password in the terminal. The password is
// read without echoing (hidden input).
// Caller must zero the returned slice after use for security.
func PromptPassword(label string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, label)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
