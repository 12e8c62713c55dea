package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrNoSecureRandom is returned when no cryptographically secure random
// source is available on the host. Wallet generation must not proceed.
var ErrNoSecureRandom = errors.New("no secure random source available")

// randomProvider is one attempt in the ordered list of random sources.
// Fill must either fill buf completely with secure random bytes or fail.
type randomProvider struct {
	name string
	fill func(buf []byte) error
}

// Providers are tried in order. There is no non-cryptographic fallback:
// if every provider fails, RandomBytes fails.
var randomProviders = []randomProvider{
	{
		name: "crypto/rand",
		fill: func(buf []byte) error {
			_, err := io.ReadFull(rand.Reader, buf)
			return err
		},
	},
	{
		name: "/dev/urandom",
		fill: func(buf []byte) error {
			f, err := os.Open("/dev/urandom")
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = io.ReadFull(f, buf)
			return err
		},
	},
}

// The selected provider is chosen once per process and reused afterwards.
var (
	selectOnce       sync.Once
	selectedProvider *randomProvider
	selectErr        error
)

func selectProvider() {
	probe := make([]byte, 1)
	for i := range randomProviders {
		if err := randomProviders[i].fill(probe); err == nil {
			selectedProvider = &randomProviders[i]
			return
		}
	}
	selectErr = ErrNoSecureRandom
}

// RandomBytes returns n cryptographically secure random bytes from the
// first working provider. Fails loudly if no secure source exists.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid random byte count: %d", n)
	}

	selectOnce.Do(selectProvider)
	if selectErr != nil {
		return nil, selectErr
	}

	buf := make([]byte, n)
	if err := selectedProvider.fill(buf); err != nil {
		return nil, fmt.Errorf("random source %s failed: %w", selectedProvider.name, err)
	}
	return buf, nil
}

// RandomSourceName reports which provider was selected, mainly for logging.
func RandomSourceName() (string, error) {
	selectOnce.Do(selectProvider)
	if selectErr != nil {
		return "", selectErr
	}
	return selectedProvider.name, nil
}
