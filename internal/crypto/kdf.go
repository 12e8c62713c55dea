package crypto

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KdfKind identifies exactly one key-derivation algorithm.
type KdfKind string

const (
	KdfArgon2id KdfKind = "argon2id"
	KdfPbkdf2   KdfKind = "pbkdf2-sha256"
)

const (
	derivedKeyLen = 32
	saltLen       = 16

	// PBKDF2 calibration: run a short trial, scale the iteration count to
	// hit the target duration, clamp to a range that resists brute force
	// without stalling interactive callers.
	calibrationTrialIters = 20000
	minPbkdf2Iterations   = 50000
	maxPbkdf2Iterations   = 2000000
)

// Argon2idParams are the exact Argon2id costs used for a derivation.
type Argon2idParams struct {
	MemoryMiB   uint32 `json:"memoryMiB"`
	TimeCost    uint32 `json:"timeCost"`
	Parallelism uint8  `json:"parallelism"`
}

// Pbkdf2Params is the exact PBKDF2-SHA256 iteration count used.
type Pbkdf2Params struct {
	Iterations int `json:"iterations"`
}

// KdfParams is a tagged union: exactly one variant matching Kind is set.
// Once chosen for a ciphertext the parameters are immutable - decryption
// reproduces them verbatim, never re-ranges them.
type KdfParams struct {
	Kind     KdfKind
	Argon2id *Argon2idParams
	Pbkdf2   *Pbkdf2Params
}

func (p KdfParams) marshalVariant() (json.RawMessage, error) {
	switch p.Kind {
	case KdfArgon2id:
		if p.Argon2id == nil {
			return nil, errors.New("argon2id params missing")
		}
		return json.Marshal(p.Argon2id)
	case KdfPbkdf2:
		if p.Pbkdf2 == nil {
			return nil, errors.New("pbkdf2 params missing")
		}
		return json.Marshal(p.Pbkdf2)
	default:
		return nil, fmt.Errorf("unknown kdf kind: %q", p.Kind)
	}
}

func unmarshalKdfParams(kind KdfKind, raw json.RawMessage) (KdfParams, error) {
	switch kind {
	case KdfArgon2id:
		var a Argon2idParams
		if err := json.Unmarshal(raw, &a); err != nil {
			return KdfParams{}, fmt.Errorf("failed to decode argon2id params: %w", err)
		}
		return KdfParams{Kind: KdfArgon2id, Argon2id: &a}, nil
	case KdfPbkdf2:
		var p Pbkdf2Params
		if err := json.Unmarshal(raw, &p); err != nil {
			return KdfParams{}, fmt.Errorf("failed to decode pbkdf2 params: %w", err)
		}
		return KdfParams{Kind: KdfPbkdf2, Pbkdf2: &p}, nil
	default:
		return KdfParams{}, fmt.Errorf("unknown kdf kind: %q", kind)
	}
}

// DeriveOptions tunes DeriveKey. Zero values fall back to the defaults
// from DefaultDeriveOptions, except Salt (generated when nil) and
// FallbackIterations (0 means auto-calibrate).
type DeriveOptions struct {
	Salt               []byte
	PreferArgon2       bool
	MemoryLadderMiB    []uint32
	TimeCost           uint32
	Parallelism        uint8
	FallbackIterations int
	FallbackTargetMs   int
}

// DefaultDeriveOptions returns the production derivation policy:
// Argon2id preferred across a 64/32/16 MiB ladder, PBKDF2 fallback
// calibrated toward 350ms.
func DefaultDeriveOptions() DeriveOptions {
	return DeriveOptions{
		PreferArgon2:     true,
		MemoryLadderMiB:  []uint32{64, 32, 16},
		TimeCost:         3,
		Parallelism:      1,
		FallbackTargetMs: 350,
	}
}

// DerivedKey is the result of a password derivation. Params describes
// exactly what ran, not what was requested.
type DerivedKey struct {
	Kind   KdfKind
	Key    []byte
	Salt   []byte
	Params KdfParams
}

// DeriveKey turns a password and salt into a 32-byte symmetric key.
// With Argon2id preferred it walks the memory ladder from highest to
// lowest cost, continuing past recoverable failures; if every step
// fails (or Argon2id is not preferred) it falls back to PBKDF2-SHA256
// with an explicit or auto-calibrated iteration count.
func DeriveKey(password []byte, opts DeriveOptions) (*DerivedKey, error) {
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	salt := opts.Salt
	if salt == nil {
		var err error
		salt, err = RandomBytes(saltLen)
		if err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
	}

	timeCost := opts.TimeCost
	if timeCost == 0 {
		timeCost = 3
	}
	parallelism := opts.Parallelism
	if parallelism == 0 {
		parallelism = 1
	}

	if opts.PreferArgon2 {
		ladder := opts.MemoryLadderMiB
		if len(ladder) == 0 {
			ladder = DefaultDeriveOptions().MemoryLadderMiB
		}
		for _, memoryMiB := range ladder {
			key, err := tryArgon2id(password, salt, memoryMiB, timeCost, parallelism)
			if err != nil {
				// Recoverable: move down the ladder.
				continue
			}
			return &DerivedKey{
				Kind: KdfArgon2id,
				Key:  key,
				Salt: salt,
				Params: KdfParams{
					Kind: KdfArgon2id,
					Argon2id: &Argon2idParams{
						MemoryMiB:   memoryMiB,
						TimeCost:    timeCost,
						Parallelism: parallelism,
					},
				},
			}, nil
		}
	}

	iterations := opts.FallbackIterations
	if iterations == 0 {
		targetMs := opts.FallbackTargetMs
		if targetMs == 0 {
			targetMs = DefaultDeriveOptions().FallbackTargetMs
		}
		iterations = calibratePbkdf2(password, salt, targetMs)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("invalid pbkdf2 iteration count: %d", iterations)
	}

	key := pbkdf2.Key(password, salt, iterations, derivedKeyLen, sha256.New)
	return &DerivedKey{
		Kind: KdfPbkdf2,
		Key:  key,
		Salt: salt,
		Params: KdfParams{
			Kind:   KdfPbkdf2,
			Pbkdf2: &Pbkdf2Params{Iterations: iterations},
		},
	}, nil
}

// DeriveKeyWithParams reproduces a previous derivation bit-for-bit from
// its recorded parameters. This is the only derivation path used during
// decryption: no ladder, no calibration, no algorithm selection.
func DeriveKeyWithParams(password, salt []byte, params KdfParams) ([]byte, error) {
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	if len(salt) == 0 {
		return nil, errors.New("salt cannot be empty")
	}

	switch params.Kind {
	case KdfArgon2id:
		if params.Argon2id == nil {
			return nil, errors.New("argon2id params missing")
		}
		a := params.Argon2id
		return tryArgon2id(password, salt, a.MemoryMiB, a.TimeCost, a.Parallelism)
	case KdfPbkdf2:
		if params.Pbkdf2 == nil {
			return nil, errors.New("pbkdf2 params missing")
		}
		if params.Pbkdf2.Iterations <= 0 {
			return nil, fmt.Errorf("invalid pbkdf2 iteration count: %d", params.Pbkdf2.Iterations)
		}
		return pbkdf2.Key(password, salt, params.Pbkdf2.Iterations, derivedKeyLen, sha256.New), nil
	default:
		return nil, fmt.Errorf("unknown kdf kind: %q", params.Kind)
	}
}

// tryArgon2id runs one Argon2id attempt. The argon2 package has no error
// return; a failed memory allocation surfaces as a panic, which is
// converted here into a recoverable error so the ladder can continue.
func tryArgon2id(password, salt []byte, memoryMiB, timeCost uint32, parallelism uint8) (key []byte, err error) {
	if memoryMiB == 0 || timeCost == 0 || parallelism == 0 {
		return nil, fmt.Errorf("invalid argon2id params: memory=%d time=%d parallelism=%d",
			memoryMiB, timeCost, parallelism)
	}
	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("argon2id at %d MiB failed: %v", memoryMiB, r)
		}
	}()
	return argon2.IDKey(password, salt, timeCost, memoryMiB*1024, parallelism, derivedKeyLen), nil
}

// calibratePbkdf2 times a fixed trial and scales the iteration count
// proportionally to hit targetMs, clamped to the safe range.
func calibratePbkdf2(password, salt []byte, targetMs int) int {
	start := time.Now()
	pbkdf2.Key(password, salt, calibrationTrialIters, derivedKeyLen, sha256.New)
	elapsed := time.Since(start)
	if elapsed < time.Microsecond {
		elapsed = time.Microsecond
	}

	scaled := float64(calibrationTrialIters) *
		(float64(targetMs) * float64(time.Millisecond)) / float64(elapsed)

	iterations := int(scaled)
	if iterations < minPbkdf2Iterations {
		iterations = minPbkdf2Iterations
	}
	if iterations > maxPbkdf2Iterations {
		iterations = maxPbkdf2Iterations
	}
	return iterations
}
