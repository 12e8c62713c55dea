package crypto

import (
	"crypto/sha256"
	"fmt"
)

// Allowed entropy sizes in bits (BIP-39 compatible).
var allowedEntropyBits = []int{128, 160, 192, 224, 256}

// Minimum distinct byte values by buffer length. Anything below this is
// treated as a broken RNG, not merely weak entropy.
var minUniqueBytes = map[int]int{
	16: 8,
	20: 10,
	24: 12,
	28: 14,
	32: 16,
}

// EntropyOptions toggles the individual structural checks.
// All checks are enabled by default (see DefaultEntropyOptions).
type EntropyOptions struct {
	CheckLength      bool
	CheckAllZero     bool
	CheckAllOnes     bool
	CheckHalves      bool
	CheckCycles      bool
	CheckMonotonic   bool
	CheckUniqueBytes bool
}

// DefaultEntropyOptions returns options with every check enabled.
func DefaultEntropyOptions() EntropyOptions {
	return EntropyOptions{
		CheckLength:      true,
		CheckAllZero:     true,
		CheckAllOnes:     true,
		CheckHalves:      true,
		CheckCycles:      true,
		CheckMonotonic:   true,
		CheckUniqueBytes: true,
	}
}

// EntropyReport lists every violated rule. A caller whose entropy fails
// must regenerate it, not retry in a loop.
type EntropyReport struct {
	IsValid   bool     `json:"isValid"`
	BitLength int      `json:"bitLength"`
	Errors    []string `json:"errors,omitempty"`
}

// ValidateEntropy runs structural sanity checks on an entropy buffer.
// This is a defense against catastrophic RNG failure, not a statistical
// randomness test, and must never be used to "improve" good randomness.
func ValidateEntropy(b []byte, opts EntropyOptions) *EntropyReport {
	report := &EntropyReport{BitLength: len(b) * 8}

	if opts.CheckLength && !isAllowedEntropyBits(report.BitLength) {
		report.Errors = append(report.Errors,
			fmt.Sprintf("length %d bits is not one of the allowed sizes (128/160/192/224/256)", report.BitLength))
	}
	if opts.CheckAllZero && len(b) > 0 && isConstant(b, 0x00) {
		report.Errors = append(report.Errors, "buffer is all zero bytes")
	}
	if opts.CheckAllOnes && len(b) > 0 && isConstant(b, 0xFF) {
		report.Errors = append(report.Errors, "buffer is all 0xFF bytes")
	}
	if opts.CheckHalves && hasDuplicatedHalves(b) {
		report.Errors = append(report.Errors, "first half duplicates second half")
	}
	if opts.CheckCycles {
		if p := repeatingCyclePeriod(b); p > 0 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("buffer repeats with period %d", p))
		}
	}
	if opts.CheckMonotonic && isMonotonicRamp(b) {
		report.Errors = append(report.Errors, "buffer is a monotonic +/-1 byte ramp")
	}
	if opts.CheckUniqueBytes && len(b) > 0 {
		unique := countUniqueBytes(b)
		if min := uniqueByteThreshold(len(b)); unique < min {
			report.Errors = append(report.Errors,
				fmt.Sprintf("only %d unique byte values, need at least %d", unique, min))
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// MixEntropyParts combines multiple entropy sources into 32 bytes via
// SHA-256. The output is indistinguishable from random as long as at
// least one input part has high min-entropy, even if the others are
// adversarially weak or zero.
func MixEntropyParts(parts ...[]byte) []byte {
	h := sha256.New()
	for _, part := range parts {
		h.Write(part)
	}
	return h.Sum(nil)
}

func isAllowedEntropyBits(bits int) bool {
	for _, allowed := range allowedEntropyBits {
		if bits == allowed {
			return true
		}
	}
	return false
}

func isConstant(b []byte, v byte) bool {
	for _, c := range b {
		if c != v {
			return false
		}
	}
	return true
}

// hasDuplicatedHalves reports whether an even-length buffer's first half
// equals its second half.
func hasDuplicatedHalves(b []byte) bool {
	if len(b) < 2 || len(b)%2 != 0 {
		return false
	}
	half := len(b) / 2
	for i := 0; i < half; i++ {
		if b[i] != b[half+i] {
			return false
		}
	}
	return true
}

// repeatingCyclePeriod returns the smallest period 1..8 for which the
// whole buffer is a repetition of its first p bytes, or 0 if none.
func repeatingCyclePeriod(b []byte) int {
	for p := 1; p <= 8; p++ {
		if p >= len(b) {
			break
		}
		matches := true
		for i := p; i < len(b); i++ {
			if b[i] != b[i%p] {
				matches = false
				break
			}
		}
		if matches {
			return p
		}
	}
	return 0
}

// isMonotonicRamp detects strict +1 or -1 (mod 256) byte sequences.
func isMonotonicRamp(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	up, down := true, true
	for i := 1; i < len(b); i++ {
		if b[i] != b[i-1]+1 {
			up = false
		}
		if b[i] != b[i-1]-1 {
			down = false
		}
		if !up && !down {
			return false
		}
	}
	return up || down
}

func countUniqueBytes(b []byte) int {
	var seen [256]bool
	count := 0
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			count++
		}
	}
	return count
}

func uniqueByteThreshold(length int) int {
	if min, ok := minUniqueBytes[length]; ok {
		return min
	}
	min := length / 2
	if min < 8 {
		min = 8
	}
	return min
}
