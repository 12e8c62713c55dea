package crypto

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEntropyAcceptsRandomBuffer(t *testing.T) {
	b, err := RandomBytes(32)
	require.NoError(t, err)

	report := ValidateEntropy(b, DefaultEntropyOptions())
	require.True(t, report.IsValid, "unexpected violations: %v", report.Errors)
	require.Equal(t, 256, report.BitLength)
	require.Empty(t, report.Errors)
}

func TestValidateEntropyRejectsAllZero(t *testing.T) {
	report := ValidateEntropy(make([]byte, 32), DefaultEntropyOptions())
	require.False(t, report.IsValid)
	require.NotEmpty(t, report.Errors)
}

func TestValidateEntropyRejectsAllOnes(t *testing.T) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = 0xFF
	}
	report := ValidateEntropy(b, DefaultEntropyOptions())
	require.False(t, report.IsValid)
}

func TestValidateEntropyRejectsDuplicatedHalves(t *testing.T) {
	half, err := RandomBytes(16)
	require.NoError(t, err)

	b := append(append([]byte{}, half...), half...)
	report := ValidateEntropy(b, DefaultEntropyOptions())
	require.False(t, report.IsValid)
	require.Contains(t, report.Errors[0], "half")
}

func TestValidateEntropyRejectsMonotonicRamp(t *testing.T) {
	up := make([]byte, 32)
	down := make([]byte, 32)
	for i := range up {
		up[i] = byte(i)
		down[i] = byte(200 - i)
	}

	require.False(t, ValidateEntropy(up, DefaultEntropyOptions()).IsValid)
	require.False(t, ValidateEntropy(down, DefaultEntropyOptions()).IsValid)
}

func TestValidateEntropyRejectsRepeatingCycle(t *testing.T) {
	b := make([]byte, 32)
	pattern := []byte{0x1f, 0x8a, 0x42, 0xd3}
	for i := range b {
		b[i] = pattern[i%len(pattern)]
	}

	report := ValidateEntropy(b, DefaultEntropyOptions())
	require.False(t, report.IsValid)
}

func TestValidateEntropyRejectsWrongLength(t *testing.T) {
	b, err := RandomBytes(17)
	require.NoError(t, err)

	report := ValidateEntropy(b, DefaultEntropyOptions())
	require.False(t, report.IsValid)
	require.Equal(t, 136, report.BitLength)
}

func TestValidateEntropyRejectsLowUniqueCount(t *testing.T) {
	// 32 bytes built from 4 distinct values, arranged so that no cycle of
	// period 1..8 and no duplicated halves trip first.
	b := []byte{
		1, 2, 3, 4, 1, 2, 4, 3,
		2, 1, 3, 4, 4, 3, 2, 1,
		1, 3, 2, 4, 2, 4, 1, 3,
		3, 4, 1, 2, 1, 2, 3, 4,
	}

	report := ValidateEntropy(b, DefaultEntropyOptions())
	require.False(t, report.IsValid)
	require.Contains(t, report.Errors[0], "unique")
}

func TestValidateEntropyChecksAreTogglable(t *testing.T) {
	zeros := make([]byte, 32)

	onlyZeroCheck := EntropyOptions{CheckAllZero: true}
	report := ValidateEntropy(zeros, onlyZeroCheck)
	require.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)

	noChecks := EntropyOptions{}
	require.True(t, ValidateEntropy(zeros, noChecks).IsValid)
}

func TestUniqueByteThresholdTable(t *testing.T) {
	require.Equal(t, 8, uniqueByteThreshold(16))
	require.Equal(t, 10, uniqueByteThreshold(20))
	require.Equal(t, 12, uniqueByteThreshold(24))
	require.Equal(t, 14, uniqueByteThreshold(28))
	require.Equal(t, 16, uniqueByteThreshold(32))
	require.Equal(t, 8, uniqueByteThreshold(10))
	require.Equal(t, 32, uniqueByteThreshold(64))
}

func TestMixEntropyParts(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5, 6}

	mixed := MixEntropyParts(a, b)
	expected := sha256.Sum256([]byte{1, 2, 3, 4, 5, 6})
	require.Equal(t, expected[:], mixed)

	// A weak or zero part must not cancel out a strong one.
	strong, err := RandomBytes(32)
	require.NoError(t, err)
	withWeak := MixEntropyParts(strong, make([]byte, 32))
	require.Len(t, withWeak, 32)
	require.NotEqual(t, make([]byte, 32), withWeak)
}
