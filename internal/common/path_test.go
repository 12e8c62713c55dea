package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPath(t *testing.T) {
	require.Equal(t, "m/84'/0'/0'/0/0", FormatPath(84, 0, 0, 0, 0))
	require.Equal(t, "m/44'/1'/2'/1/7", FormatPath(44, 1, 2, 1, 7))
}

func TestFormatAccountPath(t *testing.T) {
	require.Equal(t, "m/84'/0'/0'", FormatAccountPath(84, 0, 0))
	require.Equal(t, "m/49'/1'/3'", FormatAccountPath(49, 1, 3))
}

func TestParsePath(t *testing.T) {
	indices, err := ParsePath("m/44'/0'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, []uint32{
		HardenedOffset + 44,
		HardenedOffset,
		HardenedOffset,
		0,
		0,
	}, indices)
}

func TestParsePathHardenedSuffixVariants(t *testing.T) {
	apostrophe, err := ParsePath("m/84'/0'/0'")
	require.NoError(t, err)

	lower, err := ParsePath("m/84h/0h/0h")
	require.NoError(t, err)
	require.Equal(t, apostrophe, lower)

	upper, err := ParsePath("M/84H/0H/0H")
	require.NoError(t, err)
	require.Equal(t, apostrophe, upper)
}

func TestParsePathWithoutMasterPrefix(t *testing.T) {
	indices, err := ParsePath("44'/0'/0'")
	require.NoError(t, err)
	require.Len(t, indices, 3)
	require.Equal(t, HardenedOffset+44, indices[0])
}

func TestParsePathErrors(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"m",
		"m//0",
		"m/44'/x/0",
		"m/2147483648", // >= hardened marker
		"m/-1/0",
	}
	for _, path := range cases {
		_, err := ParsePath(path)
		require.Error(t, err, "path %q", path)
	}
}
