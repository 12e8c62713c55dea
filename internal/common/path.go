package common

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset is the BIP-32 hardened derivation marker bit.
const HardenedOffset uint32 = 0x80000000

// FormatPath builds a full BIP-44-style leaf path,
// e.g. FormatPath(84, 0, 0, 0, 0) = "m/84'/0'/0'/0/0"
func FormatPath(purpose, coinType, account, change, index uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d", purpose, coinType, account, change, index)
}

// FormatAccountPath builds the account-level path,
// e.g. FormatAccountPath(84, 0, 0) = "m/84'/0'/0'"
func FormatAccountPath(purpose, coinType, account uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'", purpose, coinType, account)
}

// ParsePath parses a BIP-32 derivation path string into child indices.
// Hardened components ("'", "h" or "H" suffix) have HardenedOffset set.
// Example: "m/44'/0'/0'/0/0" -> [44+H, 0+H, 0+H, 0, 0]
func ParsePath(path string) ([]uint32, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("empty derivation path")
	}

	parts := strings.Split(trimmed, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("derivation path has no components")
	}

	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty path component in %q", path)
		}

		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H") {
			hardened = true
			part = part[:len(part)-1]
		}

		val, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path component %q: %w", part, err)
		}
		if uint32(val) >= HardenedOffset {
			return nil, fmt.Errorf("path component %d out of range", val)
		}

		index := uint32(val)
		if hardened {
			index |= HardenedOffset
		}
		indices = append(indices, index)
	}
	return indices, nil
}
