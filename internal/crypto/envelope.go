package crypto

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// ExportVersion is the current envelope version. New versions extend
	// the tag; version-1 semantics are frozen.
	ExportVersion = 1

	cipherName   = "aes-256-gcm"
	maxHeaderLen = 0xFFFF
)

// ErrMalformedExport marks a format problem diagnosable without the
// password (bad length prefix, non-JSON header, unknown version). It is
// deliberately distinct from ErrDecryptionFailed.
var ErrMalformedExport = errors.New("malformed export data")

// ExportHeader is the authenticated metadata of a version-1 export.
// Its JSON bytes are bound into the ciphertext as associated data.
type ExportHeader struct {
	Version int
	Kdf     KdfParams
	Salt    []byte
	IV      []byte
}

// headerJSON is the wire shape of ExportHeader.
type headerJSON struct {
	Version   int             `json:"version"`
	Kdf       KdfKind         `json:"kdf"`
	KdfParams json.RawMessage `json:"kdfParams"`
	SaltB64   string          `json:"saltB64"`
	Cipher    string          `json:"cipher"`
	IvB64     string          `json:"ivB64"`
}

// MarshalJSON encodes the header in its canonical wire shape.
func (h *ExportHeader) MarshalJSON() ([]byte, error) {
	variant, err := h.Kdf.marshalVariant()
	if err != nil {
		return nil, err
	}
	return json.Marshal(headerJSON{
		Version:   h.Version,
		Kdf:       h.Kdf.Kind,
		KdfParams: variant,
		SaltB64:   base64.StdEncoding.EncodeToString(h.Salt),
		Cipher:    cipherName,
		IvB64:     base64.StdEncoding.EncodeToString(h.IV),
	})
}

// ParseHeader decodes and validates header JSON. All failures are
// malformed-export errors.
func ParseHeader(data []byte) (*ExportHeader, error) {
	var wire headerJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: header is not valid JSON", ErrMalformedExport)
	}
	if wire.Version != ExportVersion {
		return nil, fmt.Errorf("%w: unrecognized version %d", ErrMalformedExport, wire.Version)
	}
	if wire.Cipher != cipherName {
		return nil, fmt.Errorf("%w: unsupported cipher %q", ErrMalformedExport, wire.Cipher)
	}

	params, err := unmarshalKdfParams(wire.Kdf, wire.KdfParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}
	salt, err := base64.StdEncoding.DecodeString(wire.SaltB64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedExport)
	}
	iv, err := base64.StdEncoding.DecodeString(wire.IvB64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid IV encoding", ErrMalformedExport)
	}

	return &ExportHeader{
		Version: wire.Version,
		Kdf:     params,
		Salt:    salt,
		IV:      iv,
	}, nil
}

// SerializeExport packs header JSON and ciphertext into the transport
// form: base64( u16_BE(headerLen) || headerJSON || ciphertext+tag ).
func SerializeExport(headerBytes, ciphertext []byte) (string, error) {
	if len(headerBytes) == 0 || len(headerBytes) > maxHeaderLen {
		return "", fmt.Errorf("invalid header length: %d", len(headerBytes))
	}

	buf := make([]byte, 0, 2+len(headerBytes)+len(ciphertext))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(headerBytes)))
	buf = append(buf, headerBytes...)
	buf = append(buf, ciphertext...)

	return base64.StdEncoding.EncodeToString(buf), nil
}

// DeserializeExport unpacks a transport blob. It returns the parsed
// header, the exact header bytes (needed to recompute the associated
// data), and the ciphertext. Format problems yield ErrMalformedExport.
func DeserializeExport(blob string) (*ExportHeader, []byte, []byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: invalid base64", ErrMalformedExport)
	}
	if len(raw) < 2 {
		return nil, nil, nil, fmt.Errorf("%w: truncated buffer", ErrMalformedExport)
	}

	headerLen := int(binary.BigEndian.Uint16(raw[:2]))
	if headerLen == 0 || 2+headerLen > len(raw) {
		return nil, nil, nil, fmt.Errorf("%w: header length %d exceeds buffer", ErrMalformedExport, headerLen)
	}

	headerBytes := raw[2 : 2+headerLen]
	ciphertext := raw[2+headerLen:]

	header, err := ParseHeader(headerBytes)
	if err != nil {
		return nil, nil, nil, err
	}
	return header, headerBytes, ciphertext, nil
}
