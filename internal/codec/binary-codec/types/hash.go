//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types/interfaces"
)

const (
	// Hash160Size is the width of a script hash in bytes.
	Hash160Size = 20
	// Hash256Size is the width of a block or transaction hash in bytes.
	Hash256Size = 32
)

var (
	// ErrInvalidHash160String is returned when a value is not a 40 digit hex string.
	ErrInvalidHash160String = errors.New("invalid Hash160 string, value should be 40 hex digits with optional 0x prefix")
	// ErrInvalidHash256String is returned when a value is not a 64 digit hex string.
	ErrInvalidHash256String = errors.New("invalid Hash256 string, value should be 64 hex digits with optional 0x prefix")
	// ErrInvalidHashLength is returned when raw bytes do not match the identifier width.
	ErrInvalidHashLength = errors.New("invalid hash length")
)

// Hash160 is a 20-byte script hash naming a contract or account.
// The array holds the wire (little-endian) byte order.
type Hash160 [Hash160Size]byte

// Hash256 is a 32-byte block or transaction hash in wire byte order.
type Hash256 [Hash256Size]byte

// Hash160FromString parses the 0x-prefixed big-endian hex form used in JSON payloads.
func Hash160FromString(s string) (Hash160, error) {
	var h Hash160
	if err := decodeReversedHex(h[:], s); err != nil {
		return h, fmt.Errorf("%w: %q", ErrInvalidHash160String, s)
	}
	return h, nil
}

// Hash256FromString parses the 0x-prefixed big-endian hex form used in JSON payloads.
func Hash256FromString(s string) (Hash256, error) {
	var h Hash256
	if err := decodeReversedHex(h[:], s); err != nil {
		return h, fmt.Errorf("%w: %q", ErrInvalidHash256String, s)
	}
	return h, nil
}

// Hash160FromBytes copies b, which must be exactly 20 bytes in wire order.
func Hash160FromBytes(b []byte) (Hash160, error) {
	var h Hash160
	if len(b) != Hash160Size {
		return h, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHashLength, len(b), Hash160Size)
	}
	copy(h[:], b)
	return h, nil
}

// Hash256FromBytes copies b, which must be exactly 32 bytes in wire order.
func Hash256FromBytes(b []byte) (Hash256, error) {
	var h Hash256
	if len(b) != Hash256Size {
		return h, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHashLength, len(b), Hash256Size)
	}
	copy(h[:], b)
	return h, nil
}

// String returns the 0x-prefixed big-endian hex form.
func (h Hash160) String() string {
	return encodeReversedHex(h[:])
}

// String returns the 0x-prefixed big-endian hex form.
func (h Hash256) String() string {
	return encodeReversedHex(h[:])
}

// Bytes returns a copy of the hash in wire order.
func (h Hash160) Bytes() []byte {
	out := make([]byte, Hash160Size)
	copy(out, h[:])
	return out
}

// Bytes returns a copy of the hash in wire order.
func (h Hash256) Bytes() []byte {
	out := make([]byte, Hash256Size)
	copy(out, h[:])
	return out
}

// IsZero reports whether every byte is zero.
func (h Hash160) IsZero() bool {
	return h == Hash160{}
}

// IsZero reports whether every byte is zero.
func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

func (h Hash160) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash160) UnmarshalText(text []byte) error {
	parsed, err := Hash160FromString(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h Hash256) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash256) UnmarshalText(text []byte) error {
	parsed, err := Hash256FromString(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ReadHash160 reads 20 raw bytes from p.
func ReadHash160(p interfaces.BinaryParser, field string) (Hash160, error) {
	var h Hash160
	b, err := p.ReadBytes(field, Hash160Size)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// ReadHash256 reads 32 raw bytes from p.
func ReadHash256(p interfaces.BinaryParser, field string) (Hash256, error) {
	var h Hash256
	b, err := p.ReadBytes(field, Hash256Size)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// Serialize appends the raw hash bytes to s.
func (h Hash160) Serialize(s interfaces.BinarySerializer) {
	s.WriteBytes(h[:])
}

// Serialize appends the raw hash bytes to s.
func (h Hash256) Serialize(s interfaces.BinarySerializer) {
	s.WriteBytes(h[:])
}

// TrimHexPrefix removes a leading 0x or 0X.
func TrimHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// decodeReversedHex fills dst from big-endian hex, storing bytes in wire order.
func decodeReversedHex(dst []byte, s string) error {
	s = TrimHexPrefix(s)
	if len(s) != 2*len(dst) {
		return fmt.Errorf("got %d hex digits, want %d", len(s), 2*len(dst))
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	for i, b := range decoded {
		dst[len(dst)-1-i] = b
	}
	return nil
}

func encodeReversedHex(src []byte) string {
	reversed := make([]byte, len(src))
	for i, b := range src {
		reversed[len(src)-1-i] = b
	}
	return "0x" + hex.EncodeToString(reversed)
}
