package crypto

import (
	"crypto/elliptic"
	"errors"
	"fmt"
)

// CompressedPublicKeySize is the length of a compressed secp256r1 public key.
const CompressedPublicKeySize = 33

var (
	// ErrInvalidPublicKeyLength is returned for keys that are not 33 bytes.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	// ErrInvalidPublicKeyPrefix is returned when the first byte is not 0x02 or 0x03.
	ErrInvalidPublicKeyPrefix = errors.New("invalid public key prefix")
	// ErrPublicKeyNotOnCurve is returned when the key does not decode to a secp256r1 point.
	ErrPublicKeyNotOnCurve = errors.New("public key is not on secp256r1")
)

// ValidatePublicKey checks that pubKey is a compressed secp256r1 point.
//
// Public key format:
//   - 33 bytes, first byte 0x02 (even y) or 0x03 (odd y)
func ValidatePublicKey(pubKey []byte) error {
	if len(pubKey) != CompressedPublicKeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPublicKeyLength, len(pubKey), CompressedPublicKeySize)
	}
	if pubKey[0] != 0x02 && pubKey[0] != 0x03 {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidPublicKeyPrefix, pubKey[0])
	}
	if x, _ := elliptic.UnmarshalCompressed(elliptic.P256(), pubKey); x == nil {
		return ErrPublicKeyNotOnCurve
	}
	return nil
}
