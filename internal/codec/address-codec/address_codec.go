// Package addresscodec encodes NEO N3 script hashes as base58check addresses.
package addresscodec

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	"github.com/LeJamon/goNeoRPC/internal/crypto"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// DefaultAddressVersion is the N3 address version byte; every N3 address starts with 'N'.
	DefaultAddressVersion byte = 0x35
	// AddressLength is the length of an encoded N3 address.
	AddressLength = 34
)

var (
	// ErrInvalidAddress is returned when an address fails base58check decoding.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrAddressVersion is returned when the version byte does not match.
	ErrAddressVersion = errors.New("address version mismatch")
	// ErrInvalidPublicKey is returned when a verification key cannot be hashed into an account.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Encode returns the base58check address of scriptHash: version byte,
// 20 hash bytes in wire order, 4-byte double-SHA256 checksum.
func Encode(scriptHash types.Hash160, version byte) string {
	return base58.CheckEncode(scriptHash.Bytes(), version)
}

// Decode parses an address and returns its script hash.
func Decode(address string, version byte) (types.Hash160, error) {
	payload, got, err := base58.CheckDecode(address)
	if err != nil {
		return types.Hash160{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	if got != version {
		return types.Hash160{}, fmt.Errorf("%w %q: got 0x%02x, want 0x%02x", ErrAddressVersion, address, got, version)
	}
	h, err := types.Hash160FromBytes(payload)
	if err != nil {
		return types.Hash160{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	return h, nil
}

// IsValid reports whether address decodes under version.
func IsValid(address string, version byte) bool {
	_, err := Decode(address, version)
	return err == nil
}

// ScriptHashFromPublicKey returns the script hash of the single-signature
// account controlled by a compressed secp256r1 public key.
func ScriptHashFromPublicKey(pubKey []byte) (types.Hash160, error) {
	if err := crypto.ValidatePublicKey(pubKey); err != nil {
		return types.Hash160{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return types.Hash160(crypto.CalcScriptHash(crypto.VerificationScript(pubKey))), nil
}

// AddressFromPublicKey is Encode applied to ScriptHashFromPublicKey.
func AddressFromPublicKey(pubKey []byte, version byte) (string, error) {
	h, err := ScriptHashFromPublicKey(pubKey)
	if err != nil {
		return "", err
	}
	return Encode(h, version), nil
}
