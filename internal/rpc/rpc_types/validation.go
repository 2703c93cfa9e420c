package rpc_types

import (
	"encoding/hex"
	"errors"
	"fmt"

	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
)

// ErrInvalidTransactionHash is returned when a transaction hash string fails validation.
var ErrInvalidTransactionHash = errors.New("invalid transaction hash")

// ValidateTransactionHash checks that s is 64 hex digits, optionally 0x
// prefixed, and returns the parsed hash.
func ValidateTransactionHash(s string) (codectypes.Hash256, error) {
	stripped := codectypes.TrimHexPrefix(s)
	if len(stripped) != 2*codectypes.Hash256Size {
		return codectypes.Hash256{}, fmt.Errorf("%w %q: got %d hex digits, want %d",
			ErrInvalidTransactionHash, s, len(stripped), 2*codectypes.Hash256Size)
	}
	if _, err := hex.DecodeString(stripped); err != nil {
		return codectypes.Hash256{}, fmt.Errorf("%w %q: %v", ErrInvalidTransactionHash, s, err)
	}
	return codectypes.Hash256FromString(stripped)
}

// IsValidTransactionHash reports whether ValidateTransactionHash accepts s.
func IsValidTransactionHash(s string) bool {
	_, err := ValidateTransactionHash(s)
	return err == nil
}
