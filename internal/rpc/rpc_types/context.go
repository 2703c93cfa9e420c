package rpc_types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
	"github.com/LeJamon/goNeoRPC/internal/crypto"
)

// SignatureSize is the byte length of an r||s ECDSA signature.
const SignatureSize = 64

// ContractParameter is a typed argument of a contract invocation.
type ContractParameter struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ContextItem is one pending multi-signature entry: the verification script,
// its parameters and the signatures collected so far.
//
// The signature set is the only mutable part and is changed through
// AddSignature and RemoveSignature. ContextItem is not safe for concurrent
// mutation; callers sharing one across goroutines must hold a lock.
type ContextItem struct {
	script     []byte
	parameters []ContractParameter
	signatures map[string][]byte
}

// NewContextItem builds an item with no collected signatures.
func NewContextItem(script []byte, parameters []ContractParameter) (*ContextItem, error) {
	if script == nil {
		return nil, &coretypes.ArgumentError{Field: "script"}
	}
	return &ContextItem{
		script:     append([]byte(nil), script...),
		parameters: append([]ContractParameter(nil), parameters...),
		signatures: make(map[string][]byte),
	}, nil
}

// Script returns a copy of the verification script.
func (c *ContextItem) Script() []byte {
	return append([]byte(nil), c.script...)
}

// ParameterCount returns the number of parameters.
func (c *ContextItem) ParameterCount() int {
	return len(c.parameters)
}

// Parameter returns the i-th parameter or a RangeError.
func (c *ContextItem) Parameter(i int) (ContractParameter, error) {
	return coretypes.At("parameters", c.parameters, i)
}

// TryParameter returns the i-th parameter and whether it exists.
func (c *ContextItem) TryParameter(i int) (ContractParameter, bool) {
	return coretypes.TryAt(c.parameters, i)
}

// AddSignature records sig for the compressed public key pubKey (hex).
// It reports whether an existing signature for the key was replaced.
func (c *ContextItem) AddSignature(pubKey string, sig []byte) (bool, error) {
	key, err := normalizePublicKey(pubKey)
	if err != nil {
		return false, err
	}
	if len(sig) != SignatureSize {
		return false, &coretypes.ArgumentError{
			Field:  "signature",
			Reason: fmt.Sprintf("got %d bytes for key %s, want %d", len(sig), key, SignatureSize),
		}
	}
	if c.signatures == nil {
		c.signatures = make(map[string][]byte)
	}
	_, replaced := c.signatures[key]
	c.signatures[key] = append([]byte(nil), sig...)
	return replaced, nil
}

// RemoveSignature drops the signature for pubKey and reports whether one was present.
func (c *ContextItem) RemoveSignature(pubKey string) bool {
	key, err := normalizePublicKey(pubKey)
	if err != nil {
		return false
	}
	if _, ok := c.signatures[key]; !ok {
		return false
	}
	delete(c.signatures, key)
	return true
}

// Signature returns a copy of the signature recorded for pubKey.
func (c *ContextItem) Signature(pubKey string) ([]byte, bool) {
	key, err := normalizePublicKey(pubKey)
	if err != nil {
		return nil, false
	}
	sig, ok := c.signatures[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), sig...), true
}

// SignatureCount returns the number of collected signatures.
func (c *ContextItem) SignatureCount() int {
	return len(c.signatures)
}

// PublicKeys returns the keys that have signed, sorted.
func (c *ContextItem) PublicKeys() []string {
	keys := make([]string, 0, len(c.signatures))
	for k := range c.signatures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Signatures returns a copy of the signature set.
func (c *ContextItem) Signatures() map[string][]byte {
	out := make(map[string][]byte, len(c.signatures))
	for k, v := range c.signatures {
		out[k] = append([]byte(nil), v...)
	}
	return out
}

type contextItemJSON struct {
	Script     []byte              `json:"script"`
	Parameters []ContractParameter `json:"parameters"`
	Signatures map[string][]byte   `json:"signatures"`
}

func (c *ContextItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(contextItemJSON{
		Script:     c.script,
		Parameters: c.parameters,
		Signatures: c.signatures,
	})
}

func (c *ContextItem) UnmarshalJSON(data []byte) error {
	var aux contextItemJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	item, err := NewContextItem(aux.Script, aux.Parameters)
	if err != nil {
		return err
	}
	for k, v := range aux.Signatures {
		if _, err := item.AddSignature(k, v); err != nil {
			return err
		}
	}
	*c = *item
	return nil
}

// ContractParametersContext is a transaction or other verifiable payload
// waiting for signatures, keyed by script hash.
type ContractParametersContext struct {
	Type    string                  `json:"type"`
	Hash    codectypes.Hash256      `json:"hash"`
	Data    []byte                  `json:"data"`
	Items   map[string]*ContextItem `json:"items"`
	Network uint32                  `json:"network"`
}

// Item returns the pending item for a script hash.
func (c *ContractParametersContext) Item(scriptHash codectypes.Hash160) (*ContextItem, bool) {
	item, ok := c.Items[scriptHash.String()]
	return item, ok
}

func normalizePublicKey(pubKey string) (string, error) {
	raw, err := hex.DecodeString(codectypes.TrimHexPrefix(pubKey))
	if err != nil {
		return "", &coretypes.ArgumentError{Field: "publickey", Reason: fmt.Sprintf("%q is not hex", pubKey)}
	}
	if err := crypto.ValidatePublicKey(raw); err != nil {
		return "", &coretypes.ArgumentError{Field: "publickey", Reason: fmt.Sprintf("%q: %v", pubKey, err), Err: err}
	}
	return hex.EncodeToString(raw), nil
}
