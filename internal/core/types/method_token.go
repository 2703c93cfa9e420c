package types

import (
	"encoding/json"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/serdes"
	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types/interfaces"
)

var _ serdes.Serializable = (*MethodToken)(nil)

// MethodToken describes a static call from a contract to a method of another
// contract. It is the representative wire entity of the codec.
//
// Wire layout: hash (20 raw bytes), method (var string), paramcount (int32),
// hasreturnvalue (bool), callflags (var string).
type MethodToken struct {
	hash            codectypes.Hash160
	method          string
	parametersCount int32
	hasReturnValue  bool
	callFlags       string
}

// NewMethodToken builds a token from already decoded fields. hash, method and
// callFlags are required; a nil value yields an ArgumentError naming the field.
func NewMethodToken(hash *codectypes.Hash160, method *string, parametersCount int32, hasReturnValue bool, callFlags *string) (*MethodToken, error) {
	if hash == nil {
		return nil, &ArgumentError{Field: "hash"}
	}
	if method == nil {
		return nil, &ArgumentError{Field: "method"}
	}
	if callFlags == nil {
		return nil, &ArgumentError{Field: "callflags"}
	}
	return &MethodToken{
		hash:            *hash,
		method:          *method,
		parametersCount: parametersCount,
		hasReturnValue:  hasReturnValue,
		callFlags:       *callFlags,
	}, nil
}

// DecodeMethodToken decodes a token from its wire form.
func DecodeMethodToken(data []byte, opts ...serdes.ParserOption) (*MethodToken, error) {
	t := &MethodToken{}
	if err := serdes.Decode(data, t, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *MethodToken) Hash() codectypes.Hash160 { return t.hash }
func (t *MethodToken) Method() string           { return t.method }
func (t *MethodToken) ParametersCount() int32   { return t.parametersCount }
func (t *MethodToken) HasReturnValue() bool     { return t.hasReturnValue }
func (t *MethodToken) CallFlags() string        { return t.callFlags }

// CallFlagsValue parses the call flags string.
func (t *MethodToken) CallFlagsValue() (CallFlag, error) {
	return ParseCallFlags(t.callFlags)
}

// IsValid re-checks the field invariants without failing: a non-negative
// parameter count and non-empty method and call flags.
func (t *MethodToken) IsValid() bool {
	return t.parametersCount >= 0 && t.method != "" && t.callFlags != ""
}

// Size returns the encoded length of the token.
func (t *MethodToken) Size() int {
	return codectypes.Hash160Size +
		serdes.VarStringSize(t.method) +
		serdes.Int32Size +
		serdes.BoolSize +
		serdes.VarStringSize(t.callFlags)
}

func (t *MethodToken) Serialize(s interfaces.BinarySerializer) error {
	t.hash.Serialize(s)
	if err := s.WriteVarString("method", t.method); err != nil {
		return err
	}
	s.WriteInt32(t.parametersCount)
	s.WriteBool(t.hasReturnValue)
	return s.WriteVarString("callflags", t.callFlags)
}

func (t *MethodToken) Deserialize(p interfaces.BinaryParser) error {
	hash, err := codectypes.ReadHash160(p, "hash")
	if err != nil {
		return err
	}
	method, err := p.ReadVarString("method")
	if err != nil {
		return err
	}
	count, err := p.ReadInt32("paramcount")
	if err != nil {
		return err
	}
	hasReturn, err := p.ReadBool("hasreturnvalue")
	if err != nil {
		return err
	}
	flags, err := p.ReadVarString("callflags")
	if err != nil {
		return err
	}
	*t = MethodToken{
		hash:            hash,
		method:          method,
		parametersCount: count,
		hasReturnValue:  hasReturn,
		callFlags:       flags,
	}
	return nil
}

// Fields returns the ordered field list used for hashing and formatting.
func (t *MethodToken) Fields() []Field {
	return []Field{
		{"hash", t.hash},
		{"method", t.method},
		{"paramcount", t.parametersCount},
		{"hasreturnvalue", t.hasReturnValue},
		{"callflags", t.callFlags},
	}
}

// Equal reports field-wise equality. Two nil tokens are equal.
func (t *MethodToken) Equal(other *MethodToken) bool {
	if t == nil || other == nil {
		return t == other
	}
	return *t == *other
}

// HashCode is consistent with Equal.
func (t *MethodToken) HashCode() uint64 {
	return FieldsHash(t.Fields())
}

func (t *MethodToken) String() string {
	return FieldsString("MethodToken", t.Fields())
}

type methodTokenJSON struct {
	Hash           *codectypes.Hash160 `json:"hash"`
	Method         *string             `json:"method"`
	ParamCount     int32               `json:"paramcount"`
	HasReturnValue bool                `json:"hasreturnvalue"`
	CallFlags      *string             `json:"callflags"`
}

func (t *MethodToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(methodTokenJSON{
		Hash:           &t.hash,
		Method:         &t.method,
		ParamCount:     t.parametersCount,
		HasReturnValue: t.hasReturnValue,
		CallFlags:      &t.callFlags,
	})
}

func (t *MethodToken) UnmarshalJSON(data []byte) error {
	var raw methodTokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewMethodToken(raw.Hash, raw.Method, raw.ParamCount, raw.HasReturnValue, raw.CallFlags)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
