package serdes

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types/interfaces"
)

const (
	// Int32Size is the encoded width of a fixed 32-bit integer.
	Int32Size = 4
	// BoolSize is the encoded width of a boolean.
	BoolSize = 1
	// Uint8Size is the encoded width of a single byte.
	Uint8Size = 1
)

const (
	boolFalse byte = 0x00
	boolTrue  byte = 0x01
)

var _ interfaces.BinaryParser = (*BinaryParser)(nil)

// BinaryParser reads little-endian fixed-width values and length-prefixed
// strings from a byte slice. It never reads past the end of the slice.
type BinaryParser struct {
	data            []byte
	pos             int
	maxStringLength int
	requireUTF8     bool
}

// ParserOption configures a BinaryParser.
type ParserOption func(*BinaryParser)

// WithMaxStringLength rejects string prefixes larger than n bytes.
// Zero means strings are bounded only by the remaining buffer.
func WithMaxStringLength(n int) ParserOption {
	return func(p *BinaryParser) {
		p.maxStringLength = n
	}
}

// WithUTF8Validation rejects strings that are not valid UTF-8.
func WithUTF8Validation() ParserOption {
	return func(p *BinaryParser) {
		p.requireUTF8 = true
	}
}

// NewBinaryParser returns a parser positioned at the start of data.
func NewBinaryParser(data []byte, opts ...ParserOption) *BinaryParser {
	p := &BinaryParser{data: data}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Offset returns the number of bytes consumed so far.
func (p *BinaryParser) Offset() int {
	return p.pos
}

// Remaining returns the number of unread bytes.
func (p *BinaryParser) Remaining() int {
	return len(p.data) - p.pos
}

// HasMore reports whether unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.pos < len(p.data)
}

// ReadBytes reads exactly n raw bytes. The returned slice is a copy.
func (p *BinaryParser) ReadBytes(field string, n int) ([]byte, error) {
	if n < 0 {
		return nil, newFormatError(field, p.pos, "negative read length %d", n)
	}
	if n > p.Remaining() {
		return nil, newFormatError(field, p.pos, "need %d bytes, %d remaining", n, p.Remaining())
	}
	out := make([]byte, n)
	copy(out, p.data[p.pos:p.pos+n])
	p.pos += n
	return out, nil
}

// ReadUint8 reads a single byte.
func (p *BinaryParser) ReadUint8(field string) (uint8, error) {
	if p.Remaining() < Uint8Size {
		return 0, newFormatError(field, p.pos, "need 1 byte, 0 remaining")
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

// ReadInt32 reads a 4-byte little-endian signed integer.
func (p *BinaryParser) ReadInt32(field string) (int32, error) {
	if p.Remaining() < Int32Size {
		return 0, newFormatError(field, p.pos, "need %d bytes, %d remaining", Int32Size, p.Remaining())
	}
	v := int32(binary.LittleEndian.Uint32(p.data[p.pos : p.pos+Int32Size]))
	p.pos += Int32Size
	return v, nil
}

// ReadBool reads one byte that must be exactly 0x00 or 0x01.
func (p *BinaryParser) ReadBool(field string) (bool, error) {
	start := p.pos
	b, err := p.ReadUint8(field)
	if err != nil {
		return false, err
	}
	switch b {
	case boolFalse:
		return false, nil
	case boolTrue:
		return true, nil
	default:
		p.pos = start
		return false, newFormatError(field, start, "non-canonical boolean 0x%02x", b)
	}
}

// ReadVarString reads a signed 32-bit byte count followed by that many bytes.
// On failure the parser position is left at the start of the prefix.
func (p *BinaryParser) ReadVarString(field string) (string, error) {
	start := p.pos
	n, err := p.ReadInt32(field)
	if err != nil {
		return "", err
	}
	if n < 0 {
		p.pos = start
		return "", newFormatError(field, start, "negative length prefix %d", n)
	}
	if p.maxStringLength > 0 && int(n) > p.maxStringLength {
		p.pos = start
		return "", newFormatError(field, start, "length prefix %d exceeds limit %d", n, p.maxStringLength)
	}
	if int(n) > p.Remaining() {
		p.pos = start
		return "", newFormatError(field, start, "length prefix %d exceeds %d remaining bytes", n, p.Remaining())
	}
	raw := p.data[p.pos : p.pos+int(n)]
	if p.requireUTF8 && !utf8.Valid(raw) {
		p.pos = start
		return "", newFormatError(field, start, "string is not valid UTF-8")
	}
	p.pos += int(n)
	return string(raw), nil
}
