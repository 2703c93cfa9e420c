package serdes

import (
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types/interfaces"
)

// Serializable is implemented by protocol entities that cross the wire in
// binary form. Size must equal the number of bytes Serialize writes.
type Serializable interface {
	Serialize(s interfaces.BinarySerializer) error
	Deserialize(p interfaces.BinaryParser) error
	Size() int
}

// VarStringSize returns the encoded size of s: its prefix plus its bytes.
func VarStringSize(s string) int {
	return Int32Size + len(s)
}

// SizeOf returns the encoded size of e without serializing it.
func SizeOf(e Serializable) int {
	return e.Size()
}

// Encode serializes e and checks the result against e.Size().
func Encode(e Serializable) ([]byte, error) {
	size := e.Size()
	s := NewBinarySerializer(size)
	if err := e.Serialize(s); err != nil {
		return nil, err
	}
	if s.Len() != size {
		return nil, fmt.Errorf("%w: wrote %d bytes, Size() reported %d", ErrSizeMismatch, s.Len(), size)
	}
	return s.GetSink(), nil
}

// Decode deserializes data into e. The whole buffer must be consumed.
func Decode(data []byte, e Serializable, opts ...ParserOption) error {
	p := NewBinaryParser(data, opts...)
	if err := e.Deserialize(p); err != nil {
		return err
	}
	if p.HasMore() {
		return newFormatError("payload", p.Offset(), "%d trailing bytes", p.Remaining())
	}
	return nil
}
