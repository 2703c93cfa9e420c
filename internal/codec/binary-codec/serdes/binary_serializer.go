package serdes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types/interfaces"
)

var _ interfaces.BinarySerializer = (*BinarySerializer)(nil)

// BinarySerializer writes the inverse of what BinaryParser reads into a
// growable buffer.
type BinarySerializer struct {
	sink bytes.Buffer
}

// NewBinarySerializer returns a serializer with capacity for sizeHint bytes.
func NewBinarySerializer(sizeHint int) *BinarySerializer {
	s := &BinarySerializer{}
	if sizeHint > 0 {
		s.sink.Grow(sizeHint)
	}
	return s
}

// WriteUint8 appends a single byte.
func (s *BinarySerializer) WriteUint8(v uint8) {
	s.sink.WriteByte(v)
}

// WriteBytes appends raw bytes.
func (s *BinarySerializer) WriteBytes(b []byte) {
	s.sink.Write(b)
}

// WriteInt32 appends a 4-byte little-endian signed integer.
func (s *BinarySerializer) WriteInt32(v int32) {
	var buf [Int32Size]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	s.sink.Write(buf[:])
}

// WriteBool appends 0x01 for true and 0x00 for false.
func (s *BinarySerializer) WriteBool(v bool) {
	if v {
		s.sink.WriteByte(boolTrue)
		return
	}
	s.sink.WriteByte(boolFalse)
}

// WriteVarString appends the byte length of str as a signed 32-bit prefix
// followed by the bytes of str.
func (s *BinarySerializer) WriteVarString(field, str string) error {
	if len(str) > math.MaxInt32 {
		return fmt.Errorf("%s: string of %d bytes does not fit a 32-bit length prefix", field, len(str))
	}
	s.WriteInt32(int32(len(str)))
	s.sink.WriteString(str)
	return nil
}

// GetSink returns the bytes written so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink.Bytes()
}

// Len returns the number of bytes written so far.
func (s *BinarySerializer) Len() int {
	return s.sink.Len()
}
