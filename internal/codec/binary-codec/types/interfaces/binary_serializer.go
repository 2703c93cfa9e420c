// Package interfaces defines the BinarySerializer interface for binary codec serialization operations.
//
//revive:disable:var-naming
package interfaces

// BinarySerializer is an interface that defines the methods for a binary serializer.
type BinarySerializer interface {
	WriteUint8(v uint8)
	WriteBytes(b []byte)
	WriteInt32(v int32)
	WriteBool(v bool)
	WriteVarString(field, s string) error
	GetSink() []byte
	Len() int
}
