// Package interfaces defines the BinaryParser interface for binary codec parsing operations.
//
//revive:disable:var-naming
package interfaces

// BinaryParser is an interface that defines the methods for a binary parser.
// Every read names the field being decoded so failures can report it.
type BinaryParser interface {
	ReadUint8(field string) (uint8, error)
	ReadBytes(field string, n int) ([]byte, error)
	ReadInt32(field string) (int32, error)
	ReadBool(field string) (bool, error)
	ReadVarString(field string) (string, error)
	HasMore() bool
	Remaining() int
	Offset() int
}
