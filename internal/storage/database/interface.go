// Package database defines the key-value contract the stores are written against.
package database

//go:generate mockgen -destination=mocks/mock_db.go -package=mocks github.com/LeJamon/goNeoRPC/internal/storage/database DB

import (
	"context"
)

// DB defines the operations a key-value backend must support.
type DB interface {
	// Basic operations
	Read(ctx context.Context, key []byte) ([]byte, error)
	Write(ctx context.Context, key []byte, value []byte) error
	Delete(ctx context.Context, key []byte) error

	// Batch operations, applied atomically
	Batch(ctx context.Context, ops []BatchOperation) error

	// Iterator walks keys in [start, end); a nil bound is open.
	Iterator(ctx context.Context, start, end []byte) (Iterator, error)
}

// Iterator allows traversing over database entries
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Close() error
}

// BatchOperation represents a single operation in a batch
type BatchOperation struct {
	Type  BatchOpType
	Key   []byte
	Value []byte
}

type BatchOpType int

const (
	BatchPut BatchOpType = iota
	BatchDelete
)

// PrefixEnd returns the smallest key greater than every key starting with
// prefix, or nil when no such key exists.
func PrefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
