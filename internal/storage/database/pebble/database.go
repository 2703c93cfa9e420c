// Package pebble implements database.DB on top of cockroachdb/pebble.
package pebble

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/storage/database"
	"github.com/cockroachdb/pebble"
)

type DB struct {
	db *pebble.DB
}

func NewDB(db *pebble.DB) *DB {
	return &DB{db: db}
}

func (p *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	if p.db == nil {
		return nil, database.ErrDBClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, database.ErrKeyNotFound
		}
		return nil, err
	}
	defer closer.Close()

	// The slice is only valid until closer.Close
	valCopy := make([]byte, len(val))
	copy(valCopy, val)
	return valCopy, nil
}

func (p *DB) Write(ctx context.Context, key, value []byte) error {
	if p.db == nil {
		return database.ErrDBClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Set(key, value, pebble.Sync)
}

func (p *DB) Delete(ctx context.Context, key []byte) error {
	if p.db == nil {
		return database.ErrDBClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Delete(key, pebble.Sync)
}

func (p *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if p.db == nil {
		return database.ErrDBClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := p.db.NewBatch()
	defer batch.Close()

	for i, op := range ops {
		switch op.Type {
		case database.BatchPut:
			if err := batch.Set(op.Key, op.Value, nil); err != nil {
				return fmt.Errorf("%w: op %d: %v", database.ErrBatchOperationFailed, i, err)
			}
		case database.BatchDelete:
			if err := batch.Delete(op.Key, nil); err != nil {
				return fmt.Errorf("%w: op %d: %v", database.ErrBatchOperationFailed, i, err)
			}
		default:
			return fmt.Errorf("%w: unknown batch operation type: %d", database.ErrBatchOperationFailed, op.Type)
		}
	}

	return batch.Commit(pebble.Sync)
}

type Iterator struct {
	iter    *pebble.Iterator
	started bool
	current struct {
		key, value []byte
	}
}

func (p *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if p.db == nil {
		return nil, database.ErrDBClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})
	if err != nil {
		return nil, fmt.Errorf("open iterator: %w", err)
	}

	return &Iterator{iter: iter}, nil
}

func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		it.iter.First()
	} else {
		it.iter.Next()
	}

	if !it.iter.Valid() {
		return false
	}

	key := it.iter.Key()
	val := it.iter.Value()

	it.current.key = append([]byte(nil), key...)
	it.current.value = append([]byte(nil), val...)
	return true
}

func (it *Iterator) Key() []byte {
	return it.current.key
}

func (it *Iterator) Value() []byte {
	return it.current.value
}

func (it *Iterator) Error() error {
	return it.iter.Error()
}

func (it *Iterator) Close() error {
	return it.iter.Close()
}
