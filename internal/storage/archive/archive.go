// Package archive keeps raw response payloads, compressed, for later inspection.
package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/metrics"
	"github.com/LeJamon/goNeoRPC/internal/storage/compression"
	"github.com/LeJamon/goNeoRPC/internal/storage/database"
	"go.uber.org/zap"
)

const keyPrefix = "env/"

// ErrPayloadNotFound is returned when no payload is archived under a name.
var ErrPayloadNotFound = errors.New("payload not found")

// Archive stores payloads by name in compression frames.
type Archive struct {
	db         database.DB
	compressor compression.Compressor
	logger     *zap.Logger
}

// New returns an archive over db. A nil compressor stores raw frames.
func New(db database.DB, compressor compression.Compressor, logger *zap.Logger) *Archive {
	if compressor == nil {
		compressor = &compression.NoCompressor{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{
		db:         db,
		compressor: compressor,
		logger:     logger.Named("archive"),
	}
}

// Put stores payload under name, replacing any previous payload.
func (a *Archive) Put(ctx context.Context, name string, payload []byte) error {
	if name == "" {
		return fmt.Errorf("archive payload: name must not be empty")
	}
	frame, err := a.compressor.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress payload %s: %w", name, err)
	}
	if err := a.db.Write(ctx, []byte(keyPrefix+name), frame); err != nil {
		return fmt.Errorf("write payload %s: %w", name, err)
	}
	metrics.StoreBytesWritten(len(frame))
	a.logger.Debug("archived payload",
		zap.String("name", name),
		zap.String("compressor", a.compressor.Name()),
		zap.Int("raw", len(payload)),
		zap.Int("stored", len(frame)))
	return nil
}

// Get returns the payload stored under name.
func (a *Archive) Get(ctx context.Context, name string) ([]byte, error) {
	frame, err := a.db.Read(ctx, []byte(keyPrefix+name))
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPayloadNotFound, name)
		}
		return nil, fmt.Errorf("read payload %s: %w", name, err)
	}
	payload, err := a.compressor.Decompress(frame)
	if err != nil {
		return nil, fmt.Errorf("decompress payload %s: %w", name, err)
	}
	return payload, nil
}

// Names returns the archived payload names in key order.
func (a *Archive) Names(ctx context.Context) ([]string, error) {
	prefix := []byte(keyPrefix)
	it, err := a.db.Iterator(ctx, prefix, database.PrefixEnd(prefix))
	if err != nil {
		return nil, fmt.Errorf("list payloads: %w", err)
	}
	defer it.Close()

	var names []string
	for it.Next() {
		names = append(names, string(it.Key()[len(prefix):]))
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("list payloads: %w", err)
	}
	return names, nil
}
