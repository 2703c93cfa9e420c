// Package tokenstore persists method tokens in their wire encoding.
package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/serdes"
	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
	"github.com/LeJamon/goNeoRPC/internal/metrics"
	"github.com/LeJamon/goNeoRPC/internal/storage/database"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	// DefaultCacheSize is used when Config.CacheSize is not positive.
	DefaultCacheSize = 1024

	keyPrefix = "tok/"
)

var (
	// ErrTokenNotFound is returned when no token is stored for a hash and method.
	ErrTokenNotFound = errors.New("method token not found")
	// ErrInvalidToken is returned when a token fails IsValid before it is stored,
	// or when its encoding would not decode under the store's parser limits.
	ErrInvalidToken = errors.New("invalid method token")
)

// Config tunes the store.
type Config struct {
	CacheSize       int
	MaxStringLength int
}

// Store keeps method tokens keyed by contract hash and method name, with an
// LRU of decoded tokens in front of the backend. Tokens are immutable, so
// cached pointers are handed out directly.
type Store struct {
	db     database.DB
	cache  *lru.Cache[string, *coretypes.MethodToken]
	opts   []serdes.ParserOption
	logger *zap.Logger
}

// New returns a store over db.
func New(db database.DB, cfg Config, logger *zap.Logger) (*Store, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *coretypes.MethodToken](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create token cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []serdes.ParserOption{serdes.WithUTF8Validation()}
	if cfg.MaxStringLength > 0 {
		opts = append(opts, serdes.WithMaxStringLength(cfg.MaxStringLength))
	}

	return &Store{
		db:     db,
		cache:  cache,
		opts:   opts,
		logger: logger.Named("store"),
	}, nil
}

// Put stores t, replacing any token with the same hash and method.
func (s *Store) Put(ctx context.Context, t *coretypes.MethodToken) error {
	key, value, err := s.encode(t)
	if err != nil {
		return err
	}
	if err := s.db.Write(ctx, key, value); err != nil {
		return fmt.Errorf("write token %s: %w", t, err)
	}
	s.cache.Add(string(key), t)
	metrics.StoreBytesWritten(len(value))
	s.logger.Debug("stored method token",
		zap.Stringer("hash", t.Hash()),
		zap.String("method", t.Method()),
		zap.Int("bytes", len(value)))
	return nil
}

// PutBatch stores every token in one atomic batch.
func (s *Store) PutBatch(ctx context.Context, tokens []*coretypes.MethodToken) error {
	ops := make([]database.BatchOperation, 0, len(tokens))
	written := 0
	for _, t := range tokens {
		key, value, err := s.encode(t)
		if err != nil {
			return err
		}
		ops = append(ops, database.BatchOperation{Type: database.BatchPut, Key: key, Value: value})
		written += len(value)
	}
	if err := s.db.Batch(ctx, ops); err != nil {
		return fmt.Errorf("write %d tokens: %w", len(tokens), err)
	}
	for i, op := range ops {
		s.cache.Add(string(op.Key), tokens[i])
	}
	metrics.StoreBytesWritten(written)
	s.logger.Debug("stored method token batch", zap.Int("tokens", len(tokens)), zap.Int("bytes", written))
	return nil
}

// Get returns the token for hash and method.
func (s *Store) Get(ctx context.Context, hash codectypes.Hash160, method string) (*coretypes.MethodToken, error) {
	key := tokenKey(hash, method)
	if t, ok := s.cache.Get(string(key)); ok {
		metrics.CacheHit()
		return t, nil
	}
	metrics.CacheMiss()

	value, err := s.db.Read(ctx, key)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s %q", ErrTokenNotFound, hash, method)
		}
		return nil, fmt.Errorf("read token %s %q: %w", hash, method, err)
	}

	t, err := coretypes.DecodeMethodToken(value, s.opts...)
	if err != nil {
		s.logger.Warn("stored method token does not decode",
			zap.Stringer("hash", hash), zap.String("method", method), zap.Error(err))
		return nil, fmt.Errorf("decode token %s %q: %w", hash, method, err)
	}
	s.cache.Add(string(key), t)
	return t, nil
}

// Delete removes the token for hash and method. Deleting a missing token is not an error.
func (s *Store) Delete(ctx context.Context, hash codectypes.Hash160, method string) error {
	key := tokenKey(hash, method)
	if err := s.db.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete token %s %q: %w", hash, method, err)
	}
	s.cache.Remove(string(key))
	return nil
}

// List returns every token stored for hash, ordered by method name bytes.
func (s *Store) List(ctx context.Context, hash codectypes.Hash160) ([]*coretypes.MethodToken, error) {
	prefix := hashPrefix(hash)
	it, err := s.db.Iterator(ctx, prefix, database.PrefixEnd(prefix))
	if err != nil {
		return nil, fmt.Errorf("list tokens of %s: %w", hash, err)
	}
	defer it.Close()

	var tokens []*coretypes.MethodToken
	for it.Next() {
		t, err := coretypes.DecodeMethodToken(it.Value(), s.opts...)
		if err != nil {
			return nil, fmt.Errorf("decode token at key %x: %w", it.Key(), err)
		}
		tokens = append(tokens, t)
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("list tokens of %s: %w", hash, err)
	}
	return tokens, nil
}

// CacheLen returns the number of decoded tokens held in memory.
func (s *Store) CacheLen() int {
	return s.cache.Len()
}

func (s *Store) encode(t *coretypes.MethodToken) ([]byte, []byte, error) {
	if t == nil {
		return nil, nil, &coretypes.ArgumentError{Field: "token"}
	}
	if !t.IsValid() {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidToken, t)
	}
	value, err := serdes.Encode(t)
	if err != nil {
		return nil, nil, fmt.Errorf("encode token %s: %w", t, err)
	}
	// Get and List read with s.opts; refuse anything they would reject.
	if err := serdes.Decode(value, &coretypes.MethodToken{}, s.opts...); err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrInvalidToken, t, err)
	}
	return tokenKey(t.Hash(), t.Method()), value, nil
}

func hashPrefix(hash codectypes.Hash160) []byte {
	key := make([]byte, 0, len(keyPrefix)+codectypes.Hash160Size)
	key = append(key, keyPrefix...)
	return append(key, hash[:]...)
}

func tokenKey(hash codectypes.Hash160, method string) []byte {
	return append(hashPrefix(hash), method...)
}
