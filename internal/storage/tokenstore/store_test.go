package tokenstore

import (
	"context"
	"errors"
	"testing"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/serdes"
	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
	"github.com/LeJamon/goNeoRPC/internal/metrics"
	"github.com/LeJamon/goNeoRPC/internal/storage/database"
	"github.com/LeJamon/goNeoRPC/internal/storage/database/mocks"
	"github.com/LeJamon/goNeoRPC/internal/storage/database/pebble"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gasHash = mustHash("0xd2a4cff31913016155e38e474a2c06d08be276cf")

func mustHash(s string) codectypes.Hash160 {
	h, err := codectypes.Hash160FromString(s)
	if err != nil {
		panic(err)
	}
	return h
}

func newToken(t *testing.T, hash codectypes.Hash160, method string, params int32) *coretypes.MethodToken {
	t.Helper()
	flags := "All"
	tok, err := coretypes.NewMethodToken(&hash, &method, params, true, &flags)
	require.NoError(t, err)
	return tok
}

func openPebbleStore(t *testing.T, cacheSize int) *Store {
	t.Helper()
	manager := pebble.NewManager(t.TempDir(), 0)
	t.Cleanup(func() { _ = manager.Close() })

	db, err := manager.OpenDB("tokens")
	require.NoError(t, err)

	store, err := New(db, Config{CacheSize: cacheSize}, nil)
	require.NoError(t, err)
	return store
}

// ============================================================================
// Pebble-backed behaviour
// ============================================================================

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openPebbleStore(t, 1)

	transfer := newToken(t, gasHash, "transfer", 4)
	balanceOf := newToken(t, gasHash, "balanceOf", 1)
	require.NoError(t, store.Put(ctx, transfer))
	require.NoError(t, store.Put(ctx, balanceOf))

	// cache holds one entry, so transfer is read back from pebble
	got, err := store.Get(ctx, gasHash, "transfer")
	require.NoError(t, err)
	assert.True(t, transfer.Equal(got))
	assert.Equal(t, 1, store.CacheLen())

	listed, err := store.List(ctx, gasHash)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "balanceOf", listed[0].Method())
	assert.Equal(t, "transfer", listed[1].Method())

	other, err := store.List(ctx, codectypes.Hash160{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := openPebbleStore(t, 8)

	require.NoError(t, store.Put(ctx, newToken(t, gasHash, "symbol", 0)))
	require.NoError(t, store.Delete(ctx, gasHash, "symbol"))

	_, err := store.Get(ctx, gasHash, "symbol")
	assert.ErrorIs(t, err, ErrTokenNotFound)
	assert.Contains(t, err.Error(), "symbol")

	require.NoError(t, store.Delete(ctx, gasHash, "symbol"), "deleting twice is allowed")
}

func TestStorePutBatch(t *testing.T) {
	ctx := context.Background()
	store := openPebbleStore(t, 8)

	tokens := []*coretypes.MethodToken{
		newToken(t, gasHash, "decimals", 0),
		newToken(t, gasHash, "totalSupply", 0),
	}
	require.NoError(t, store.PutBatch(ctx, tokens))

	listed, err := store.List(ctx, gasHash)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestStoreRejectsInvalidTokens(t *testing.T) {
	store := openPebbleStore(t, 8)
	empty := ""
	flags := "All"

	tok, err := coretypes.NewMethodToken(&gasHash, &empty, 0, false, &flags)
	require.NoError(t, err)
	assert.ErrorIs(t, store.Put(context.Background(), tok), ErrInvalidToken)
	assert.ErrorIs(t, store.Put(context.Background(), nil), coretypes.ErrArgument)
}

func TestStoreRejectsTokensItCannotReadBack(t *testing.T) {
	ctx := context.Background()
	manager := pebble.NewManager(t.TempDir(), 0)
	t.Cleanup(func() { _ = manager.Close() })
	db, err := manager.OpenDB("tokens")
	require.NoError(t, err)

	cfg := Config{MaxStringLength: 8}
	store, err := New(db, cfg, nil)
	require.NoError(t, err)

	transfer := newToken(t, gasHash, "transfer", 4)
	require.NoError(t, store.Put(ctx, transfer))

	tests := []struct {
		name   string
		method string
	}{
		{"method over the length cap", "averyveryverylongmethodname"},
		{"method not UTF-8", "ba\xffd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := newToken(t, gasHash, tt.method, 0)

			err := store.Put(ctx, tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.ErrorIs(t, err, serdes.ErrFormat)
			assert.Contains(t, err.Error(), "method")

			err = store.PutBatch(ctx, []*coretypes.MethodToken{newToken(t, gasHash, "symbol", 0), tok})
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	// a cold store over the same database sees only the readable token
	fresh, err := New(db, cfg, nil)
	require.NoError(t, err)

	listed, err := fresh.List(ctx, gasHash)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, transfer.Equal(listed[0]))

	_, err = fresh.Get(ctx, gasHash, "averyveryverylongmethodname")
	assert.ErrorIs(t, err, ErrTokenNotFound)
	_, err = fresh.Get(ctx, gasHash, "symbol")
	assert.ErrorIs(t, err, ErrTokenNotFound, "a rejected batch writes nothing")
}

// ============================================================================
// Mocked backend
// ============================================================================

func TestStoreCacheAvoidsBackendRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDB(ctrl)
	ctx := context.Background()

	tok := newToken(t, gasHash, "transfer", 4)
	encoded, err := serdes.Encode(tok)
	require.NoError(t, err)

	db.EXPECT().Read(gomock.Any(), tokenKey(gasHash, "transfer")).Return(encoded, nil).Times(1)

	store, err := New(db, Config{}, nil)
	require.NoError(t, err)

	hits, misses := metrics.CacheHits(), metrics.CacheMisses()
	for i := 0; i < 3; i++ {
		got, err := store.Get(ctx, gasHash, "transfer")
		require.NoError(t, err)
		assert.True(t, tok.Equal(got))
	}
	assert.Equal(t, hits+2, metrics.CacheHits())
	assert.Equal(t, misses+1, metrics.CacheMisses())
}

func TestStorePropagatesBackendErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDB(ctrl)
	ctx := context.Background()
	boom := errors.New("disk on fire")

	db.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)
	db.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, database.ErrDBClosed)

	store, err := New(db, Config{}, nil)
	require.NoError(t, err)

	err = store.Put(ctx, newToken(t, gasHash, "transfer", 4))
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.CacheLen(), "failed writes are not cached")

	_, err = store.Get(ctx, gasHash, "transfer")
	assert.ErrorIs(t, err, database.ErrDBClosed)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
}

func TestStoreReportsCorruptValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDB(ctrl)

	db.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]byte{0x01, 0x02}, nil)

	store, err := New(db, Config{}, nil)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), gasHash, "transfer")
	assert.ErrorIs(t, err, serdes.ErrFormat)
}

func TestStoreEnforcesMaxStringLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDB(ctrl)

	tok := newToken(t, gasHash, "averyveryverylongmethodname", 0)
	encoded, err := serdes.Encode(tok)
	require.NoError(t, err)
	db.EXPECT().Read(gomock.Any(), gomock.Any()).Return(encoded, nil)

	store, err := New(db, Config{MaxStringLength: 8}, nil)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), gasHash, tok.Method())
	assert.ErrorIs(t, err, serdes.ErrFormat)
}
