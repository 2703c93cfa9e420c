package types

import (
	"encoding/json"
	"testing"

	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/serdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const neoTokenHash = "0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5"

func TestHash160StringRoundTrip(t *testing.T) {
	h, err := Hash160FromString(neoTokenHash)
	require.NoError(t, err)

	// Wire order is the reverse of the display order.
	assert.Equal(t, byte(0xf5), h[0])
	assert.Equal(t, byte(0xef), h[Hash160Size-1])
	assert.Equal(t, neoTokenHash, h.String())

	noPrefix, err := Hash160FromString(neoTokenHash[2:])
	require.NoError(t, err)
	assert.Equal(t, h, noPrefix)
}

func TestHash160FromStringRejects(t *testing.T) {
	for _, in := range []string{"", "0x", "0xzz4073a0f2b305a38ec4050e4d3d28bc40ea63f5", neoTokenHash + "00"} {
		_, err := Hash160FromString(in)
		require.ErrorIs(t, err, ErrInvalidHash160String, in)
		assert.Contains(t, err.Error(), in)
	}
}

func TestHash256FromBytesLength(t *testing.T) {
	_, err := Hash256FromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidHashLength)

	h, err := Hash256FromBytes(make([]byte, 32))
	require.NoError(t, err)
	assert.True(t, h.IsZero())
}

func TestHashJSON(t *testing.T) {
	var payload struct {
		Hash Hash160 `json:"hash"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"hash":"`+neoTokenHash+`"}`), &payload))
	assert.Equal(t, neoTokenHash, payload.Hash.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hash":"`+neoTokenHash+`"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"hash":"0x01"}`), &payload))
}

func TestReadHashUnderflow(t *testing.T) {
	_, err := ReadHash160(serdes.NewBinaryParser(make([]byte, 10)), "hash")
	require.ErrorIs(t, err, serdes.ErrFormat)
	assert.Contains(t, err.Error(), "hash")

	_, err = ReadHash256(serdes.NewBinaryParser(make([]byte, 31)), "txid")
	assert.ErrorIs(t, err, serdes.ErrFormat)
}

func TestHashSerializeRoundTrip(t *testing.T) {
	h, err := Hash160FromString(neoTokenHash)
	require.NoError(t, err)

	s := serdes.NewBinarySerializer(Hash160Size)
	h.Serialize(s)
	assert.Equal(t, h.Bytes(), s.GetSink())

	got, err := ReadHash160(serdes.NewBinaryParser(s.GetSink()), "hash")
	require.NoError(t, err)
	assert.Equal(t, h, got)
}
