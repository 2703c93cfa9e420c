package rpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/LeJamon/goNeoRPC/internal/metrics"
	"github.com/LeJamon/goNeoRPC/internal/rpc/rpc_types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Well-formed envelopes
// ============================================================================

func TestDecodeSuccess(t *testing.T) {
	payload := []byte(`{"jsonrpc":"2.0","id":1,"result":{"address":"NiHURyS83nX2mpxtA7xq84cGxVbHojj5Wc","isvalid":true}}`)

	resp, err := DecodeResponse[rpc_types.ValidateAddressResult](payload)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, int64(1), resp.ID())
	assert.Equal(t, payload, resp.Raw())

	res, err := resp.GetResult()
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestDecodeFailure(t *testing.T) {
	payload := []byte(`{"jsonrpc":"2.0","id":2,"error":{"code":-32602,"message":"Invalid params","data":"hash"}}`)

	resp, err := DecodeResponse[rpc_types.ApplicationLog](payload)
	require.NoError(t, err)
	assert.True(t, resp.HasError())

	_, err = resp.GetResult()
	var rpcErr *rpc_types.RpcError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, rpc_types.RpcINVALID_PARAMS, rpcErr.Code)
	assert.Equal(t, "Invalid params", rpcErr.Message)
	assert.JSONEq(t, `"hash"`, string(rpcErr.Data))
}

func TestDecodeNullSemantics(t *testing.T) {
	t.Run("error null counts as absent", func(t *testing.T) {
		resp, err := DecodeResponse[string](
			[]byte(`{"jsonrpc":"2.0","id":3,"result":"x","error":null}`))
		require.NoError(t, err)
		assert.True(t, resp.IsSuccess())
	})

	t.Run("result null counts as present", func(t *testing.T) {
		resp, err := DecodeResponse[*rpc_types.InvokeResult]([]byte(`{"jsonrpc":"2.0","id":4,"result":null}`))
		require.NoError(t, err)
		assert.True(t, resp.IsSuccess())
		res, err := resp.GetResult()
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("null id decodes as zero", func(t *testing.T) {
		resp, err := DecodeResponse[string]([]byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`))
		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.ID())
	})
}

// ============================================================================
// Malformed envelopes
// ============================================================================

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		message string
	}{
		{"both present", `{"jsonrpc":"2.0","id":9,"result":1,"error":{"code":-1,"message":"x"}}`, "id 9: both"},
		{"neither present", `{"jsonrpc":"2.0","id":10}`, "id 10: neither"},
		{"not an object", `[1,2]`, ""},
		{"json null", `null`, "null"},
		{"invalid json", `{"jsonrpc":`, ""},
		{"string id", `{"jsonrpc":"2.0","id":"a","result":1}`, "id"},
		{"error not an object", `{"jsonrpc":"2.0","id":11,"error":"boom"}`, "error object"},
		{"result type mismatch", `{"jsonrpc":"2.0","id":12,"result":"text"}`, "result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := metrics.EnvelopesDecoded(metrics.OutcomeMalformed)

			resp, err := DecodeResponse[int]([]byte(tt.payload))
			require.ErrorIs(t, err, ErrMalformedResponse)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, before+1, metrics.EnvelopesDecoded(metrics.OutcomeMalformed))
		})
	}
}

type fixedDecoder struct {
	fields RawFields
}

func (d fixedDecoder) Decode([]byte) (RawFields, error) {
	return d.fields, nil
}

func TestDecodeResponseWithCustomDecoder(t *testing.T) {
	dec := fixedDecoder{fields: RawFields{
		"id":     json.RawMessage(`42`),
		"result": json.RawMessage(`"pong"`),
	}}

	resp, err := DecodeResponseWith[string](dec, []byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID())
	assert.Equal(t, JSONRPCVersion, resp.JSONRPC(), "missing jsonrpc defaults to 2.0")

	got, err := resp.GetResult()
	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}
