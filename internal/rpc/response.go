package rpc

import (
	"encoding/json"

	"github.com/LeJamon/goNeoRPC/internal/rpc/rpc_types"
)

// JSONRPCVersion is the protocol version every NEO node reports.
const JSONRPCVersion = "2.0"

// Response is one JSON-RPC reply carrying either a result of type T or an
// error object, never both. It is built once while decoding and not changed after.
type Response[T any] struct {
	jsonrpc   string
	id        int64
	result    T
	hasResult bool
	err       *rpc_types.ErrorModel
	raw       []byte
}

// NewSuccess builds a response holding result.
func NewSuccess[T any](version string, id int64, result T, raw []byte) *Response[T] {
	return &Response[T]{
		jsonrpc:   version,
		id:        id,
		result:    result,
		hasResult: true,
		raw:       raw,
	}
}

// NewFailure builds a response holding the server's error object.
func NewFailure[T any](version string, id int64, model rpc_types.ErrorModel, raw []byte) *Response[T] {
	return &Response[T]{
		jsonrpc: version,
		id:      id,
		err:     &model,
		raw:     raw,
	}
}

// IsSuccess reports whether the response holds a result.
func (r *Response[T]) IsSuccess() bool {
	return r.hasResult
}

// HasError reports whether the response holds an error object.
func (r *Response[T]) HasError() bool {
	return r.err != nil
}

// GetResult returns the result, or an *rpc_types.RpcError carrying the
// server's code and message when the call failed.
func (r *Response[T]) GetResult() (T, error) {
	if r.hasResult {
		return r.result, nil
	}
	var zero T
	if r.err == nil {
		return zero, ErrMalformedResponse
	}
	return zero, rpc_types.NewRpcError(*r.err)
}

// Error returns a copy of the error object, or nil on success.
func (r *Response[T]) Error() *rpc_types.ErrorModel {
	if r.err == nil {
		return nil
	}
	model := *r.err
	return &model
}

func (r *Response[T]) JSONRPC() string { return r.jsonrpc }
func (r *Response[T]) ID() int64       { return r.id }

// Raw returns the payload the response was decoded from, if kept.
func (r *Response[T]) Raw() []byte {
	if r.raw == nil {
		return nil
	}
	return append([]byte(nil), r.raw...)
}

type envelopeJSON struct {
	JSONRPC string                `json:"jsonrpc"`
	ID      int64                 `json:"id"`
	Result  any                   `json:"result,omitempty"`
	Error   *rpc_types.ErrorModel `json:"error,omitempty"`
}

// MarshalJSON writes the envelope with exactly one of result or error.
// A successful response whose result is nil is written as "result": null.
func (r *Response[T]) MarshalJSON() ([]byte, error) {
	if r.hasResult {
		body, err := json.Marshal(r.result)
		if err != nil {
			return nil, err
		}
		return json.Marshal(envelopeJSON{JSONRPC: r.jsonrpc, ID: r.id, Result: json.RawMessage(body)})
	}
	return json.Marshal(envelopeJSON{JSONRPC: r.jsonrpc, ID: r.id, Error: r.err})
}
