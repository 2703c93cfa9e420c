package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/metrics"
	"github.com/LeJamon/goNeoRPC/internal/rpc/rpc_types"
)

// ErrMalformedResponse is returned when an envelope has both or neither of
// result and error, or a member that does not decode.
var ErrMalformedResponse = errors.New("malformed JSON-RPC response")

// RawFields is the top-level members of a response object, undecoded.
type RawFields map[string]json.RawMessage

// TextDecoder turns response text into its top-level members.
type TextDecoder interface {
	Decode(text []byte) (RawFields, error)
}

// JSONDecoder is the encoding/json TextDecoder.
type JSONDecoder struct{}

func (JSONDecoder) Decode(text []byte) (RawFields, error) {
	var fields RawFields
	if err := json.Unmarshal(text, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: response is null", ErrMalformedResponse)
	}
	return fields, nil
}

// DecodeResponse decodes a response payload with JSONDecoder.
func DecodeResponse[T any](data []byte) (*Response[T], error) {
	return DecodeResponseWith[T](JSONDecoder{}, data)
}

// DecodeResponseWith decodes a response payload with dec.
func DecodeResponseWith[T any](dec TextDecoder, data []byte) (*Response[T], error) {
	fields, err := dec.Decode(data)
	if err != nil {
		metrics.EnvelopeDecoded(metrics.OutcomeMalformed)
		return nil, err
	}
	return ResponseFromFields[T](fields, data)
}

// ResponseFromFields builds a Response from decoded members.
// "error": null counts as absent; a "result" member counts as present even when null.
func ResponseFromFields[T any](fields RawFields, raw []byte) (*Response[T], error) {
	resp, err := responseFromFields[T](fields, raw)
	switch {
	case err != nil:
		metrics.EnvelopeDecoded(metrics.OutcomeMalformed)
	case resp.IsSuccess():
		metrics.EnvelopeDecoded(metrics.OutcomeSuccess)
	default:
		metrics.EnvelopeDecoded(metrics.OutcomeFailure)
	}
	return resp, err
}

func responseFromFields[T any](fields RawFields, raw []byte) (*Response[T], error) {
	version := JSONRPCVersion
	if v, ok := fields["jsonrpc"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return nil, fmt.Errorf("%w: jsonrpc: %v", ErrMalformedResponse, err)
		}
	}

	var id int64
	if v, ok := fields["id"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &id); err != nil {
			return nil, fmt.Errorf("%w: id %s: %v", ErrMalformedResponse, v, err)
		}
	}

	errRaw, hasErr := fields["error"]
	if hasErr && isNull(errRaw) {
		hasErr = false
	}
	resRaw, hasRes := fields["result"]

	switch {
	case hasErr && hasRes:
		return nil, fmt.Errorf("%w: id %d: both result and error present", ErrMalformedResponse, id)
	case !hasErr && !hasRes:
		return nil, fmt.Errorf("%w: id %d: neither result nor error present", ErrMalformedResponse, id)
	case hasErr:
		var model rpc_types.ErrorModel
		if err := json.Unmarshal(errRaw, &model); err != nil {
			return nil, fmt.Errorf("%w: id %d: error object: %v", ErrMalformedResponse, id, err)
		}
		return NewFailure[T](version, id, model, raw), nil
	}

	var result T
	if err := json.Unmarshal(resRaw, &result); err != nil {
		return nil, fmt.Errorf("%w: id %d: result: %w", ErrMalformedResponse, id, err)
	}
	return NewSuccess(version, id, result, raw), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
