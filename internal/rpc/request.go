package rpc

import (
	"fmt"

	json2 "github.com/gorilla/rpc/v2/json2"
)

// EncodeRequest builds a JSON-RPC 2.0 request body for method. NEO nodes take
// positional parameters, so params is normally a slice; nil sends an empty array.
func EncodeRequest(method string, params ...any) ([]byte, error) {
	if method == "" {
		return nil, fmt.Errorf("encode request: method must not be empty")
	}
	if params == nil {
		params = []any{}
	}
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return nil, fmt.Errorf("encode request %s: %w", method, err)
	}
	return body, nil
}
