package rpc_types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/rpc/v2/json2"
)

// NEO JSON-RPC error codes. The generic JSON-RPC 2.0 codes come from json2 so
// they stay in step with the request encoder.
const (
	// JSON-RPC 2.0
	RpcPARSE_ERROR      = int64(json2.E_PARSE)
	RpcINVALID_REQUEST  = int64(json2.E_INVALID_REQ)
	RpcMETHOD_NOT_FOUND = int64(json2.E_NO_METHOD)
	RpcINVALID_PARAMS   = int64(json2.E_BAD_PARAMS)
	RpcINTERNAL         = int64(json2.E_INTERNAL)
	RpcSERVER           = int64(json2.E_SERVER)

	// Unknown entities
	RpcUNKNOWN_BLOCK            = -101
	RpcUNKNOWN_CONTRACT         = -102
	RpcUNKNOWN_TRANSACTION      = -103
	RpcUNKNOWN_STORAGE_ITEM     = -104
	RpcUNKNOWN_SCRIPT_CONTAINER = -105
	RpcUNKNOWN_STATE_ROOT       = -106
	RpcUNKNOWN_SESSION          = -107
	RpcUNKNOWN_ITERATOR         = -108
	RpcUNKNOWN_HEIGHT           = -109

	// Wallet
	RpcINSUFFICIENT_FUNDS_WALLET = -300
	RpcWALLET_FEE_LIMIT          = -301
	RpcNO_OPENED_WALLET          = -302
	RpcWALLET_NOT_FOUND          = -303
	RpcWALLET_NOT_SUPPORTED      = -304

	// Inventory verification
	RpcVERIFICATION_FAILED      = -500
	RpcALREADY_EXISTS           = -501
	RpcMEMPOOL_CAP_REACHED      = -502
	RpcALREADY_IN_POOL          = -503
	RpcINSUFFICIENT_NETWORK_FEE = -504
	RpcPOLICY_FAILED            = -505
	RpcINVALID_SCRIPT           = -506
	RpcINVALID_ATTRIBUTE        = -507
	RpcINVALID_SIGNATURE        = -508
	RpcINVALID_SIZE             = -509
	RpcEXPIRED_TRANSACTION      = -510
	RpcINSUFFICIENT_FUNDS       = -511
	RpcINVALID_CONTRACT_VERIFY  = -512

	// Node state
	RpcACCESS_DENIED         = -600
	RpcSESSIONS_DISABLED     = -601
	RpcORACLE_DISABLED       = -602
	RpcORACLE_FINISHED       = -603
	RpcORACLE_NOT_FOUND      = -604
	RpcORACLE_NOT_DESIGNATED = -605
	RpcUNSUPPORTED_STATE     = -606
	RpcINVALID_PROOF         = -607
	RpcEXECUTION_FAILED      = -608
)

// ErrorModel is the error object of a JSON-RPC response as the server sent it.
type ErrorModel struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Equal compares by value, including the raw data bytes.
func (m ErrorModel) Equal(other ErrorModel) bool {
	return m.Code == other.Code && m.Message == other.Message && bytes.Equal(m.Data, other.Data)
}

// String returns the message unmodified, prefixed by the code.
func (m ErrorModel) String() string {
	return fmt.Sprintf("%d: %s", m.Code, m.Message)
}

// RpcError is the remote peer's reported failure, surfaced when a failed
// response's result is read. Code and Message are the server's, verbatim.
type RpcError struct {
	Code    int64
	Message string
	Data    json.RawMessage
}

// NewRpcError builds an RpcError from the response's error object.
func NewRpcError(model ErrorModel) *RpcError {
	return &RpcError{
		Code:    model.Code,
		Message: model.Message,
		Data:    model.Data,
	}
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Model returns the error object the RpcError was built from.
func (e *RpcError) Model() ErrorModel {
	return ErrorModel{Code: e.Code, Message: e.Message, Data: e.Data}
}

// Is matches another *RpcError with the same code, so callers can test
// errors.Is(err, &RpcError{Code: RpcUNKNOWN_TRANSACTION}).
func (e *RpcError) Is(target error) bool {
	t, ok := target.(*RpcError)
	return ok && t.Code == e.Code
}
