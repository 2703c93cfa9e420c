package rpc_types

import (
	"encoding/json"

	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
)

// StackItem is one VM stack value. Value is kept raw since its shape depends on Type.
type StackItem struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (s StackItem) Fields() []coretypes.Field {
	return []coretypes.Field{{Name: "type", Value: s.Type}, {Name: "value", Value: s.Value}}
}

func (s StackItem) Equal(other StackItem) bool {
	return coretypes.FieldsEqual(s.Fields(), other.Fields())
}

func (s StackItem) String() string {
	return coretypes.FieldsString("StackItem", s.Fields())
}

// Notification is an event emitted by a contract during execution.
// On the wire State is an Array stack item; it is flattened to its elements here.
type Notification struct {
	Contract  codectypes.Hash160
	EventName string
	State     []StackItem
}

type notificationJSON struct {
	Contract  codectypes.Hash160 `json:"contract"`
	EventName string             `json:"eventname"`
	State     struct {
		Type  string      `json:"type"`
		Value []StackItem `json:"value"`
	} `json:"state"`
}

func (n Notification) MarshalJSON() ([]byte, error) {
	var aux notificationJSON
	aux.Contract = n.Contract
	aux.EventName = n.EventName
	aux.State.Type = "Array"
	aux.State.Value = n.State
	if aux.State.Value == nil {
		aux.State.Value = []StackItem{}
	}
	return json.Marshal(aux)
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	var aux notificationJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*n = Notification{
		Contract:  aux.Contract,
		EventName: aux.EventName,
		State:     aux.State.Value,
	}
	return nil
}

// StateItem returns the i-th state element or a RangeError.
func (n Notification) StateItem(i int) (StackItem, error) {
	return coretypes.At("notification state", n.State, i)
}

// TryStateItem returns the i-th state element and whether it exists.
func (n Notification) TryStateItem(i int) (StackItem, bool) {
	return coretypes.TryAt(n.State, i)
}

func (n Notification) Fields() []coretypes.Field {
	return []coretypes.Field{
		{Name: "contract", Value: n.Contract},
		{Name: "eventname", Value: n.EventName},
		{Name: "state", Value: n.State},
	}
}

func (n Notification) Equal(other Notification) bool {
	return coretypes.FieldsEqual(n.Fields(), other.Fields())
}

func (n Notification) HashCode() uint64 {
	return coretypes.FieldsHash(n.Fields())
}

func (n Notification) String() string {
	return coretypes.FieldsString("Notification", n.Fields())
}

// Execution is one trigger's run within an application log.
type Execution struct {
	Trigger       string         `json:"trigger"`
	VMState       string         `json:"vmstate"`
	Exception     *string        `json:"exception"`
	GasConsumed   string         `json:"gasconsumed"`
	Stack         []StackItem    `json:"stack"`
	Notifications []Notification `json:"notifications"`
}

// Notification returns the i-th notification or a RangeError.
func (e Execution) Notification(i int) (Notification, error) {
	return coretypes.At("notifications", e.Notifications, i)
}

// TryNotification returns the i-th notification and whether it exists.
func (e Execution) TryNotification(i int) (Notification, bool) {
	return coretypes.TryAt(e.Notifications, i)
}

// StackItem returns the i-th result stack item or a RangeError.
func (e Execution) StackItem(i int) (StackItem, error) {
	return coretypes.At("stack", e.Stack, i)
}

// TryStackItem returns the i-th result stack item and whether it exists.
func (e Execution) TryStackItem(i int) (StackItem, bool) {
	return coretypes.TryAt(e.Stack, i)
}

// Faulted reports whether the VM ended in the FAULT state.
func (e Execution) Faulted() bool {
	return e.VMState == "FAULT"
}

func (e Execution) Fields() []coretypes.Field {
	return []coretypes.Field{
		{Name: "trigger", Value: e.Trigger},
		{Name: "vmstate", Value: e.VMState},
		{Name: "exception", Value: e.Exception},
		{Name: "gasconsumed", Value: e.GasConsumed},
		{Name: "stack", Value: e.Stack},
		{Name: "notifications", Value: e.Notifications},
	}
}

func (e Execution) Equal(other Execution) bool {
	return coretypes.FieldsEqual(e.Fields(), other.Fields())
}

// ApplicationLog is the result of getapplicationlog for a transaction or block.
type ApplicationLog struct {
	TxID       *codectypes.Hash256 `json:"txid,omitempty"`
	BlockHash  *codectypes.Hash256 `json:"blockhash,omitempty"`
	Executions []Execution         `json:"executions"`
}

// Execution returns the i-th execution or a RangeError.
func (l ApplicationLog) Execution(i int) (Execution, error) {
	return coretypes.At("executions", l.Executions, i)
}

// TryExecution returns the i-th execution and whether it exists.
func (l ApplicationLog) TryExecution(i int) (Execution, bool) {
	return coretypes.TryAt(l.Executions, i)
}

// InvokeResult is the result of invokefunction, invokescript and invokecontractverify.
type InvokeResult struct {
	Script        []byte         `json:"script"`
	State         string         `json:"state"`
	GasConsumed   string         `json:"gasconsumed"`
	Exception     *string        `json:"exception"`
	Notifications []Notification `json:"notifications"`
	Diagnostics   *Diagnostics   `json:"diagnostics,omitempty"`
	Stack         []StackItem    `json:"stack"`
	Session       string         `json:"session,omitempty"`
}

// StackItem returns the i-th result stack item or a RangeError.
func (r InvokeResult) StackItem(i int) (StackItem, error) {
	return coretypes.At("stack", r.Stack, i)
}

// TryStackItem returns the i-th result stack item and whether it exists.
func (r InvokeResult) TryStackItem(i int) (StackItem, bool) {
	return coretypes.TryAt(r.Stack, i)
}

// Notification returns the i-th notification or a RangeError.
func (r InvokeResult) Notification(i int) (Notification, error) {
	return coretypes.At("notifications", r.Notifications, i)
}

// TryNotification returns the i-th notification and whether it exists.
func (r InvokeResult) TryNotification(i int) (Notification, bool) {
	return coretypes.TryAt(r.Notifications, i)
}

// Diagnostics is the optional invocation trace attached to an InvokeResult.
type Diagnostics struct {
	InvokedContracts InvocationTree  `json:"invokedcontracts"`
	StorageChanges   []StorageChange `json:"storagechanges"`
}

// InvocationTree is the nested call tree of contracts touched by an invocation.
type InvocationTree struct {
	Hash *codectypes.Hash160 `json:"hash,omitempty"`
	Call []InvocationTree    `json:"call,omitempty"`
}

// Contracts returns every hash in the tree, depth first.
func (t InvocationTree) Contracts() []codectypes.Hash160 {
	var out []codectypes.Hash160
	if t.Hash != nil {
		out = append(out, *t.Hash)
	}
	for _, c := range t.Call {
		out = append(out, c.Contracts()...)
	}
	return out
}

// StorageChange is one storage write recorded in Diagnostics. Key and Value are base64.
type StorageChange struct {
	State string `json:"state"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ValidateAddressResult is the result of validateaddress.
type ValidateAddressResult struct {
	Address string `json:"address"`
	IsValid bool   `json:"isvalid"`
}
