package rpc_types

import (
	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
)

// NEP17Balances is the result of getnep17balances.
type NEP17Balances struct {
	Address  string         `json:"address"`
	Balances []NEP17Balance `json:"balance"`
}

// NEP17Balance is one token balance. Amount is a decimal integer string in the token's smallest unit.
type NEP17Balance struct {
	AssetHash        codectypes.Hash160 `json:"assethash"`
	Name             string             `json:"name,omitempty"`
	Symbol           string             `json:"symbol,omitempty"`
	Decimals         string             `json:"decimals,omitempty"`
	Amount           string             `json:"amount"`
	LastUpdatedBlock uint32             `json:"lastupdatedblock"`
}

func (b NEP17Balance) Fields() []coretypes.Field {
	return []coretypes.Field{
		{Name: "assethash", Value: b.AssetHash},
		{Name: "name", Value: b.Name},
		{Name: "symbol", Value: b.Symbol},
		{Name: "decimals", Value: b.Decimals},
		{Name: "amount", Value: b.Amount},
		{Name: "lastupdatedblock", Value: b.LastUpdatedBlock},
	}
}

func (b NEP17Balance) String() string {
	return coretypes.FieldsString("NEP17Balance", b.Fields())
}

// Balance returns the i-th balance or a RangeError.
func (b NEP17Balances) Balance(i int) (NEP17Balance, error) {
	return coretypes.At("balances", b.Balances, i)
}

// TryBalance returns the i-th balance and whether it exists.
func (b NEP17Balances) TryBalance(i int) (NEP17Balance, bool) {
	return coretypes.TryAt(b.Balances, i)
}

// BalanceOf returns the balance for asset, if listed.
func (b NEP17Balances) BalanceOf(asset codectypes.Hash160) (NEP17Balance, bool) {
	for _, bal := range b.Balances {
		if bal.AssetHash == asset {
			return bal, true
		}
	}
	return NEP17Balance{}, false
}
