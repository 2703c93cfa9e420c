package rpc_types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransactionHash(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 32)

	h, err := ValidateTransactionHash(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, h.String())

	h2, err := ValidateTransactionHash(strings.Repeat("ab", 32))
	require.NoError(t, err)
	assert.Equal(t, h, h2)
}

func TestValidateTransactionHashRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "63 chars ending in non-hex digit", input: strings.Repeat("ab", 31) + "g"},
		{name: "64 chars with non-hex digit", input: strings.Repeat("ab", 31) + "gg"},
		{name: "empty", input: ""},
		{name: "prefix only", input: "0x"},
		{name: "too short", input: strings.Repeat("ab", 31)},
		{name: "too long", input: strings.Repeat("ab", 33)},
		{name: "prefixed too long", input: "0x" + strings.Repeat("ab", 32) + "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTransactionHash(tt.input)
			require.ErrorIs(t, err, ErrInvalidTransactionHash)
			assert.Contains(t, err.Error(), tt.input, "message must name the rejected value")
			assert.False(t, IsValidTransactionHash(tt.input))
		})
	}
}
