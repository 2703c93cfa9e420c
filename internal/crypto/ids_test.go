package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPublicKey = "027296e43135dd44f74640db181286665a1b95efa8d7c367d0724d09f8e665cd1a"

func TestVerificationScript(t *testing.T) {
	pubKey, err := hex.DecodeString(testPublicKey)
	require.NoError(t, err)

	script := VerificationScript(pubKey)
	assert.Equal(t, "0c21"+testPublicKey+"4156e7b327", hex.EncodeToString(script))
}

func TestCalcScriptHash(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		scriptHash string
	}{
		{
			name:       "single-signature verification script",
			script:     "0c21" + testPublicKey + "4156e7b327",
			scriptHash: "2ab1901c22c73d6391c6e65a61aff77dd93e6d87",
		},
		{
			name:       "empty script",
			script:     "",
			scriptHash: "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := hex.DecodeString(tt.script)
			require.NoError(t, err)

			got := CalcScriptHash(script)
			assert.Equal(t, tt.scriptHash, hex.EncodeToString(got[:]))
		})
	}
}

func TestIsZeroScriptHash(t *testing.T) {
	var zero [ScriptHashSize]byte
	assert.True(t, IsZeroScriptHash(zero))

	zero[19] = 1
	assert.False(t, IsZeroScriptHash(zero))
}
