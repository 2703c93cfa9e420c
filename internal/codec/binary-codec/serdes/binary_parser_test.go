package serdes

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInt32(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int32
		wantErr  bool
	}{
		{name: "zero", input: "00000000", expected: 0},
		{name: "little endian two", input: "02000000", expected: 2},
		{name: "negative one", input: "ffffffff", expected: -1},
		{name: "max int32", input: "ffffff7f", expected: 2147483647},
		{name: "three bytes", input: "010203", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := hex.DecodeString(tt.input)
			require.NoError(t, err)

			p := NewBinaryParser(data)
			got, err := p.ReadInt32("paramcount")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrFormat))
				assert.Contains(t, err.Error(), "paramcount")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.False(t, p.HasMore())
		})
	}
}

func TestReadBoolRejectsNonCanonical(t *testing.T) {
	p := NewBinaryParser([]byte{0x00, 0x01, 0x02})

	v, err := p.ReadBool("hasreturnvalue")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = p.ReadBool("hasreturnvalue")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = p.ReadBool("hasreturnvalue")
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "hasreturnvalue", fe.Field)
	assert.Equal(t, 2, fe.Offset)
	assert.Contains(t, fe.Reason, "0x02")

	_, err = NewBinaryParser(nil).ReadBool("flag")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadVarString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data := append([]byte{0x08, 0x00, 0x00, 0x00}, []byte("transfer")...)
		p := NewBinaryParser(data)
		s, err := p.ReadVarString("method")
		require.NoError(t, err)
		assert.Equal(t, "transfer", s)
		assert.Equal(t, 12, p.Offset())
	})

	t.Run("empty string", func(t *testing.T) {
		p := NewBinaryParser([]byte{0, 0, 0, 0})
		s, err := p.ReadVarString("method")
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("negative prefix", func(t *testing.T) {
		p := NewBinaryParser([]byte{0xff, 0xff, 0xff, 0xff, 'a'})
		_, err := p.ReadVarString("method")
		require.ErrorIs(t, err, ErrFormat)
		assert.Contains(t, err.Error(), "negative")
		assert.Equal(t, 0, p.Offset(), "position is restored on failure")
	})

	t.Run("prefix exceeds remaining", func(t *testing.T) {
		p := NewBinaryParser([]byte{0x05, 0, 0, 0, 'a', 'b'})
		_, err := p.ReadVarString("callflags")
		require.ErrorIs(t, err, ErrFormat)
		assert.Contains(t, err.Error(), "callflags")
	})

	t.Run("prefix exceeds configured limit", func(t *testing.T) {
		data := append([]byte{0x03, 0, 0, 0}, []byte("abc")...)
		p := NewBinaryParser(data, WithMaxStringLength(2))
		_, err := p.ReadVarString("method")
		require.ErrorIs(t, err, ErrFormat)
		assert.Contains(t, err.Error(), "limit")
	})

	t.Run("invalid utf8 with validation", func(t *testing.T) {
		data := []byte{0x02, 0, 0, 0, 0xc3, 0x28}
		_, err := NewBinaryParser(data, WithUTF8Validation()).ReadVarString("method")
		require.ErrorIs(t, err, ErrFormat)

		s, err := NewBinaryParser(data).ReadVarString("method")
		require.NoError(t, err)
		assert.Len(t, s, 2)
	})
}

func TestReadBytesUnderflow(t *testing.T) {
	p := NewBinaryParser(make([]byte, 19))
	_, err := p.ReadBytes("hash", 20)
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "need 20 bytes, 19 remaining")

	_, err = p.ReadBytes("hash", -1)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadBytesReturnsCopy(t *testing.T) {
	data := []byte{1, 2, 3}
	got, err := NewBinaryParser(data).ReadBytes("blob", 3)
	require.NoError(t, err)
	got[0] = 9
	assert.Equal(t, byte(1), data[0])
}
