package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixEnd(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		want   []byte
	}{
		{"simple", []byte("tok/"), []byte("tok0")},
		{"carry", []byte{0x01, 0xff}, []byte{0x02}},
		{"all ff", []byte{0xff, 0xff}, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefixEnd(tt.prefix))
		})
	}
}
