package theader

import (
	"testing"

	"caveconv/top/lbytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	reader := lbytes.NewBytesReader([]byte{'T', 'o', 'p', 3, 0xAA})
	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("Top"), header.MagicNumber)
	assert.Equal(t, SupportedVersion, header.Version)
	assert.Equal(t, int64(4), reader.Offset())
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string][]byte{
		"wrong version": {'T', 'o', 'p', 2},
		"wrong magic":   {'t', 'o', 'p', 3},
		"dson":          {0x01, 0xB1, 0x00, 0x00},
		"short":         {'T', 'o'},
		"empty":         {},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			header, err := Decode(lbytes.NewBytesReader(in))
			assert.Nil(t, header)
			assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
		})
	}
}

func TestIsValidMagicNumber(t *testing.T) {
	assert.True(t, IsValidMagicNumber([]byte("Top\x03rest")))
	assert.False(t, IsValidMagicNumber([]byte("Top")))
	assert.False(t, IsValidMagicNumber(nil))
}
