package iso8583

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackBCD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		digits string
		want   []byte
	}{
		{name: "even", digits: "0200", want: []byte{0x02, 0x00}},
		{name: "odd gets leading zero", digits: "123", want: []byte{0x01, 0x23}},
		{name: "track separator nibble", digits: "4000D9", want: []byte{0x40, 0x00, 0xD9}},
		{name: "empty", digits: "", want: []byte{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := packBCD(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := packBCD("12G4")
	assert.Error(t, err)
}

func TestUnpackBCD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0200", unpackBCD([]byte{0x02, 0x00}))
	assert.Equal(t, "4000D991231F", unpackBCD([]byte{0x40, 0x00, 0xd9, 0x91, 0x23, 0x1f}))
}

func TestBCDToInt(t *testing.T) {
	t.Parallel()

	n, err := bcdToInt([]byte{0x00, 0x12, 0x34}, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), n.Int64())

	n, err = bcdToInt([]byte{0xF1, 0x23}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(123), n.Int64(), "the padding nibble is dropped")

	_, err = bcdToInt([]byte{0x1A}, 2)
	assert.Error(t, err)

	_, err = bcdToInt([]byte{0x12}, 3)
	assert.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	n, err := parseDecimal("00000000000000000000012345678901234567890")
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("12345678901234567890", 10)
	assert.Equal(t, 0, n.Cmp(want))

	for _, bad := range []string{"", "-1", "+1", " 1", "1F", "1.0"} {
		_, err := parseDecimal(bad)
		assert.Error(t, err, bad)
	}
}

func TestUintCodec(t *testing.T) {
	t.Parallel()

	b, err := appendUint(nil, 300, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x2C}, b)
	assert.Equal(t, uint64(300), readUint(b))

	_, err = appendUint(nil, 256, 1)
	assert.Error(t, err)

	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), readUint([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}))
}

func TestTextCodec(t *testing.T) {
	t.Parallel()

	s, err := decodeText([]byte{'C', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "Café", s)
	assert.Equal(t, 4, textLen(s))

	b, err := encodeText(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{'C', 'a', 'f', 0xE9}, b)

	_, err = encodeText("€")
	assert.Error(t, err)
}
