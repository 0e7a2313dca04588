package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapSet(t *testing.T) {
	t.Parallel()

	var bm Bitmap
	require.NoError(t, bm.Set(3))
	assert.True(t, bm.IsSet(3))
	assert.False(t, bm.HasSecondary())
	assert.Equal(t, []int{3}, bm.Fields())

	require.NoError(t, bm.Set(70))
	assert.True(t, bm.HasSecondary(), "field above 64 forces the secondary indicator")
	assert.True(t, bm.IsSet(1))
	assert.Equal(t, []int{3, 70}, bm.Fields())

	assert.ErrorIs(t, bm.Set(0), ErrInvalidField)
	assert.ErrorIs(t, bm.Set(129), ErrInvalidField)
	assert.False(t, bm.IsSet(129))
}

func TestBitmapASCII(t *testing.T) {
	t.Parallel()

	var bm Bitmap
	require.NoError(t, bm.Set(3))
	require.NoError(t, bm.Set(4))
	require.NoError(t, bm.Set(41))

	out, err := appendBitmap(nil, bm, DataTypeASCII)
	require.NoError(t, err)
	assert.Equal(t, "3000000000800000", string(out))

	got, pos, err := decodeBitmap(out, 0, DataTypeASCII)
	require.NoError(t, err)
	assert.Equal(t, 16, pos)
	assert.Equal(t, bm, got)
}

func TestBitmapSecondaryUpperCase(t *testing.T) {
	t.Parallel()

	var bm Bitmap
	require.NoError(t, bm.Set(65+10))
	require.NoError(t, bm.Set(128))

	out, err := appendBitmap(nil, bm, DataTypeASCII)
	require.NoError(t, err)
	assert.Equal(t, "8000000000000000"+"0020000000000001", string(out))

	// Lower-case hex is accepted on input.
	got, pos, err := decodeBitmap([]byte("8000000000000000002000000000000a"), 0, DataTypeASCII)
	require.NoError(t, err)
	assert.Equal(t, 32, pos)
	assert.Equal(t, []int{75, 125, 127}, got.Fields())
}

func TestBitmapBinary(t *testing.T) {
	t.Parallel()

	var bm Bitmap
	require.NoError(t, bm.Set(2))
	require.NoError(t, bm.Set(64))
	require.NoError(t, bm.Set(65))

	out, err := appendBitmap([]byte{0xAA}, bm, DataTypeBinary)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xAA,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}, out)

	got, pos, err := decodeBitmap(out, 1, DataTypeBinary)
	require.NoError(t, err)
	assert.Equal(t, 17, pos)
	assert.Equal(t, []int{2, 64, 65}, got.Fields())
}

func TestBitmapDecodeErrors(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError

	_, _, err := decodeBitmap([]byte("70000000"), 0, DataTypeASCII)
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, _, err = decodeBitmap([]byte("7000000000000ZZZ"), 0, DataTypeASCII)
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrInvalidBitmap)

	// Secondary flagged but missing.
	_, _, err = decodeBitmap([]byte{0x80, 0, 0, 0, 0, 0, 0, 0}, 0, DataTypeBinary)
	assert.ErrorIs(t, err, ErrInsufficientData)

	var specErr *SpecError
	_, _, err = decodeBitmap(make([]byte, 8), 0, DataTypeBCD)
	assert.ErrorAs(t, err, &specErr)
}
