package iso8583

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTLV(t *testing.T) {
	t.Parallel()

	data := []byte{
		0x9F, 0x26, 0x08, 1, 2, 3, 4, 5, 6, 7, 8, // application cryptogram
		0x82, 0x02, 0x39, 0x00, // AIP
		0x5F, 0x2A, 0x02, 0x09, 0x78, // currency code
	}

	tlvs, err := DecodeTLV(data)
	require.NoError(t, err)
	require.Len(t, tlvs, 3)
	assert.Equal(t, "9F26", tlvs[0].Tag)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, tlvs[0].Value)
	assert.Equal(t, "82", tlvs[1].Tag)
	assert.Equal(t, "5F2A", tlvs[2].Tag)

	got, ok := FindTLV(tlvs, "5f2a")
	require.True(t, ok)
	assert.Equal(t, []byte{0x09, 0x78}, got.Value)

	_, ok = FindTLV(tlvs, "9F27")
	assert.False(t, ok)

	out, err := EncodeTLV(tlvs)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestTLVLongLength(t *testing.T) {
	t.Parallel()

	for _, size := range []int{127, 128, 255, 256, 1000} {
		value := bytes.Repeat([]byte{0xAB}, size)
		out, err := EncodeTLV([]TLV{{Tag: "9F10", Value: value}})
		require.NoError(t, err)

		switch {
		case size < 128:
			assert.Equal(t, byte(size), out[2])
		case size <= 255:
			assert.Equal(t, []byte{0x81, byte(size)}, out[2:4])
		default:
			assert.Equal(t, []byte{0x82, byte(size >> 8), byte(size)}, out[2:5])
		}

		tlvs, err := DecodeTLV(out)
		require.NoError(t, err)
		require.Len(t, tlvs, 1)
		assert.Equal(t, value, tlvs[0].Value)
	}

	_, err := EncodeTLV([]TLV{{Tag: "9F10", Value: make([]byte, 0x10000)}})
	assert.ErrorIs(t, err, ErrInvalidTLV)
}

func TestDecodeTLVErrors(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"truncated tag":    {0x9F},
		"missing length":   {0x82},
		"bad length form":  {0x82, 0x85, 0, 0, 0, 0, 1},
		"truncated length": {0x82, 0x82, 0x01},
		"short value":      {0x82, 0x04, 0x01, 0x02},
	} {
		_, err := DecodeTLV(data)
		assert.ErrorIs(t, err, ErrInvalidTLV, name)
	}

	_, err := EncodeTLV([]TLV{{Tag: "XYZ"}})
	assert.ErrorIs(t, err, ErrInvalidTLV)
}

func TestMessageICCData(t *testing.T) {
	t.Parallel()

	tlvs := []TLV{
		{Tag: "9F26", Value: []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}},
		{Tag: "9F36", Value: []byte{0x00, 0x2A}},
	}

	for _, spec := range allSpecs {
		spec := spec
		t.Run(spec.Name(), func(t *testing.T) {
			t.Parallel()

			msg := NewMessage(spec, WithMTI("0200"))
			_, err := msg.ICCData()
			assert.ErrorIs(t, err, ErrFieldNotSet)

			require.NoError(t, msg.SetICCData(tlvs))
			assert.Equal(t, 1, msg.Field(55))

			raw, err := msg.BuildWire()
			require.NoError(t, err)

			parsed, err := ParseMessage(raw, spec)
			require.NoError(t, err)
			got, err := parsed.ICCData()
			require.NoError(t, err)
			assert.Equal(t, tlvs, got)
		})
	}

	msg := NewMessage(Spec1987ASCII)
	require.NoError(t, msg.SetFieldData(55, "not hex"))
	_, err := msg.ICCData()
	assert.ErrorIs(t, err, ErrInvalidTLV)
}
