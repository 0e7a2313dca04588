package iso8583

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSpecs = []*Spec{Spec1987ASCII, Spec1987BCD, Spec1993ASCII, SpecBIC}

// sampleValue returns a value that survives a round trip unchanged under rule.
func sampleValue(rule FieldRule) Value {
	fixed := rule.LengthType == LengthFixed
	switch rule.ContentType {
	case ContentN:
		return Int(7)
	case ContentZ:
		return String("4000=991231")
	case ContentB:
		if fixed {
			return Hex(strings.Repeat("AB", rule.MaxLength))
		}
		return Hex("ABCD")
	default:
		if fixed {
			return String(strings.Repeat("X", rule.MaxLength))
		}
		return String("X")
	}
}

func presentSet(m *Message) []int {
	var out []int
	for field, flag := range m.Bitmap() {
		if flag == 1 {
			out = append(out, field)
		}
	}
	return out
}

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	fields := []int{2, 3, 4, 7, 11, 12, 22, 35, 37, 39, 41, 42, 43, 48, 49, 52, 55, 70, 90, 102, 128}

	for _, spec := range allSpecs {
		spec := spec
		t.Run(spec.Name(), func(t *testing.T) {
			t.Parallel()

			msg := NewMessage(spec)
			require.NoError(t, msg.SetMTI("0200"))
			for _, field := range fields {
				rule := mustRule(t, spec, field)
				require.NoError(t, msg.SetFieldData(field, sampleValue(rule)), "F%d", field)
				require.NoError(t, msg.SetField(field, 1))
			}

			raw, err := msg.BuildWire()
			require.NoError(t, err)
			assert.Equal(t, raw, msg.Raw())

			parsed, err := ParseMessage(raw, spec)
			require.NoError(t, err)
			assert.Equal(t, "0200", parsed.MTI())
			assert.Equal(t, msg.Bitmap(), parsed.Bitmap())
			assert.Equal(t, 1, parsed.Field(1))

			want := msg.Fields()
			got := parsed.Fields()
			require.Len(t, got, len(want))
			for field, v := range want {
				assert.True(t, v.Equal(got[field]), "F%d: want %q got %q", field, v, got[field])
			}

			again, err := parsed.BuildWire()
			require.NoError(t, err)
			assert.Equal(t, raw, again)
		})
	}
}

func TestMessageBitmapCoverage(t *testing.T) {
	t.Parallel()

	for _, spec := range allSpecs {
		spec := spec
		t.Run(spec.Name(), func(t *testing.T) {
			t.Parallel()

			for field := 2; field <= 127; field++ {
				msg := NewMessage(spec, WithMTI("0200"))
				require.NoError(t, msg.SetFieldData(field, sampleValue(mustRule(t, spec, field))))
				require.NoError(t, msg.SetField(field, 1))

				raw, err := msg.BuildWire()
				require.NoError(t, err, "F%d", field)

				parsed, err := ParseMessage(raw, spec)
				require.NoError(t, err, "F%d", field)

				want := []int{field}
				if field > 64 {
					want = []int{1, field}
				}
				assert.ElementsMatch(t, want, presentSet(parsed), "F%d", field)
			}
		})
	}
}

func TestMessageSecondaryForced(t *testing.T) {
	t.Parallel()

	msg := NewMessage(Spec1987ASCII, WithMTI("0800"))
	require.NoError(t, msg.SetFieldData(70, 301))
	require.NoError(t, msg.SetField(70, 1))
	assert.Equal(t, 0, msg.Field(1))

	raw, err := msg.BuildWire()
	require.NoError(t, err)
	assert.Equal(t, 1, msg.Field(1))
	assert.Equal(t, "0800"+"8000000000000000"+"0400000000000000"+"301", string(raw))

	// A stale secondary flag without fields above 64 still emits an empty
	// secondary bitmap.
	msg = NewMessage(Spec1987ASCII, WithMTI("0800"), WithField(3, 0))
	require.NoError(t, msg.SetField(1, 1))
	raw, err = msg.BuildWire()
	require.NoError(t, err)
	assert.Equal(t, "0800"+"A000000000000000"+"0000000000000000"+"000000", string(raw))
}

func TestMessageMTIDomain(t *testing.T) {
	t.Parallel()

	msg := NewMessage(nil)
	assert.Same(t, Spec1987ASCII, msg.Spec())

	require.NoError(t, msg.SetMTI("0200"))
	assert.Equal(t, "0200", msg.MTI())

	assert.ErrorIs(t, msg.SetMTI("0010"), ErrInvalidMTI)
	assert.ErrorIs(t, msg.SetMTI("0109"), ErrInvalidMTI)
	assert.ErrorIs(t, msg.SetMTI("3200"), ErrInvalidMTI)
	assert.ErrorIs(t, msg.SetMTI("0280"), ErrInvalidMTI)
	assert.ErrorIs(t, msg.SetMTI("02A0"), ErrInvalidMTI)
	assert.ErrorIs(t, msg.SetMTI("02000"), ErrInvalidMTI)
	assert.Equal(t, "0200", msg.MTI(), "failed sets leave the MTI untouched")

	require.NoError(t, msg.SetMTI("810"))
	assert.Equal(t, "0810", msg.MTI())

	for _, v := range []int{0, 1, 2, 8, 9} {
		for c := 1; c <= 9; c++ {
			for f := 0; f <= 7; f++ {
				for o := 0; o <= 5; o++ {
					mti := fmt.Sprintf("%d%d%d%d", v, c, f, o)
					assert.NoError(t, msg.SetMTI(mti), mti)
				}
			}
		}
	}
}

func TestMessageMTIParsePolicy(t *testing.T) {
	t.Parallel()

	raw := []byte("0109" + "2000000000000000" + "000000")

	lenient, err := ParseMessage(raw, Spec1987ASCII)
	require.NoError(t, err)
	assert.Equal(t, "0109", lenient.MTI())
	assert.False(t, lenient.Strict())

	_, err = ParseMessage(raw, Spec1987ASCII, WithStrict(true))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrInvalidMTI)

	msg := NewMessage(Spec1987ASCII)
	msg.SetStrict(true)
	assert.Error(t, msg.SetWireContent([]byte("0010"+"2000000000000000"+"000000")))

	_, err = ParseMessage([]byte("02X0"+"2000000000000000"+"000000"), Spec1987ASCII)
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrInvalidMTI)

	_, err = ParseMessage([]byte("02"), Spec1987ASCII)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMessageMTIParts(t *testing.T) {
	t.Parallel()

	msg := NewMessage(Spec1987ASCII, WithMTI("1430"))

	v, err := msg.Version()
	require.NoError(t, err)
	assert.Equal(t, VersionISO1993, v)

	c, err := msg.Class()
	require.NoError(t, err)
	assert.Equal(t, ClassReversal, c)

	f, err := msg.Function()
	require.NoError(t, err)
	assert.Equal(t, FunctionAdviceResponse, f)

	o, err := msg.Origin()
	require.NoError(t, err)
	assert.Equal(t, OriginAcquirer, o)

	assert.False(t, msg.IsNetworkManagement())
	require.NoError(t, msg.SetMTI("0800"))
	assert.True(t, msg.IsNetworkManagement())

	lenient, err := ParseMessage([]byte("0609"+"2000000000000000"+"000000"), Spec1987ASCII)
	require.NoError(t, err)
	_, err = lenient.Origin()
	assert.ErrorIs(t, err, ErrInvalidMTI)

	_, err = NewMessage(nil).Class()
	assert.ErrorIs(t, err, ErrInvalidMTI)
}

func TestMessageEndToEnd(t *testing.T) {
	t.Parallel()

	msg, err := ParseMessage([]byte("0200"+"2000000000000000"+"000000"), Spec1987ASCII)
	require.NoError(t, err)

	assert.Equal(t, "0200", msg.MTI())
	assert.Equal(t, 1, msg.Field(3))
	assert.Equal(t, 0, msg.Field(2))
	v, ok := msg.FieldData(3)
	require.True(t, ok)
	n, err := v.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	// Flags fields 2, 3 and 4; field 2 reads an empty value and field 3 then
	// runs out of input.
	_, err = ParseMessage([]byte("0200"+"7000000000000000"+"000000"), Spec1987ASCII)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Field)
}

func TestMessageBCDWire(t *testing.T) {
	t.Parallel()

	msg := NewBuilder(Spec1987BCD).
		MTI("0200").
		ProcessingCode(0).
		Amount(1000).
		Field(35, "4000=991231").
		MustBuild()

	raw, err := msg.BuildWire()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x02, 0x00,
		0x30, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
		0x11, 0x40, 0x00, 0xD9, 0x91, 0x23, 0x1F,
	}, raw)

	parsed, err := ParseMessage(raw, Spec1987BCD)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 35}, parsed.PresentFields())
	track, _ := parsed.FieldData(35)
	assert.Equal(t, "4000=991231", track.String())
}

func TestMessagePresenceAndValueIndependent(t *testing.T) {
	t.Parallel()

	msg := NewMessage(Spec1987ASCII, WithMTI("0200"))

	require.NoError(t, msg.SetFieldData(11, 42))
	assert.Equal(t, 0, msg.Field(11), "a value does not imply presence")

	require.NoError(t, msg.SetField(12, 1))
	_, ok := msg.FieldData(12)
	assert.False(t, ok, "presence does not imply a value")

	_, err := msg.BuildWire()
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, 12, buildErr.Field)
	assert.ErrorIs(t, err, ErrFieldNotSet)

	require.NoError(t, msg.SetField(12, 0))
	raw, err := msg.BuildWire()
	require.NoError(t, err)
	assert.Equal(t, "0200"+"0000000000000000", string(raw))
}

func TestMessageAccessorErrors(t *testing.T) {
	t.Parallel()

	msg := NewMessage(Spec1987ASCII)

	assert.ErrorIs(t, msg.SetField(3, 2), ErrInvalidArgument)
	assert.ErrorIs(t, msg.SetField(3, -1), ErrInvalidArgument)
	assert.ErrorIs(t, msg.SetField(0, 1), ErrInvalidField)
	assert.ErrorIs(t, msg.SetField(129, 1), ErrInvalidField)
	assert.Equal(t, 0, msg.Field(200))

	assert.ErrorIs(t, msg.SetFieldData(3, 1234567), ErrValueTooLong)
	assert.ErrorIs(t, msg.SetFieldData(41, "TERMINAL1"), ErrValueTooLong)
	assert.ErrorIs(t, msg.SetFieldData(3, -5), ErrInvalidArgument)
	assert.ErrorIs(t, msg.SetFieldData(3, 1.5), ErrInvalidArgument)
	assert.ErrorIs(t, msg.SetFieldData(1, "x"), ErrInvalidField)

	// Binary values are limited in hex characters, two per byte.
	require.NoError(t, msg.SetFieldData(52, "0102030405060708"))
	v, _ := msg.FieldData(52)
	assert.Equal(t, ValueHex, v.Kind())
	assert.ErrorIs(t, msg.SetFieldData(52, "010203040506070809"), ErrValueTooLong)
	require.NoError(t, msg.SetFieldData(52, []byte{1, 2, 3, 4, 5, 6, 7, 8}))

	var specErr *SpecError
	noRule := NewMessage(Spec1987ASCII.Derive("sparse", WithoutField(48)))
	assert.ErrorAs(t, noRule.SetFieldData(48, "x"), &specErr)
}

func TestMessageBuildErrorTagged(t *testing.T) {
	t.Parallel()

	msg := NewMessage(Spec1987ASCII, WithMTI("0200"))
	require.NoError(t, msg.SetFieldData(3, "12A"))
	require.NoError(t, msg.SetField(3, 1))

	_, err := msg.BuildWire()
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, 3, buildErr.Field)
	assert.Contains(t, err.Error(), "building F3")

	_, err = NewMessage(Spec1987ASCII).BuildWire()
	assert.ErrorIs(t, err, ErrInvalidMTI)

	var specErr *SpecError
	sparse := NewMessage(Spec1987ASCII.Derive("sparse", WithoutField(48)), WithMTI("0200"))
	require.NoError(t, sparse.SetField(48, 1))
	_, err = sparse.BuildWire()
	assert.ErrorAs(t, err, &specErr)
}

func TestMessageSetWireContentReplacesState(t *testing.T) {
	t.Parallel()

	msg, err := ParseMessage([]byte("0200"+"3000000000000000"+"000000"+"000000001000"), Spec1987ASCII)
	require.NoError(t, err)
	require.NoError(t, msg.SetFieldData(11, 1))
	assert.Len(t, msg.Fields(), 3)

	require.NoError(t, msg.SetWireContent([]byte("0210"+"2000000000000000"+"310000"+"junk")))
	assert.Equal(t, "0210", msg.MTI())
	assert.Equal(t, []int{3}, msg.PresentFields())
	assert.Len(t, msg.Fields(), 1)
	v, _ := msg.FieldData(3)
	assert.True(t, Int(310000).Equal(v))
}

func TestMessageSpecError(t *testing.T) {
	t.Parallel()

	sparse := Spec1987ASCII.Derive("sparse", WithoutField(3))
	_, err := ParseMessage([]byte("0200"+"2000000000000000"+"000000"), sparse)
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, 3, specErr.Field)
}

func TestMessagePassThrough(t *testing.T) {
	t.Parallel()

	msg := NewMessage(Spec1987BCD)
	assert.Equal(t, "Track 2 data", msg.Description(35))

	dt, err := msg.DataType(35)
	require.NoError(t, err)
	assert.Equal(t, DataTypeBCD, dt)

	ct, err := msg.ContentType(41)
	require.NoError(t, err)
	assert.Equal(t, ContentANS, ct)
}

func TestMessageCloneAndResponse(t *testing.T) {
	t.Parallel()

	req := NewBuilder(Spec1987ASCII).MTI("0100").ProcessingCode(0).Amount(500).MustBuild()

	clone := req.Clone()
	require.NoError(t, clone.SetFieldData(4, 900))
	v, _ := req.FieldData(4)
	assert.True(t, Int(500).Equal(v), "clone must not share values")

	res, err := req.CreateResponse("00")
	require.NoError(t, err)
	assert.Equal(t, "0110", res.MTI())
	assert.Equal(t, 1, res.Field(39))
	assert.Equal(t, []int{3, 4, 39}, res.PresentFields())
	assert.Equal(t, "0100", req.MTI())

	_, err = res.CreateResponse("00")
	assert.ErrorIs(t, err, ErrInvalidMTI)

	raw, err := res.BuildWire()
	require.NoError(t, err)
	assert.Equal(t, "0110"+"3000000002000000"+"000000"+"000000000500"+"00", string(raw))

	req.Reset()
	assert.Equal(t, "", req.MTI())
	assert.Empty(t, req.Fields())
	assert.Empty(t, req.PresentFields())
}

func TestMessageRawOwnsItsBytes(t *testing.T) {
	t.Parallel()

	wire := []byte("0200" + "2000000000000000" + "000000")
	msg, err := ParseMessage(wire, Spec1987ASCII)
	require.NoError(t, err)

	copy(wire, "9999")
	assert.Equal(t, "0200", string(msg.Raw()[:4]))

	built, err := msg.BuildWire()
	require.NoError(t, err)
	built[0] = 'X'
	assert.Equal(t, byte('0'), msg.Raw()[0])
}

func TestMessageFailedParseLeavesEmpty(t *testing.T) {
	t.Parallel()

	msg, err := ParseMessage([]byte("0200"+"2000000000000000"+"000000"), Spec1987ASCII)
	require.NoError(t, err)

	// Field 3 decodes, field 4 is truncated.
	err = msg.SetWireContent([]byte("0210" + "3000000000000000" + "000000" + "0000"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Field)

	assert.Equal(t, "", msg.MTI())
	assert.Empty(t, msg.PresentFields())
	assert.Empty(t, msg.Fields())
	assert.Nil(t, msg.Raw())
	assert.Equal(t, 0, msg.Field(1))
}
