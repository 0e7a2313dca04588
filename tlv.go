package iso8583

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// iccField carries the integrated circuit card (EMV) data.
const iccField = 55

// TLV is one BER-TLV element of EMV chip data. Tag is kept as upper-case hex,
// e.g. "9F26".
type TLV struct {
	Tag   string
	Value []byte
}

// DecodeTLV parses BER-TLV encoded EMV data: multi-byte tags when the low
// five bits of the first byte are all set, short and long form lengths.
func DecodeTLV(data []byte) ([]TLV, error) {
	tlvs := make([]TLV, 0, 16)
	offset := 0
	for offset < len(data) {
		tagStart := offset
		first := data[offset]
		offset++

		if first&0x1F == 0x1F {
			for offset < len(data) && data[offset]&0x80 != 0 {
				offset++
			}
			if offset >= len(data) {
				return nil, fmt.Errorf("%w: truncated tag at offset %d", ErrInvalidTLV, tagStart)
			}
			offset++
		}
		tag := unpackBCD(data[tagStart:offset])

		if offset >= len(data) {
			return nil, fmt.Errorf("%w: tag %s has no length", ErrInvalidTLV, tag)
		}
		lengthByte := data[offset]
		offset++

		length := int(lengthByte)
		if lengthByte&0x80 != 0 {
			n := int(lengthByte & 0x7F)
			if n == 0 || n > 4 {
				return nil, fmt.Errorf("%w: tag %s has %d length bytes", ErrInvalidTLV, tag, n)
			}
			if offset+n > len(data) {
				return nil, fmt.Errorf("%w: tag %s has a truncated length", ErrInvalidTLV, tag)
			}
			length = int(readUint(data[offset : offset+n]))
			offset += n
		}

		if offset+length > len(data) {
			return nil, fmt.Errorf("%w: tag %s announces %d bytes, have %d", ErrInvalidTLV, tag, length, len(data)-offset)
		}
		value := make([]byte, length)
		copy(value, data[offset:offset+length])
		offset += length

		tlvs = append(tlvs, TLV{Tag: tag, Value: value})
	}
	return tlvs, nil
}

// EncodeTLV serializes elements in order, choosing the short length form
// below 128 bytes.
func EncodeTLV(tlvs []TLV) ([]byte, error) {
	out := make([]byte, 0, 64)
	for _, t := range tlvs {
		tag, err := hex.DecodeString(t.Tag)
		if err != nil || len(tag) == 0 {
			return nil, fmt.Errorf("%w: invalid tag %q", ErrInvalidTLV, t.Tag)
		}
		out = append(out, tag...)

		n := len(t.Value)
		switch {
		case n < 0x80:
			out = append(out, byte(n))
		case n <= 0xFF:
			out = append(out, 0x81, byte(n))
		case n <= 0xFFFF:
			out = append(out, 0x82, byte(n>>8), byte(n))
		default:
			return nil, fmt.Errorf("%w: tag %s value of %d bytes is too long", ErrInvalidTLV, t.Tag, n)
		}
		out = append(out, t.Value...)
	}
	return out, nil
}

// FindTLV returns the first element with the given tag.
func FindTLV(tlvs []TLV, tag string) (TLV, bool) {
	tag = strings.ToUpper(tag)
	for _, t := range tlvs {
		if t.Tag == tag {
			return t, true
		}
	}
	return TLV{}, false
}

// ICCData decodes the chip data stored in field 55. Dialects that carry the
// field as text are expected to hold it as hex.
func (m *Message) ICCData() ([]TLV, error) {
	v, ok := m.FieldData(iccField)
	if !ok {
		return nil, fmt.Errorf("field %d: %w", iccField, ErrFieldNotSet)
	}
	raw, err := hex.DecodeString(v.String())
	if err != nil {
		return nil, fmt.Errorf("%w: field %d is not hex: %w", ErrInvalidTLV, iccField, err)
	}
	return DecodeTLV(raw)
}

// SetICCData encodes tlvs into field 55 and marks it present.
func (m *Message) SetICCData(tlvs []TLV) error {
	raw, err := EncodeTLV(tlvs)
	if err != nil {
		return err
	}
	text := make([]byte, len(raw)*2)
	encodeHexUpper(text, raw)
	if err := m.SetFieldData(iccField, string(text)); err != nil {
		return err
	}
	return m.SetField(iccField, 1)
}
