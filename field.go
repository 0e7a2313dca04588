package iso8583

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// decodeField reads one data element starting at pos and returns its value
// together with the cursor just past it.
func decodeField(data []byte, pos int, rule FieldRule) (Value, int, error) {
	length, pos, err := decodeLength(data, pos, rule)
	if err != nil {
		return Value{}, pos, err
	}
	if length > rule.wireLimit() {
		return Value{}, pos, parseErrorf(rule.Field, "%w: declared length %d exceeds maximum %d",
			ErrInvalidLength, length, rule.wireLimit())
	}
	if length == 0 {
		return emptyValue(rule.ContentType), pos, nil
	}

	size := length
	if rule.DataType == DataTypeBCD {
		size = (length + 1) / 2
	}
	if len(data) < pos+size {
		return Value{}, pos, parseErrorf(rule.Field, "%w: need %d bytes at offset %d, have %d",
			ErrInsufficientData, size, pos, len(data)-pos)
	}
	raw := data[pos : pos+size]

	var v Value
	switch rule.DataType {
	case DataTypeASCII:
		v, err = decodeASCII(raw, rule.ContentType)
	case DataTypeBCD:
		v, err = decodeBCD(raw, length, rule.ContentType)
	case DataTypeBinary:
		v = Bytes(raw)
	default:
		err = &SpecError{Field: rule.Field, Err: ErrIncompleteSpec}
	}
	if err != nil {
		if isCodecError(err) {
			return Value{}, pos, err
		}
		return Value{}, pos, &ParseError{Field: rule.Field, Err: err}
	}
	return v, pos + size, nil
}

func emptyValue(ct ContentType) Value {
	switch ct {
	case ContentN:
		return Null()
	case ContentB:
		return Hex("")
	default:
		return String("")
	}
}

func decodeASCII(raw []byte, ct ContentType) (Value, error) {
	text, err := decodeText(raw)
	if err != nil {
		return Value{}, err
	}
	switch ct {
	case ContentN:
		n, err := parseDecimal(text)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: ValueInt, num: n}, nil
	case ContentB:
		if _, err := hex.DecodeString(text); err != nil {
			return Value{}, fmt.Errorf("invalid hex content %q: %w", text, err)
		}
		return Hex(text), nil
	case ContentA, ContentS, ContentAN, ContentAS, ContentNS, ContentANS, ContentZ:
		return String(text), nil
	default:
		return Value{}, fmt.Errorf("unknown content type %q", ct)
	}
}

// decodeBCD unpacks length nibbles. Odd lengths carry one padding nibble,
// leading for numbers and trailing for track data, which is dropped whatever
// its value.
func decodeBCD(raw []byte, length int, ct ContentType) (Value, error) {
	digits := unpackBCD(raw)
	switch ct {
	case ContentN:
		n, err := bcdToInt(raw, length)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: ValueInt, num: n}, nil
	case ContentZ:
		return String(strings.ReplaceAll(digits[:length], "D", "=")), nil
	case ContentA, ContentS, ContentAN, ContentAS, ContentNS, ContentANS, ContentB:
		return String(digits[len(digits)-length:]), nil
	default:
		return Value{}, fmt.Errorf("unknown content type %q", ct)
	}
}

// decodeLength resolves the field length in the units of its data type:
// characters for text, digits for packed decimal, bytes for binary.
func decodeLength(data []byte, pos int, rule FieldRule) (int, int, error) {
	switch rule.LengthType {
	case LengthFixed:
		return rule.wireLimit(), pos, nil
	case LengthLVAR, LengthLLVAR, LengthLLLVAR:
	default:
		return 0, pos, parseErrorf(rule.Field, "%w: %s", ErrUnsupportedLengthType, rule.LengthType)
	}

	digits := rule.LengthType.Digits()
	size := digits
	if rule.LengthDataType != DataTypeASCII {
		size = (digits + 1) / 2
	}
	if len(data) < pos+size {
		return 0, pos, parseErrorf(rule.Field, "%w: length prefix needs %d bytes at offset %d",
			ErrInsufficientData, size, pos)
	}
	prefix := data[pos : pos+size]

	switch rule.LengthDataType {
	case DataTypeASCII:
		n, err := parseDecimal(string(prefix))
		if err != nil {
			return 0, pos, parseErrorf(rule.Field, "%w: %w", ErrInvalidLength, err)
		}
		return int(n.Int64()), pos + size, nil
	case DataTypeBCD:
		n, err := bcdToInt(prefix, digits)
		if err != nil {
			return 0, pos, parseErrorf(rule.Field, "%w: %w", ErrInvalidLength, err)
		}
		return int(n.Int64()), pos + size, nil
	case DataTypeBinary:
		return int(readUint(prefix)), pos + size, nil
	default:
		return 0, pos, parseErrorf(rule.Field, "%w: %s", ErrUnsupportedLengthType, rule.LengthDataType)
	}
}

// encodeField serializes one data element, length prefix included.
func encodeField(v Value, rule FieldRule) ([]byte, error) {
	return appendField(nil, v, rule)
}

// appendField appends the encoded field to dst.
func appendField(dst []byte, v Value, rule FieldRule) ([]byte, error) {
	var (
		payload []byte
		length  int
		err     error
	)
	switch rule.DataType {
	case DataTypeASCII:
		payload, length, err = encodeASCII(v, rule)
	case DataTypeBCD:
		payload, length, err = encodeBCD(v, rule)
	case DataTypeBinary:
		payload, length, err = encodeBinary(v, rule)
	default:
		return dst, &SpecError{Field: rule.Field, Err: ErrIncompleteSpec}
	}
	if err != nil {
		if isCodecError(err) {
			return dst, err
		}
		return dst, &BuildError{Field: rule.Field, Err: err}
	}

	limit := rule.wireLimit()
	if length > limit {
		return dst, buildErrorf(rule.Field, "%w: length %d exceeds maximum %d", ErrValueTooLong, length, limit)
	}

	switch rule.LengthType {
	case LengthFixed:
		if length != limit {
			return dst, buildErrorf(rule.Field, "%w: fixed field needs length %d, got %d", ErrInvalidLength, limit, length)
		}
	case LengthLVAR, LengthLLVAR, LengthLLLVAR:
		if dst, err = appendLength(dst, length, rule); err != nil {
			return dst, err
		}
	default:
		return dst, buildErrorf(rule.Field, "%w: %s", ErrUnsupportedLengthType, rule.LengthType)
	}
	return append(dst, payload...), nil
}

func encodeASCII(v Value, rule FieldRule) ([]byte, int, error) {
	s := v.String()
	fixed := rule.LengthType == LengthFixed
	width := rule.wireLimit()

	switch rule.ContentType {
	case ContentN:
		if s != "" {
			if _, err := parseDecimal(s); err != nil {
				return nil, 0, err
			}
		}
		if fixed {
			s = padLeft(s, width, '0')
		}
	case ContentB:
		if _, err := hex.DecodeString(s); err != nil {
			return nil, 0, fmt.Errorf("invalid hex content %q: %w", s, err)
		}
		if fixed {
			s = padLeft(s, width, '0')
		}
	case ContentA, ContentS, ContentAN, ContentAS, ContentNS, ContentANS:
		if fixed {
			s = padLeft(s, width, ' ')
		}
	case ContentZ:
	default:
		return nil, 0, fmt.Errorf("unknown content type %q", rule.ContentType)
	}

	b, err := encodeText(s)
	if err != nil {
		return nil, 0, err
	}
	return b, len(b), nil
}

// encodeBCD packs the value's digits. Track data swaps the '=' separator for
// a D nibble and pads odd lengths with a trailing F.
func encodeBCD(v Value, rule FieldRule) ([]byte, int, error) {
	s := v.String()

	switch rule.ContentType {
	case ContentZ:
		s = strings.ReplaceAll(s, "=", "D")
		length := len(s)
		if length%2 == 1 {
			s += "F"
		}
		b, err := packBCD(s)
		return b, length, err
	case ContentN:
		if s != "" {
			if _, err := parseDecimal(s); err != nil {
				return nil, 0, err
			}
		}
	case ContentA, ContentS, ContentAN, ContentAS, ContentNS, ContentANS, ContentB:
	default:
		return nil, 0, fmt.Errorf("unknown content type %q", rule.ContentType)
	}

	if rule.LengthType == LengthFixed {
		s = padLeft(s, rule.MaxLength, '0')
	}
	b, err := packBCD(s)
	return b, len(s), err
}

func encodeBinary(v Value, rule FieldRule) ([]byte, int, error) {
	s := v.String()
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid hex content %q: %w", s, err)
	}
	if rule.LengthType == LengthFixed && len(b) < rule.MaxLength {
		padded := make([]byte, rule.MaxLength)
		copy(padded[rule.MaxLength-len(b):], b)
		b = padded
	}
	return b, len(b), nil
}

// appendLength writes the variable-length prefix in the rule's length data type.
func appendLength(dst []byte, length int, rule FieldRule) ([]byte, error) {
	digits := rule.LengthType.Digits()
	text := fmt.Sprintf("%0*d", digits, length)
	if len(text) > digits {
		return dst, buildErrorf(rule.Field, "%w: length %d does not fit a %d-digit prefix",
			ErrInvalidLength, length, digits)
	}

	switch rule.LengthDataType {
	case DataTypeASCII:
		return append(dst, text...), nil
	case DataTypeBCD:
		b, err := packBCD(text)
		if err != nil {
			return dst, &BuildError{Field: rule.Field, Err: err}
		}
		return append(dst, b...), nil
	case DataTypeBinary:
		out, err := appendUint(dst, uint64(length), (digits+1)/2)
		if err != nil {
			return dst, &BuildError{Field: rule.Field, Err: err}
		}
		return out, nil
	default:
		return dst, buildErrorf(rule.Field, "%w: %s", ErrUnsupportedLengthType, rule.LengthDataType)
	}
}

func padLeft(s string, width int, pad byte) string {
	n := width - textLen(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}
