package iso8583

import (
	"fmt"
	"strings"
)

// validateMTI checks a four-character MTI. Every MTI must be four decimal
// digits; strict mode also requires each digit to fall in its enumerated
// domain (version, class, function and origin).
func validateMTI(mti string, strict bool) error {
	if len(mti) != mtiLength {
		return fmt.Errorf("%w: %q must have %d digits", ErrInvalidMTI, mti, mtiLength)
	}
	for i := 0; i < mtiLength; i++ {
		if mti[i] < '0' || mti[i] > '9' {
			return fmt.Errorf("%w: %q is not numeric", ErrInvalidMTI, mti)
		}
	}
	if !strict {
		return nil
	}

	if v := MsgVersion(mti[0] - '0'); !v.valid() {
		return fmt.Errorf("%w: %q has unknown version %d", ErrInvalidMTI, mti, v)
	}
	if c := MsgClass(mti[1] - '0'); !c.valid() {
		return fmt.Errorf("%w: %q has unknown class %d", ErrInvalidMTI, mti, c)
	}
	if f := MsgFunction(mti[2] - '0'); !f.valid() {
		return fmt.Errorf("%w: %q has unknown function %d", ErrInvalidMTI, mti, f)
	}
	if o := MsgOrigin(mti[3] - '0'); !o.valid() {
		return fmt.Errorf("%w: %q has unknown origin %d", ErrInvalidMTI, mti, o)
	}
	return nil
}

// normalizeMTI left-pads a short MTI with zeros, so "200" becomes "0200".
func normalizeMTI(mti string) string {
	mti = strings.TrimSpace(mti)
	if len(mti) < mtiLength {
		mti = strings.Repeat("0", mtiLength-len(mti)) + mti
	}
	return mti
}

// decodeMTI reads the message type indicator at pos.
func decodeMTI(data []byte, pos int, rule FieldRule, strict bool) (string, int, error) {
	var (
		mti  string
		size int
	)
	switch rule.DataType {
	case DataTypeASCII:
		size = mtiLength
		if len(data) < pos+size {
			return "", pos, &ParseError{Err: fmt.Errorf("%w: %w", ErrInvalidMTI, ErrInsufficientData)}
		}
		mti = string(data[pos : pos+size])
	case DataTypeBCD:
		size = mtiLength / 2
		if len(data) < pos+size {
			return "", pos, &ParseError{Err: fmt.Errorf("%w: %w", ErrInvalidMTI, ErrInsufficientData)}
		}
		mti = unpackBCD(data[pos : pos+size])
	case DataTypeBinary:
		return "", pos, &SpecError{Err: fmt.Errorf("MTI cannot use data type %s", rule.DataType)}
	default:
		return "", pos, &SpecError{Err: ErrIncompleteSpec}
	}

	if err := validateMTI(mti, strict); err != nil {
		return "", pos, &ParseError{Err: err}
	}
	return mti, pos + size, nil
}

// appendMTI writes the message type indicator in the rule's data type.
func appendMTI(dst []byte, mti string, rule FieldRule) ([]byte, error) {
	if err := validateMTI(mti, false); err != nil {
		return dst, &BuildError{Err: err}
	}
	switch rule.DataType {
	case DataTypeASCII:
		return append(dst, mti...), nil
	case DataTypeBCD:
		b, err := packBCD(mti)
		if err != nil {
			return dst, &BuildError{Err: err}
		}
		return append(dst, b...), nil
	case DataTypeBinary:
		return dst, &SpecError{Err: fmt.Errorf("MTI cannot use data type %s", rule.DataType)}
	default:
		return dst, &SpecError{Err: ErrIncompleteSpec}
	}
}
