package iso8583

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const (
	hexBitmapSize  = BitmapSize * 2
	secondaryBit   = uint64(1) << 63
	primaryFields  = 64
	bitmapMaxField = MaxFieldNumber
)

// Bitmap holds the ISO8583 64-bit primary and 64-bit secondary bitmaps.
// Field i of the primary bitmap is bit 64-i (most significant bit first);
// field i of the secondary bitmap is bit 128-i.
type Bitmap struct {
	primary   uint64
	secondary uint64
}

// Set sets the bit for the given field number (1-128).
// It automatically sets the secondary bitmap indicator (field 1) if field > 64.
func (bm *Bitmap) Set(field int) error {
	if field < 1 || field > bitmapMaxField {
		return fmt.Errorf("%w: field number %d out of range", ErrInvalidField, field)
	}
	if field <= primaryFields {
		bm.primary |= 1 << (primaryFields - field)
		return nil
	}
	bm.primary |= secondaryBit
	bm.secondary |= 1 << (bitmapMaxField - field)
	return nil
}

// IsSet checks if the bit for the given field number is set.
func (bm *Bitmap) IsSet(field int) bool {
	switch {
	case field < 1 || field > bitmapMaxField:
		return false
	case field <= primaryFields:
		return bm.primary&(1<<(primaryFields-field)) != 0
	default:
		return bm.HasSecondary() && bm.secondary&(1<<(bitmapMaxField-field)) != 0
	}
}

// HasSecondary returns true if the secondary bitmap indicator (field 1) is set.
func (bm *Bitmap) HasSecondary() bool {
	return bm.primary&secondaryBit != 0
}

// Fields returns the data elements (2..128) flagged in the bitmap, ascending.
func (bm *Bitmap) Fields() []int {
	fields := make([]int, 0, 16)
	last := primaryFields
	if bm.HasSecondary() {
		last = bitmapMaxField
	}
	for field := 2; field <= last; field++ {
		if bm.IsSet(field) {
			fields = append(fields, field)
		}
	}
	return fields
}

// appendBitmap appends the primary and, when flagged, the secondary bitmap.
func appendBitmap(dst []byte, bm Bitmap, dt DataType) ([]byte, error) {
	var err error
	if dst, err = appendBitmapWord(dst, bm.primary, dt); err != nil {
		return dst, err
	}
	if bm.HasSecondary() {
		dst, err = appendBitmapWord(dst, bm.secondary, dt)
	}
	return dst, err
}

func appendBitmapWord(dst []byte, word uint64, dt DataType) ([]byte, error) {
	var raw [BitmapSize]byte
	binary.BigEndian.PutUint64(raw[:], word)

	switch dt {
	case DataTypeBinary:
		return append(dst, raw[:]...), nil
	case DataTypeASCII:
		var txt [hexBitmapSize]byte
		encodeHexUpper(txt[:], raw[:])
		return append(dst, txt[:]...), nil
	case DataTypeBCD:
		return dst, &SpecError{Field: 1, Err: fmt.Errorf("bitmap cannot use data type %s", dt)}
	default:
		return dst, &SpecError{Field: 1, Err: ErrIncompleteSpec}
	}
}

// decodeBitmap reads the primary bitmap at pos and, when field 1 is set, the
// secondary bitmap that follows. It returns the advanced cursor.
func decodeBitmap(data []byte, pos int, dt DataType) (Bitmap, int, error) {
	var bm Bitmap
	var err error

	if bm.primary, pos, err = decodeBitmapWord(data, pos, dt); err != nil {
		return bm, pos, err
	}
	if bm.HasSecondary() {
		if bm.secondary, pos, err = decodeBitmapWord(data, pos, dt); err != nil {
			return bm, pos, err
		}
	}
	return bm, pos, nil
}

func decodeBitmapWord(data []byte, pos int, dt DataType) (uint64, int, error) {
	switch dt {
	case DataTypeBinary:
		if len(data) < pos+BitmapSize {
			return 0, pos, &ParseError{Err: fmt.Errorf("%w: %w", ErrInvalidBitmap, ErrInsufficientData)}
		}
		return binary.BigEndian.Uint64(data[pos : pos+BitmapSize]), pos + BitmapSize, nil
	case DataTypeASCII:
		if len(data) < pos+hexBitmapSize {
			return 0, pos, &ParseError{Err: fmt.Errorf("%w: %w", ErrInvalidBitmap, ErrInsufficientData)}
		}
		var raw [BitmapSize]byte
		if _, err := hex.Decode(raw[:], data[pos:pos+hexBitmapSize]); err != nil {
			return 0, pos, &ParseError{Err: fmt.Errorf("%w: %w", ErrInvalidBitmap, err)}
		}
		return binary.BigEndian.Uint64(raw[:]), pos + hexBitmapSize, nil
	case DataTypeBCD:
		return 0, pos, &SpecError{Field: 1, Err: fmt.Errorf("bitmap cannot use data type %s", dt)}
	default:
		return 0, pos, &SpecError{Field: 1, Err: ErrIncompleteSpec}
	}
}
