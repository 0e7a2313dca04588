package iso8583

import (
	"fmt"
	"strings"
)

// FieldRule is the encoding rule of a single data element.
type FieldRule struct {
	Field          int
	DataType       DataType
	LengthType     LengthType
	ContentType    ContentType
	MaxLength      int
	LengthDataType DataType // Only meaningful when LengthType != LengthFixed
	Description    string
}

// complete reports whether the rule carries everything the field codec needs.
func (r FieldRule) complete() bool {
	if r.DataType == 0 || r.MaxLength <= 0 || !r.ContentType.Valid() {
		return false
	}
	if r.LengthType != LengthFixed && r.LengthDataType == 0 {
		return false
	}
	return true
}

// wireLimit is the largest length a field may declare on the wire.
// Binary content carried as ASCII text travels as hex, twice as long.
func (r FieldRule) wireLimit() int {
	if r.ContentType == ContentB && r.DataType == DataTypeASCII {
		return r.MaxLength * 2
	}
	return r.MaxLength
}

// valueLimit is the largest textual length a caller may store in the field.
// Binary values are stored as hex, two characters per byte.
func (r FieldRule) valueLimit() int {
	if r.ContentType == ContentB {
		return r.MaxLength * 2
	}
	return r.MaxLength
}

type baseRule struct {
	Content     ContentType
	MaxLength   int
	Length      LengthType
	Description string
}

type baseTable [MaxFieldNumber + 1]baseRule

// Spec is an immutable set of field rules for one protocol dialect.
// It is safe for concurrent use by any number of messages.
type Spec struct {
	name   string
	mti    FieldRule
	fields [MaxFieldNumber + 1]FieldRule
	known  [MaxFieldNumber + 1]bool
}

var (
	Spec1987ASCII = deriveASCII("1987 ASCII", base1987)
	Spec1987BCD   = deriveBCD("1987 BCD", base1987)
	Spec1993ASCII = deriveASCII("1993 ASCII", base1993)
	SpecBIC       = Spec1987ASCII.Derive("BIC ISO",
		WithMaxLength(41, 16),
		WithMaxLength(44, 27),
	)
)

var specsByName = map[string]*Spec{
	"1987-ascii": Spec1987ASCII,
	"1987-bcd":   Spec1987BCD,
	"1993-ascii": Spec1993ASCII,
	"bic":        SpecBIC,
}

// SpecByName resolves a dialect by its configuration name:
// 1987-ascii, 1987-bcd, 1993-ascii or bic.
func SpecByName(name string) (*Spec, error) {
	spec, ok := specsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpec, name)
	}
	return spec, nil
}

func newSpec(name string, base baseTable) *Spec {
	s := &Spec{name: name}
	s.mti = FieldRule{
		ContentType: ContentN,
		LengthType:  LengthFixed,
		MaxLength:   mtiLength,
		Description: "Message type indicator",
	}
	for field := 1; field <= MaxFieldNumber; field++ {
		b := base[field]
		if b.MaxLength == 0 {
			continue
		}
		s.fields[field] = FieldRule{
			Field:       field,
			LengthType:  b.Length,
			ContentType: b.Content,
			MaxLength:   b.MaxLength,
			Description: b.Description,
		}
		s.known[field] = true
	}
	return s
}

// deriveASCII carries every field, the MTI, the bitmap and all length
// prefixes as text.
func deriveASCII(name string, base baseTable) *Spec {
	s := newSpec(name, base)
	s.mti.DataType = DataTypeASCII
	for field := 1; field <= MaxFieldNumber; field++ {
		if !s.known[field] {
			continue
		}
		r := &s.fields[field]
		r.DataType = DataTypeASCII
		if r.LengthType != LengthFixed {
			r.LengthDataType = DataTypeASCII
		}
	}
	return s
}

// deriveBCD packs the MTI and numeric fields as BCD, keeps textual fields as
// ASCII and binary fields as raw bytes. Fields with a nominal maximum of 999
// are carried as binary, which is how packed-decimal hosts use the reserved
// and private data elements.
func deriveBCD(name string, base baseTable) *Spec {
	for field := range base {
		if base[field].MaxLength == 999 {
			base[field].Content = ContentB
		}
	}

	s := newSpec(name, base)
	s.mti.DataType = DataTypeBCD
	for field := 1; field <= MaxFieldNumber; field++ {
		if !s.known[field] {
			continue
		}
		r := &s.fields[field]
		switch {
		case field == 1:
			r.DataType = DataTypeBinary
		case r.ContentType.textual():
			r.DataType = DataTypeASCII
		case r.ContentType == ContentB:
			r.DataType = DataTypeBinary
		default:
			r.DataType = DataTypeBCD
		}
		if r.LengthType != LengthFixed {
			r.LengthDataType = DataTypeBCD
		}
	}
	return s
}

// Name returns the dialect name.
func (s *Spec) Name() string { return s.name }

// Rule returns the rule for a data element (1..128).
func (s *Spec) Rule(field int) (FieldRule, error) {
	if field < 1 || field > MaxFieldNumber || !s.known[field] {
		return FieldRule{}, &SpecError{Field: field, Err: fmt.Errorf("no rule for field %d", field)}
	}
	r := s.fields[field]
	if !r.complete() {
		return FieldRule{}, &SpecError{Field: field, Err: ErrIncompleteSpec}
	}
	return r, nil
}

// MTIRule returns the synthetic rule used for the message type indicator.
func (s *Spec) MTIRule() FieldRule { return s.mti }

// BitmapRule returns the rule of field 1, which governs both bitmaps.
func (s *Spec) BitmapRule() (FieldRule, error) { return s.Rule(1) }

// Description returns the human-readable name of a field, or "" if unknown.
func (s *Spec) Description(field int) string {
	if field < 1 || field > MaxFieldNumber {
		return ""
	}
	return s.fields[field].Description
}

// DataType returns the wire data type of a field.
func (s *Spec) DataType(field int) (DataType, error) {
	r, err := s.Rule(field)
	if err != nil {
		return 0, err
	}
	return r.DataType, nil
}

// ContentType returns the content type of a field.
func (s *Spec) ContentType(field int) (ContentType, error) {
	r, err := s.Rule(field)
	if err != nil {
		return "", err
	}
	return r.ContentType, nil
}

// Derive returns a new Spec with the given overrides applied on top of s.
// s itself is left untouched.
func (s *Spec) Derive(name string, opts ...SpecOption) *Spec {
	d := *s
	d.name = name
	for _, opt := range opts {
		opt(&d)
	}
	return &d
}
