package iso8583

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMTI            = errors.New("invalid MTI")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidField          = errors.New("invalid field")
	ErrValueTooLong          = errors.New("value longer than field maximum")
	ErrFieldNotSet           = errors.New("field value not set")
	ErrInsufficientData      = errors.New("insufficient data")
	ErrInvalidLength         = errors.New("invalid field length")
	ErrInvalidBitmap         = errors.New("invalid bitmap")
	ErrUnsupportedLengthType = errors.New("unsupported length data type")
	ErrIncompleteSpec        = errors.New("incomplete field specification")
	ErrUnknownSpec           = errors.New("unknown specification")
	ErrInvalidTLV            = errors.New("invalid TLV data")
)

// ParseError reports malformed wire input. Field is 0 when the failure is
// not tied to a data element (MTI, bitmap).
type ParseError struct {
	Field int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse F%d: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SpecError reports a missing or incomplete rule in the bound Spec.
type SpecError struct {
	Field int
	Err   error
}

func (e *SpecError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("spec: %v", e.Err)
	}
	return fmt.Sprintf("spec F%d: %v", e.Field, e.Err)
}

func (e *SpecError) Unwrap() error { return e.Err }

// BuildError reports a field value that cannot be serialized under its rule.
type BuildError struct {
	Field int
	Err   error
}

func (e *BuildError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("build: %v", e.Err)
	}
	return fmt.Sprintf("build F%d: %v", e.Field, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// ValidationError reports a present field whose value breaks its content type.
type ValidationError struct {
	Field   int
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %d (%s): %s", ve.Field, ve.Rule, ve.Message)
}

func parseErrorf(field int, format string, args ...any) error {
	return &ParseError{Field: field, Err: fmt.Errorf(format, args...)}
}

func buildErrorf(field int, format string, args ...any) error {
	return &BuildError{Field: field, Err: fmt.Errorf(format, args...)}
}

// isCodecError reports whether err already carries one of the codec error kinds.
func isCodecError(err error) bool {
	var (
		pe *ParseError
		se *SpecError
		be *BuildError
	)
	return errors.As(err, &pe) || errors.As(err, &se) || errors.As(err, &be)
}
