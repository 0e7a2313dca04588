package iso8583

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

// ValidationRule checks the value of one present field.
type ValidationRule interface {
	Validate(v Value, rule FieldRule) error
	Name() string
}

// Validator holds mandatory fields and per-field rules. It is immutable
// after construction and safe for concurrent use.
type Validator struct {
	mandatory   [MaxFieldNumber + 1]bool
	fieldRules  map[int][]ValidationRule
	globalRules []ValidationRule
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithMandatory requires the given fields to be present.
func WithMandatory(fields ...int) ValidatorOption {
	return func(v *Validator) {
		for _, f := range fields {
			if f >= 1 && f <= MaxFieldNumber {
				v.mandatory[f] = true
			}
		}
	}
}

// WithFieldRule adds a rule applied to one field only.
func WithFieldRule(field int, rule ValidationRule) ValidatorOption {
	return func(v *Validator) {
		v.fieldRules[field] = append(v.fieldRules[field], rule)
	}
}

// WithGlobalRule adds a rule applied to every present field.
func WithGlobalRule(rule ValidationRule) ValidatorOption {
	return func(v *Validator) {
		v.globalRules = append(v.globalRules, rule)
	}
}

// NewValidator creates a Validator that checks content charsets plus
// whatever the options add.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		fieldRules:  make(map[int][]ValidationRule),
		globalRules: []ValidationRule{ContentRule{}},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate checks the message against the content charset of every present
// field. Present fields without a value fail with ErrFieldNotSet.
func (m *Message) Validate() error {
	return defaultValidator.ValidateMessage(m)
}

// ValidateMessage checks mandatory fields and runs every rule against the
// present fields in ascending order. It returns the first failure.
func (cv *Validator) ValidateMessage(msg *Message) error {
	for field := 2; field <= MaxFieldNumber; field++ {
		if cv.mandatory[field] && !msg.HasField(field) {
			return &ValidationError{
				Field:   field,
				Rule:    "mandatory",
				Message: "mandatory field missing",
			}
		}
	}

	for _, field := range msg.PresentFields() {
		v, ok := msg.FieldData(field)
		if !ok {
			return &ValidationError{Field: field, Rule: "presence", Message: ErrFieldNotSet.Error()}
		}
		rule, err := msg.Spec().Rule(field)
		if err != nil {
			return err
		}
		if err := cv.ValidateField(field, v, rule); err != nil {
			return err
		}
	}
	return nil
}

// ValidateField runs the field's own rules, then the global ones.
func (cv *Validator) ValidateField(field int, v Value, rule FieldRule) error {
	for _, set := range [][]ValidationRule{cv.fieldRules[field], cv.globalRules} {
		for _, r := range set {
			if err := r.Validate(v, rule); err != nil {
				return &ValidationError{
					Field:   field,
					Rule:    r.Name(),
					Message: err.Error(),
				}
			}
		}
	}
	return nil
}

// ContentRule checks a value against the charset of its content type.
// Spaces are accepted in text content since fixed fields are space padded.
type ContentRule struct{}

func (ContentRule) Name() string { return "content" }

func (ContentRule) Validate(v Value, rule FieldRule) error {
	if v.IsNull() {
		return nil
	}
	s := v.String()

	var ok func(r rune) bool
	switch rule.ContentType {
	case ContentN:
		ok = isDigit
	case ContentA:
		ok = func(r rune) bool { return isAlpha(r) || r == ' ' }
	case ContentS:
		ok = isSpecial
	case ContentAN:
		ok = func(r rune) bool { return isAlpha(r) || isDigit(r) || r == ' ' }
	case ContentAS:
		ok = func(r rune) bool { return isAlpha(r) || isSpecial(r) }
	case ContentNS:
		ok = func(r rune) bool { return isDigit(r) || isSpecial(r) }
	case ContentANS:
		ok = func(r rune) bool { return unicode.IsPrint(r) }
	case ContentB:
		if len(s)%2 != 0 {
			return fmt.Errorf("binary data must have even length")
		}
		ok = isHexDigit
	case ContentZ:
		return TrackDataRule{}.Validate(v, rule)
	default:
		return fmt.Errorf("unknown content type %q", rule.ContentType)
	}

	for i, r := range []rune(s) {
		if !ok(r) {
			return fmt.Errorf("character %q at position %d not allowed in %q content", r, i, rule.ContentType)
		}
	}
	return nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool { return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

func isSpecial(r rune) bool { return unicode.IsPrint(r) && !isAlpha(r) && !isDigit(r) }

// LengthRule bounds the textual length of a value.
type LengthRule struct {
	MinLength int
	MaxLength int
}

func (LengthRule) Name() string { return "length" }

func (r LengthRule) Validate(v Value, _ FieldRule) error {
	n := textLen(v.String())
	if r.MinLength > 0 && n < r.MinLength {
		return fmt.Errorf("length %d below minimum %d", n, r.MinLength)
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		return fmt.Errorf("length %d exceeds maximum %d", n, r.MaxLength)
	}
	return nil
}

// RegexRule matches the textual value against a pattern.
type RegexRule struct {
	re          *regexp.Regexp
	description string
}

// NewRegexRule compiles pattern once. description replaces the default
// error message when set.
func NewRegexRule(pattern, description string) (*RegexRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return &RegexRule{re: re, description: description}, nil
}

func (r *RegexRule) Name() string { return "regex" }

func (r *RegexRule) Validate(v Value, _ FieldRule) error {
	if r.re.MatchString(v.String()) {
		return nil
	}
	if r.description != "" {
		return fmt.Errorf("%s", r.description)
	}
	return fmt.Errorf("does not match pattern %s", r.re)
}

// RangeRule bounds a numeric value.
type RangeRule struct {
	Min *big.Int
	Max *big.Int
}

func (RangeRule) Name() string { return "range" }

func (r RangeRule) Validate(v Value, _ FieldRule) error {
	n := v.BigInt()
	if n == nil {
		parsed, err := parseDecimal(v.String())
		if err != nil {
			return fmt.Errorf("cannot parse as integer: %w", err)
		}
		n = parsed
	}
	if r.Min != nil && n.Cmp(r.Min) < 0 {
		return fmt.Errorf("value %s below minimum %s", n, r.Min)
	}
	if r.Max != nil && n.Cmp(r.Max) > 0 {
		return fmt.Errorf("value %s exceeds maximum %s", n, r.Max)
	}
	return nil
}

// CustomRule wraps an arbitrary check.
type CustomRule struct {
	RuleName     string
	ValidateFunc func(Value, FieldRule) error
}

func (r CustomRule) Name() string { return r.RuleName }

func (r CustomRule) Validate(v Value, rule FieldRule) error { return r.ValidateFunc(v, rule) }

// TrackDataRule checks track 2/3 data: digits with at most one '='
// field separator.
type TrackDataRule struct{}

func (TrackDataRule) Name() string { return "track_data" }

func (TrackDataRule) Validate(v Value, _ FieldRule) error {
	s := v.String()
	if strings.Count(s, "=") > 1 {
		return fmt.Errorf("track data has more than one separator")
	}
	for i, r := range s {
		if !isDigit(r) && r != '=' {
			return fmt.Errorf("character %q at position %d not allowed in track data", r, i)
		}
	}
	return nil
}
