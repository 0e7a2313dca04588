package iso8583

// MessageOption represents a functional option for message configuration
type MessageOption func(*Message)

// WithStrict enables the full MTI domain check when parsing.
func WithStrict(strict bool) MessageOption {
	return func(m *Message) {
		m.strict = strict
	}
}

// WithMTI sets the Message Type Indicator. An invalid MTI is ignored here;
// use SetMTI to observe the error.
func WithMTI(mti string) MessageOption {
	return func(m *Message) {
		_ = m.SetMTI(mti)
	}
}

// WithField marks a field present and sets its value during message creation.
func WithField(field int, value any) MessageOption {
	return func(m *Message) {
		if m.SetFieldData(field, value) == nil {
			_ = m.SetField(field, 1)
		}
	}
}

// SpecOption overrides a single aspect of a Spec while it is being derived.
type SpecOption func(*Spec)

// WithMaxLength overrides a field's maximum length.
func WithMaxLength(field, maxLength int) SpecOption {
	return func(s *Spec) {
		if r := s.rule(field); r != nil {
			r.MaxLength = maxLength
		}
	}
}

// WithContentType overrides a field's content type.
func WithContentType(field int, ct ContentType) SpecOption {
	return func(s *Spec) {
		if r := s.rule(field); r != nil {
			r.ContentType = ct
		}
	}
}

// WithDataType overrides a field's wire data type.
func WithDataType(field int, dt DataType) SpecOption {
	return func(s *Spec) {
		if r := s.rule(field); r != nil {
			r.DataType = dt
		}
	}
}

// WithLengthDataType overrides the data type of a field's length prefix.
func WithLengthDataType(field int, dt DataType) SpecOption {
	return func(s *Spec) {
		if r := s.rule(field); r != nil {
			r.LengthDataType = dt
		}
	}
}

// WithLengthType overrides how a field's length is determined.
func WithLengthType(field int, lt LengthType) SpecOption {
	return func(s *Spec) {
		if r := s.rule(field); r != nil {
			r.LengthType = lt
		}
	}
}

// WithDescription overrides a field's description.
func WithDescription(field int, description string) SpecOption {
	return func(s *Spec) {
		if r := s.rule(field); r != nil {
			r.Description = description
		}
	}
}

// WithoutField removes a field's rule entirely.
func WithoutField(field int) SpecOption {
	return func(s *Spec) {
		if field >= 1 && field <= MaxFieldNumber {
			s.fields[field] = FieldRule{}
			s.known[field] = false
		}
	}
}

// rule returns a mutable pointer into a Spec being derived, registering the
// field if it had no rule yet.
func (s *Spec) rule(field int) *FieldRule {
	if field < 1 || field > MaxFieldNumber {
		return nil
	}
	if !s.known[field] {
		s.fields[field] = FieldRule{Field: field}
		s.known[field] = true
	}
	return &s.fields[field]
}
