package iso8583

import "errors"

// Builder assembles a Message fluently. Every failing call records its
// error and later calls still run; Build reports all of them joined.
type Builder struct {
	msg    *Message
	errors []error
}

// NewBuilder starts a message bound to spec.
func NewBuilder(spec *Spec, opts ...MessageOption) *Builder {
	return &Builder{
		msg:    NewMessage(spec, opts...),
		errors: make([]error, 0, 4),
	}
}

// MTI sets the message type indicator.
func (b *Builder) MTI(mti string) *Builder {
	if err := b.msg.SetMTI(mti); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// Field stores value for field and marks it present.
func (b *Builder) Field(field int, value any) *Builder {
	if err := b.msg.SetFieldData(field, value); err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	if err := b.msg.SetField(field, 1); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// PAN sets field 2. The PAN is kept as text so leading zeros survive; a
// parsed message holds the same digits as a number.
func (b *Builder) PAN(pan string) *Builder { return b.Field(2, pan) }

// ProcessingCode sets field 3.
func (b *Builder) ProcessingCode(code int64) *Builder { return b.Field(3, code) }

// Amount sets field 4 in minor units.
func (b *Builder) Amount(amount int64) *Builder { return b.Field(4, amount) }

// STAN sets field 11.
func (b *Builder) STAN(stan int64) *Builder { return b.Field(11, stan) }

// Build returns the message, or the joined errors collected so far.
func (b *Builder) Build() (*Message, error) {
	if len(b.errors) > 0 {
		return nil, errors.Join(b.errors...)
	}
	return b.msg, nil
}

// BuildWire builds the message and serializes it.
func (b *Builder) BuildWire() ([]byte, error) {
	msg, err := b.Build()
	if err != nil {
		return nil, err
	}
	return msg.BuildWire()
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Message {
	msg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return msg
}
