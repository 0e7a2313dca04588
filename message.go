package iso8583

import (
	"fmt"
	"sync"
)

// Message is one ISO8583 message bound to a Spec. Presence flags and field
// values are kept apart: setting a value does not mark the field present and
// marking a field present does not give it a value.
type Message struct {
	spec     *Spec
	strict   bool
	mti      string
	presence [MaxFieldNumber + 1]bool
	values   map[int]Value
	raw      []byte
	mu       sync.RWMutex
}

// NewMessage returns an empty message bound to spec. A nil spec selects
// Spec1987ASCII.
func NewMessage(spec *Spec, opts ...MessageOption) *Message {
	if spec == nil {
		spec = Spec1987ASCII
	}
	m := &Message{
		spec:   spec,
		values: make(map[int]Value),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ParseMessage decodes raw under spec. Options are applied before parsing,
// so WithStrict governs the MTI check.
func ParseMessage(raw []byte, spec *Spec, opts ...MessageOption) (*Message, error) {
	m := NewMessage(spec, opts...)
	if err := m.SetWireContent(raw); err != nil {
		return nil, err
	}
	return m, nil
}

// Spec returns the dialect the message is bound to.
func (m *Message) Spec() *Spec { return m.spec }

// Strict reports whether parsing checks the full MTI domain.
func (m *Message) Strict() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.strict
}

// SetStrict toggles the full MTI domain check for subsequent parses.
func (m *Message) SetStrict(strict bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strict = strict
}

// Raw returns the bytes last parsed or built.
func (m *Message) Raw() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.raw
}

// Reset clears the MTI, presence flags, values and raw bytes.
func (m *Message) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Message) reset() {
	m.mti = ""
	m.presence = [MaxFieldNumber + 1]bool{}
	clear(m.values)
	m.raw = nil
}

// SetWireContent parses raw in place, replacing all prior state. Raw keeps
// a copy of the input; trailing bytes after the last field are ignored. On
// error the message is left empty, as after Reset.
func (m *Message) SetWireContent(raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	if err := m.decode(raw); err != nil {
		m.reset()
		return err
	}
	m.raw = detach(raw)
	return nil
}

func (m *Message) decode(raw []byte) error {
	mti, pos, err := decodeMTI(raw, 0, m.spec.mti, m.strict)
	if err != nil {
		return err
	}
	m.mti = mti

	bitmapRule, err := m.spec.BitmapRule()
	if err != nil {
		return err
	}
	bm, pos, err := decodeBitmap(raw, pos, bitmapRule.DataType)
	if err != nil {
		return err
	}
	m.presence[1] = bm.HasSecondary()

	for _, field := range bm.Fields() {
		m.presence[field] = true
		rule, err := m.spec.Rule(field)
		if err != nil {
			return err
		}
		var v Value
		if v, pos, err = decodeField(raw, pos, rule); err != nil {
			return err
		}
		m.values[field] = v
	}
	return nil
}

// BuildWire serializes the message. Field 1 is forced on whenever a field
// above 64 is present and the stored flag is updated to match.
func (m *Message) BuildWire() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := getBuffer(len(m.values))
	defer func() { putBuffer(buf) }()

	var err error
	if buf, err = appendMTI(buf, m.mti, m.spec.mti); err != nil {
		return nil, err
	}

	bitmapRule, err := m.spec.BitmapRule()
	if err != nil {
		return nil, err
	}
	bm := m.bitmap()
	if buf, err = appendBitmap(buf, bm, bitmapRule.DataType); err != nil {
		return nil, err
	}
	m.presence[1] = bm.HasSecondary()

	for _, field := range bm.Fields() {
		rule, err := m.spec.Rule(field)
		if err != nil {
			return nil, err
		}
		v, ok := m.values[field]
		if !ok {
			return nil, buildErrorf(field, "%w", ErrFieldNotSet)
		}
		if buf, err = appendField(buf, v, rule); err != nil {
			return nil, fmt.Errorf("building F%d: %w", field, err)
		}
	}

	m.raw = detach(buf)
	return m.raw, nil
}

func (m *Message) bitmap() Bitmap {
	var bm Bitmap
	for field := 1; field <= MaxFieldNumber; field++ {
		if m.presence[field] {
			_ = bm.Set(field)
		}
	}
	return bm
}

// MTI returns the message type indicator, or "" if none was set.
func (m *Message) MTI() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mti
}

// SetMTI sets the message type indicator. Short input is left-padded with
// zeros and every digit must fall in its enumerated domain.
func (m *Message) SetMTI(mti string) error {
	mti = normalizeMTI(mti)
	if err := validateMTI(mti, true); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mti = mti
	return nil
}

func (m *Message) mtiDigit(i int) (int, error) {
	mti := m.MTI()
	if err := validateMTI(mti, false); err != nil {
		return 0, err
	}
	return int(mti[i] - '0'), nil
}

// Version decodes the first MTI digit.
func (m *Message) Version() (MsgVersion, error) {
	d, err := m.mtiDigit(0)
	if err != nil {
		return 0, err
	}
	if v := MsgVersion(d); v.valid() {
		return v, nil
	}
	return 0, fmt.Errorf("%w: unknown version %d", ErrInvalidMTI, d)
}

// Class decodes the second MTI digit.
func (m *Message) Class() (MsgClass, error) {
	d, err := m.mtiDigit(1)
	if err != nil {
		return 0, err
	}
	if c := MsgClass(d); c.valid() {
		return c, nil
	}
	return 0, fmt.Errorf("%w: unknown class %d", ErrInvalidMTI, d)
}

// Function decodes the third MTI digit.
func (m *Message) Function() (MsgFunction, error) {
	d, err := m.mtiDigit(2)
	if err != nil {
		return 0, err
	}
	if f := MsgFunction(d); f.valid() {
		return f, nil
	}
	return 0, fmt.Errorf("%w: unknown function %d", ErrInvalidMTI, d)
}

// Origin decodes the fourth MTI digit.
func (m *Message) Origin() (MsgOrigin, error) {
	d, err := m.mtiDigit(3)
	if err != nil {
		return 0, err
	}
	if o := MsgOrigin(d); o.valid() {
		return o, nil
	}
	return 0, fmt.Errorf("%w: unknown origin %d", ErrInvalidMTI, d)
}

// IsNetworkManagement reports whether the MTI has the network management class.
func (m *Message) IsNetworkManagement() bool {
	c, err := m.Class()
	return err == nil && c == ClassNetworkManagement
}

// Field returns the presence flag of a field: 1 if present, 0 otherwise.
func (m *Message) Field(field int) int {
	if m.HasField(field) {
		return 1
	}
	return 0
}

// HasField reports whether a field is flagged present.
func (m *Message) HasField(field int) bool {
	if field < 1 || field > MaxFieldNumber {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.presence[field]
}

// SetField sets the presence flag of a field. flag must be 0 or 1.
func (m *Message) SetField(field, flag int) error {
	if field < 1 || field > MaxFieldNumber {
		return fmt.Errorf("%w: field number %d out of range", ErrInvalidField, field)
	}
	if flag != 0 && flag != 1 {
		return fmt.Errorf("%w: presence flag must be 0 or 1, got %d", ErrInvalidArgument, flag)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presence[field] = flag == 1
	return nil
}

// FieldData returns the value stored for a field.
func (m *Message) FieldData(field int) (Value, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[field]
	return v, ok
}

// SetFieldData stores a value for a field without touching its presence
// flag. Accepted types are Value, integers, *big.Int, string, []byte and nil.
// Values for binary content are kept as hex, two characters per byte.
// Digit strings for numeric content stay text, keeping their leading zeros
// on the wire; parsing the field back yields a numeric Value.
func (m *Message) SetFieldData(field int, value any) error {
	if field < 2 || field > MaxFieldNumber {
		return fmt.Errorf("%w: field number %d cannot carry data", ErrInvalidField, field)
	}
	rule, err := m.spec.Rule(field)
	if err != nil {
		return err
	}
	v, err := valueOf(value, rule.ContentType)
	if err != nil {
		return fmt.Errorf("field %d: %w", field, err)
	}
	if n := textLen(v.String()); n > rule.valueLimit() {
		return fmt.Errorf("field %d: %w: length %d exceeds maximum %d", field, ErrValueTooLong, n, rule.valueLimit())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[field] = v
	return nil
}

// Fields returns a copy of all stored field values.
func (m *Message) Fields() map[int]Value {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]Value, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Bitmap returns the presence flag (0 or 1) of every field 1..128.
func (m *Message) Bitmap() map[int]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]int, MaxFieldNumber)
	for field := 1; field <= MaxFieldNumber; field++ {
		out[field] = 0
		if m.presence[field] {
			out[field] = 1
		}
	}
	return out
}

// PresentFields returns the data elements (2..128) flagged present, ascending.
func (m *Message) PresentFields() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fields := make([]int, 0, 16)
	for field := 2; field <= MaxFieldNumber; field++ {
		if m.presence[field] {
			fields = append(fields, field)
		}
	}
	return fields
}

// Description returns the bound dialect's name for a field.
func (m *Message) Description(field int) string { return m.spec.Description(field) }

// DataType returns the bound dialect's wire data type for a field.
func (m *Message) DataType(field int) (DataType, error) { return m.spec.DataType(field) }

// ContentType returns the bound dialect's content type for a field.
func (m *Message) ContentType(field int) (ContentType, error) { return m.spec.ContentType(field) }

// Clone returns an independent copy bound to the same Spec.
func (m *Message) Clone() *Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := &Message{
		spec:     m.spec,
		strict:   m.strict,
		mti:      m.mti,
		presence: m.presence,
		values:   make(map[int]Value, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	if m.raw != nil {
		c.raw = append([]byte(nil), m.raw...)
	}
	return c
}

// CreateResponse clones a request, turns its MTI function into the matching
// response (0100 -> 0110, 0220 -> 0230) and sets field 39.
func (m *Message) CreateResponse(responseCode string) (*Message, error) {
	fn, err := m.Function()
	if err != nil {
		return nil, err
	}
	if fn%2 != 0 {
		return nil, fmt.Errorf("%w: %s is already a response", ErrInvalidMTI, m.MTI())
	}

	res := m.Clone()
	res.raw = nil
	mti := []byte(res.mti)
	mti[2]++
	if err := res.SetMTI(string(mti)); err != nil {
		return nil, err
	}
	if err := res.SetFieldData(39, responseCode); err != nil {
		return nil, err
	}
	if err := res.SetField(39, 1); err != nil {
		return nil, err
	}
	return res, nil
}

// String renders the MTI and present field numbers.
func (m *Message) String() string {
	return fmt.Sprintf("%s %v", m.MTI(), m.PresentFields())
}
