package iso8583

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DebugLines renders the message for operator inspection: the MTI, the
// present field numbers and one line per present field. Missing values are
// shown empty. The message is not modified.
func (m *Message) DebugLines() []string {
	fields := m.PresentFields()

	var sb strings.Builder
	sb.WriteString("fields: [ ")
	for _, f := range fields {
		sb.WriteString(strconv.Itoa(f))
		sb.WriteByte(' ')
	}
	sb.WriteString("]")

	lines := make([]string, 0, len(fields)+2)
	lines = append(lines, fmt.Sprintf("mti:    [%s]", m.MTI()), sb.String())
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("\t%3d - %-41s : [%s]", f, m.spec.Description(f), m.displayValue(f)))
	}
	return lines
}

// displayValue renders a stored value, zero-padding fixed numeric fields to
// their full width.
func (m *Message) displayValue(field int) string {
	v, ok := m.FieldData(field)
	if !ok {
		return ""
	}
	s := v.String()
	rule, err := m.spec.Rule(field)
	if err == nil && rule.ContentType == ContentN && rule.LengthType == LengthFixed {
		s = padLeft(s, rule.MaxLength, '0')
	}
	return s
}

// LogDebug writes DebugLines to log at the given level, one event per line.
func (m *Message) LogDebug(log zerolog.Logger, level zerolog.Level) {
	for _, line := range m.DebugLines() {
		log.WithLevel(level).Msg(line)
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so a Message can
// be attached to any event with Object.
func (m *Message) MarshalZerologObject(e *zerolog.Event) {
	fields := m.PresentFields()
	values := zerolog.Dict()
	for _, f := range fields {
		values.Str(strconv.Itoa(f), m.displayValue(f))
	}
	e.Str("spec", m.spec.Name()).
		Str("mti", m.MTI()).
		Ints("fields", fields).
		Dict("values", values)
}
