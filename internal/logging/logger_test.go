package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "empty falls back", level: "", want: zerolog.InfoLevel},
		{name: "unknown falls back", level: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := NewWithWriter(&bytes.Buffer{}, tt.level, false)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", false)
	log.Debug().Msg("hidden")
	log.Info().Str("mti", "0200").Msg("decoded")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"mti":"0200"`)
	assert.Contains(t, out, `"message":"decoded"`)
}
