package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iso8583 "github.com/insigmo/py8583"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "1987-ascii", cfg.Codec.Dialect)
	assert.False(t, cfg.Codec.Strict)
	assert.Equal(t, "none", cfg.Codec.Header)
	assert.Equal(t, 4, cfg.Processor.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)

	spec, err := cfg.Spec()
	require.NoError(t, err)
	assert.Same(t, iso8583.Spec1987ASCII, spec)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
codec:
  dialect: 1987-bcd
  strict: true
  header: binary
processor:
  concurrency: 8
log:
  level: debug
  pretty: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1987-bcd", cfg.Codec.Dialect)
	assert.True(t, cfg.Codec.Strict)
	assert.Equal(t, 8, cfg.Processor.Concurrency)
	assert.True(t, cfg.Log.Pretty)

	h, err := cfg.HeaderType()
	require.NoError(t, err)
	assert.Equal(t, iso8583.HeaderBinary, h)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ISO8583_CODEC_DIALECT", "bic")
	t.Setenv("ISO8583_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "codec:\n  dialect: 1993-ascii\n"))
	require.NoError(t, err)

	assert.Equal(t, "bic", cfg.Codec.Dialect)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown dialect", body: "codec:\n  dialect: 2003-ebcdic\n"},
		{name: "unknown header", body: "codec:\n  header: varint\n"},
		{name: "zero concurrency", body: "processor:\n  concurrency: 0\n"},
		{name: "metrics without file", body: "metrics:\n  enabled: true\n  file: \"\"\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
