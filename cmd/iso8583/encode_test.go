package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iso8583 "github.com/insigmo/py8583"
)

func TestBuildFixture(t *testing.T) {
	t.Parallel()

	msg, err := buildFixture([]byte(`
mti: "0200"
fields:
  4: 1000
  3: 0
  41: "TERM0001"
`), iso8583.Spec1987ASCII)
	require.NoError(t, err)

	raw, err := msg.BuildWire()
	require.NoError(t, err)
	assert.Equal(t, "0200"+"3000000000800000"+"000000"+"000000001000"+"TERM0001", string(raw))
}

func TestBuildFixtureErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "bad yaml", body: "mti: [\n"},
		{name: "bad mti", body: "mti: \"0010\"\n"},
		{name: "value too long", body: "mti: \"0200\"\nfields:\n  3: 1234567\n"},
		{name: "unsupported value", body: "mti: \"0200\"\nfields:\n  4: 1.5\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := buildFixture([]byte(tt.body), iso8583.Spec1987ASCII)
			assert.Error(t, err)
		})
	}
}
