package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	iso8583 "github.com/insigmo/py8583"
)

// fixture is the YAML description of a message to encode:
//
//	mti: "0200"
//	fields:
//	  3: 0
//	  4: 1000
//	  35: "4000=991231"
type fixture struct {
	MTI    string      `yaml:"mti"`
	Fields map[int]any `yaml:"fields"`
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode FIXTURE",
		Short: "Encode a message described in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}

	cmd.Flags().String("out", "", "write the framed binary message to this file instead of printing hex")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}
	header, err := cfg.HeaderType()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fixture: %w", err)
	}
	msg, err := buildFixture(data, spec)
	if err != nil {
		return err
	}

	raw, err := msg.BuildWire()
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}
	framed, err := iso8583.Frame(raw, header)
	if err != nil {
		return err
	}

	msg.LogDebug(log, zerolog.DebugLevel)
	log.Info().
		Str("dialect", spec.Name()).
		Str("mti", msg.MTI()).
		Int("size", len(framed)).
		Msg("Encoded message")

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(framed))
		return nil
	}
	if err := os.WriteFile(out, framed, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

// buildFixture turns a YAML fixture into a message with every listed field
// present.
func buildFixture(data []byte, spec *iso8583.Spec) (*iso8583.Message, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	b := iso8583.NewBuilder(spec).MTI(f.MTI)

	fields := make([]int, 0, len(f.Fields))
	for field := range f.Fields {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		b.Field(field, f.Fields[field])
	}

	msg, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return msg, nil
}
