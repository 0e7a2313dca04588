package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	iso8583 "github.com/insigmo/py8583"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [HEX...]",
		Short: "Decode hex encoded or binary messages",
		Long: "Decode one or more ISO8583 messages given as hex arguments, or read " +
			"back-to-back framed messages from a file.",
		RunE: runDecode,
	}

	cmd.Flags().String("file", "", "read binary messages from file ('-' for stdin)")
	cmd.Flags().Int("concurrency", 0, "maximum number of messages decoded in parallel")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics to this file after decoding")
	cmd.Flags().Bool("json", false, "log each message as one JSON object instead of the field listing")
	cmd.Flags().Bool("validate", false, "check field contents against their content type")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
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

	inputs, err := readInputs(cmd, args, header)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("nothing to decode: pass hex messages or --file")
	}

	opts := []iso8583.ProcessorOption{
		iso8583.WithConcurrency(cfg.Processor.Concurrency),
		iso8583.WithStrictMTI(cfg.Codec.Strict),
		iso8583.WithHeader(header),
		iso8583.WithLogger(log),
	}
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		opts = append(opts, iso8583.WithMetrics(iso8583.NewMetrics(registry)))
	}

	processor := iso8583.NewProcessor(spec, opts...)
	messages, batchErr := processor.ProcessBatch(cmd.Context(), inputs)

	asJSON, _ := cmd.Flags().GetBool("json")
	validate, _ := cmd.Flags().GetBool("validate")

	failed := 0
	for i, msg := range messages {
		if msg == nil {
			failed++
			continue
		}
		report(log, i, msg, asJSON)
		if validate {
			if err := msg.Validate(); err != nil {
				log.Warn().Err(err).Int("index", i).Msg("Validation failed")
			}
		}
	}

	if registry != nil {
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if batchErr != nil {
		return fmt.Errorf("%d of %d messages failed, first: %w", failed, len(inputs), batchErr)
	}
	return nil
}

func report(log zerolog.Logger, index int, msg *iso8583.Message, asJSON bool) {
	if asJSON {
		log.Info().Int("index", index).Object("message", msg).Msg("Decoded message")
		return
	}
	msg.LogDebug(log.With().Int("index", index).Logger(), zerolog.InfoLevel)
}

// readInputs collects the framed messages to decode from hex arguments or
// the --file flag.
func readInputs(cmd *cobra.Command, args []string, header iso8583.HeaderType) ([][]byte, error) {
	inputs := make([][]byte, 0, len(args))
	for _, arg := range args {
		raw, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex message %q: %w", arg, err)
		}
		inputs = append(inputs, raw)
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return inputs, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	frames, err := iso8583.SplitFrames(data, header)
	if err != nil {
		return nil, err
	}
	return append(inputs, frames...), nil
}
