package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insigmo/py8583/internal/config"
	"github.com/insigmo/py8583/internal/logging"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:           "iso8583",
		Short:         "ISO8583 message codec",
		Long:          "Decode and encode ISO8583 financial messages in the 1987 ASCII, 1987 BCD, 1993 ASCII and BIC dialects.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run:   runVersion,
	}
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	initCommands()
	return rootCmd.Execute()
}

func initCommands() {
	rootCmd.AddCommand(versionCmd, newDecodeCmd(), newEncodeCmd())

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "enable pretty logging")

	// Codec flags
	rootCmd.PersistentFlags().String("dialect", "", "dialect (1987-ascii, 1987-bcd, 1993-ascii, bic)")
	rootCmd.PersistentFlags().Bool("strict", false, "check the full MTI domain when parsing")
	rootCmd.PersistentFlags().String("header", "", "transport length prefix (none, binary, ascii, hex)")
}

// loadConfig reads the config file, applies flag overrides and builds the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid flags: %w", err)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Debug().
		Str("config_file", cfgFile).
		Str("dialect", cfg.Codec.Dialect).
		Bool("strict", cfg.Codec.Strict).
		Str("header", cfg.Codec.Header).
		Msg("Configuration loaded")

	return cfg, log, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flag("log-level").Changed {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flag("log-pretty").Changed {
		cfg.Log.Pretty, _ = cmd.Flags().GetBool("log-pretty")
	}

	if cmd.Flag("dialect").Changed {
		cfg.Codec.Dialect, _ = cmd.Flags().GetString("dialect")
	}
	if cmd.Flag("strict").Changed {
		cfg.Codec.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flag("header").Changed {
		cfg.Codec.Header, _ = cmd.Flags().GetString("header")
	}

	if f := cmd.Flag("concurrency"); f != nil && f.Changed {
		cfg.Processor.Concurrency, _ = cmd.Flags().GetInt("concurrency")
	}
	if f := cmd.Flag("metrics-file"); f != nil && f.Changed {
		cfg.Metrics.Enabled = true
		cfg.Metrics.File, _ = cmd.Flags().GetString("metrics-file")
	}
}
