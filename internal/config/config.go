// Package config loads the command line configuration from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	iso8583 "github.com/insigmo/py8583"
)

const envPrefix = "ISO8583"

// Config holds the complete command line configuration
type Config struct {
	Codec     CodecConfig     `mapstructure:"codec"     yaml:"codec"`
	Processor ProcessorConfig `mapstructure:"processor" yaml:"processor"`
	Metrics   MetricsConfig   `mapstructure:"metrics"   yaml:"metrics"`
	Log       LogConfig       `mapstructure:"log"       yaml:"log"`
}

// CodecConfig selects the dialect and wire options
type CodecConfig struct {
	Dialect string `mapstructure:"dialect" yaml:"dialect" env:"CODEC_DIALECT"`
	Strict  bool   `mapstructure:"strict"  yaml:"strict"  env:"CODEC_STRICT"`
	Header  string `mapstructure:"header"  yaml:"header"  env:"CODEC_HEADER"`
}

// ProcessorConfig bounds batch decoding
type ProcessorConfig struct {
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency" env:"PROCESSOR_CONCURRENCY"`
}

// MetricsConfig controls the Prometheus text file written after a run
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" env:"METRICS_ENABLED"`
	File    string `mapstructure:"file"    yaml:"file"    env:"METRICS_FILE"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  env:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty" env:"LOG_PRETTY"`
}

// Load loads configuration from file and environment. An empty path skips
// the file and uses defaults plus ISO8583_* variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("codec.dialect", "1987-ascii")
	v.SetDefault("codec.strict", false)
	v.SetDefault("codec.header", "none")

	v.SetDefault("processor.concurrency", 4)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.file", "iso8583.prom")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Spec(); err != nil {
		return err
	}
	if _, err := c.HeaderType(); err != nil {
		return err
	}
	if c.Processor.Concurrency <= 0 {
		return errors.New("processor.concurrency must be positive")
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.File) == "" {
		return errors.New("metrics.file is required when metrics are enabled")
	}
	return nil
}

// Spec resolves the configured dialect.
func (c *Config) Spec() (*iso8583.Spec, error) {
	return iso8583.SpecByName(c.Codec.Dialect)
}

// HeaderType resolves the configured transport length prefix.
func (c *Config) HeaderType() (iso8583.HeaderType, error) {
	return iso8583.ParseHeaderType(c.Codec.Header)
}
