// Package config provides the configuration system for the matforge CLI.
// Settings come from a YAML file, MATFORGE_-prefixed environment variables,
// and built-in defaults, merged in that order of precedence by viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is the minimum level emitted: debug, info, warn or error.
	Level string `yaml:"level" mapstructure:"level"`
	// Encoding selects the zap encoder, json or console.
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
	// Development enables development-mode stack traces and colors.
	Development bool `yaml:"development" mapstructure:"development"`
}

// OutputConfig controls how inspect and convert render their results.
type OutputConfig struct {
	// Format is the default output format when a destination extension
	// does not decide it: json, yaml or matbin.
	Format string `yaml:"format" mapstructure:"format"`
	// Pretty enables indented text output.
	Pretty bool `yaml:"pretty" mapstructure:"pretty"`
}

// CompressConfig controls binary container compression.
type CompressConfig struct {
	// Algorithm is one of none, gzip, snappy, lz4, zstd, s2.
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"`
	// Level is the compression level from 1 (fastest) to 9 (best).
	Level int `yaml:"level" mapstructure:"level"`
}

// Config is the root CLI configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Compress CompressConfig `yaml:"compress" mapstructure:"compress"`
}

// Default returns the built-in configuration used when no file or
// environment override is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
		Compress: CompressConfig{
			Algorithm: "zstd",
			Level:     5,
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.encoding", def.Log.Encoding)
	v.SetDefault("log.development", def.Log.Development)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.pretty", def.Output.Pretty)
	v.SetDefault("compress.algorithm", def.Compress.Algorithm)
	v.SetDefault("compress.level", def.Compress.Level)
}

// Load reads the configuration. When path is non-empty that exact file is
// required; otherwise matforge.yaml is searched in the current directory
// and $HOME/.config/matforge, and its absence is not an error. Environment
// variables like MATFORGE_LOG_LEVEL override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MATFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("matforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "matforge"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("config: invalid log encoding %q", c.Log.Encoding)
	}
	switch c.Output.Format {
	case "json", "yaml", "matbin":
	default:
		return fmt.Errorf("config: invalid output format %q", c.Output.Format)
	}
	switch c.Compress.Algorithm {
	case "none", "gzip", "snappy", "lz4", "zstd", "s2":
	default:
		return fmt.Errorf("config: invalid compression algorithm %q", c.Compress.Algorithm)
	}
	if c.Compress.Level < 1 || c.Compress.Level > 9 {
		return fmt.Errorf("config: compression level %d outside 1..9", c.Compress.Level)
	}
	return nil
}

// Save writes the configuration as canonical YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
