// Package config loads converter settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/codegen"
	"har-to-k6/internal/logging"
)

// OnInvalid says what to do with an entry that fails validation.
type OnInvalid string

// Policies.
const (
	Abort OnInvalid = "abort"
	Skip  OnInvalid = "skip"
)

// Config holds converter settings. Zero Workers means one per CPU.
type Config struct {
	Output    string         `yaml:"output,omitempty"`
	Format    string         `yaml:"format,omitempty"`
	OnInvalid OnInvalid      `yaml:"on_invalid"`
	Workers   int            `yaml:"workers"`
	Sleep     float64        `yaml:"sleep"`
	Verify    bool           `yaml:"verify"`
	Options   map[string]any `yaml:"options,omitempty"`
	Log       Log            `yaml:"log"`
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Format:    string(archive.FormatAuto),
		OnInvalid: Abort,
		Sleep:     1,
		Log: Log{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// LoadFile loads and validates the YAML config at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if _, err := archive.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}

	if c.OnInvalid != Abort && c.OnInvalid != Skip {
		errs = append(errs, fmt.Errorf("on_invalid: must be %q or %q, got %q", Abort, Skip, c.OnInvalid))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers: must not be negative, got %d", c.Workers))
	}

	if c.Sleep < 0 || math.IsNaN(c.Sleep) || math.IsInf(c.Sleep, 0) {
		errs = append(errs, fmt.Errorf("sleep: must be a non-negative number, got %v", c.Sleep))
	}

	if c.Options != nil {
		if _, err := codegen.Value(c.Options); err != nil {
			errs = append(errs, fmt.Errorf("options: %w", err))
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}

	return errors.Join(errs...)
}

// Logging returns the logging configuration. c must be valid.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(c.Log.Level)
	cfg.Format, _ = logging.ParseFormat(c.Log.Format)

	return cfg
}

// Marshal serializes c to YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}
