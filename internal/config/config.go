package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all kata configuration.
type Config struct {
	// Data munging kata
	Munge MungeConfig `yaml:"munge"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// MungeConfig configures the data munging kata.
type MungeConfig struct {
	// File is the weather data path. It only ever comes from the --file flag.
	File string `yaml:"-"`
	Mode string `yaml:"mode"` // decimal, integer
}

// Environment variables that override file values.
const (
	EnvMungeMode = "KATA_MUNGE_MODE"
	EnvLogLevel  = "KATA_LOG_LEVEL"
	EnvLogFormat = "KATA_LOG_FORMAT"
)

var (
	// ValidModes lists the accepted temperature parse modes.
	ValidModes = []string{"decimal", "integer"}

	ErrInvalidMode = errors.New("invalid munge mode")
	ErrMissingFile = errors.New("missing --file path")
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Munge: MungeConfig{
			Mode: "decimal",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file. An empty path or a missing file
// yields the defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if mode := strings.TrimSpace(os.Getenv(EnvMungeMode)); mode != "" {
		c.Munge.Mode = mode
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Logging.Level = level
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		c.Logging.Format = format
	}
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	if err := c.Munge.validateMode(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate checks a munge run: mode plus a non-empty file path.
func (m *MungeConfig) Validate() error {
	if strings.TrimSpace(m.File) == "" {
		return ErrMissingFile
	}
	return m.validateMode()
}

func (m *MungeConfig) validateMode() error {
	if slices.Contains(ValidModes, strings.ToLower(strings.TrimSpace(m.Mode))) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidMode, m.Mode, ValidModes)
}
