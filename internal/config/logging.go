package config

import (
	"errors"
	"fmt"
	"slices"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

var (
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"json", "console"}

	ErrInvalidLogging = errors.New("invalid logging config")
)

// Validate checks level and format against the known values.
func (c *LoggingConfig) Validate() error {
	if !slices.Contains(ValidLogLevels, c.Level) {
		return fmt.Errorf("%w: level %q (valid: %v)", ErrInvalidLogging, c.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Format) {
		return fmt.Errorf("%w: format %q (valid: %v)", ErrInvalidLogging, c.Format, ValidLogFormats)
	}
	return nil
}
