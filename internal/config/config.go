// Package config holds runtime configuration for the see CLI: defaults,
// validated enum fields, and the knobs shared by the one-shot and REPL
// modes. The library itself takes no configuration; everything here is
// presentation-side.
package config

import (
	"errors"
)

// --- Enum types for validated string fields ---

// InputFormat selects how a literal is decoded into a value.
type InputFormat string

const (
	FormatAuto InputFormat = "auto" // Try JSON, fall back to YAML (default).
	FormatJSON InputFormat = "json" // JSON only.
	FormatYAML InputFormat = "yaml" // YAML only.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all CLI settings. It is populated by [DefaultConfig] and
// then mutated by flag binding before being passed (by pointer) to the
// code that needs it.
type Config struct {
	Format  InputFormat // Default: "auto".
	Pattern string      // Shell-style token filter; empty means off.
	Regexp  string      // Regular-expression token filter; empty means off.
	Width   int         // Display width; 0 means detect from the terminal.

	ColorMode ColorMode // Default: "auto".
	Verbose   bool
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before flag binding overrides individual fields.
func DefaultConfig() Config {
	return Config{
		Format:    FormatAuto,
		ColorMode: ColorAuto,
	}
}

// Validate checks that the enum fields hold valid values and that the
// width override is sane.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatJSON, FormatYAML:
		// valid
	default:
		return errors.New("invalid format (use 'auto', 'json' or 'yaml')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Width < 0 {
		return errors.New("width must be zero (detect) or positive")
	}
	return nil
}
