// Package config provides configuration management for the projector CLI.
//
// Values are layered with koanf: defaults < projector.yaml < PROJECTOR_*
// environment variables < command-line flags.
package config

import (
	"fmt"
	"log/slog"

	"projector/projection"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Default values.
const (
	DefaultOutput = OutputJSON
	DefaultMode   = "pass-through"
)

// Config holds the CLI configuration.
type Config struct {
	// Profiles is the path of the profiles YAML file.
	Profiles string `koanf:"profiles"`
	// Output is the result format: json or yaml.
	Output string `koanf:"output"`
	// Mode is the projection mode for a missing path list: pass-through or reduce.
	Mode string `koanf:"mode"`
	// Strict rejects malformed paths instead of resolving them as absent.
	Strict bool `koanf:"strict"`
	// NormalizedNames lets "first_name" find FirstName.
	NormalizedNames bool `koanf:"normalized_names"`
	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output, OutputJSON, OutputYAML)
	}

	if _, err := projection.ParseMode(c.Mode); err != nil {
		return err
	}

	return nil
}

// ProjectorOptions turns the configuration into projection options.
func (c *Config) ProjectorOptions(logger *slog.Logger) ([]projection.Option, error) {
	mode, err := projection.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	return []projection.Option{
		projection.WithMode(mode),
		projection.WithStrictPaths(c.Strict),
		projection.WithNormalizedNames(c.NormalizedNames),
		projection.WithLogger(logger),
	}, nil
}
