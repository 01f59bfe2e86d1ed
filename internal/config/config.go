// Package config loads gef-cpt settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "GEFCPT"

// OutputFormats lists the accepted values for OutputFormat.
var OutputFormats = []string{"json", "yaml", "text"}

// Config holds all settings. Each field reads GEFCPT_<envconfig name>.
type Config struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text"`
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"json"`

	// Workers bounds concurrent parses in batch mode.
	Workers int `envconfig:"WORKERS" default:"4"`

	// MaxFileSize is the largest input file accepted, in bytes.
	MaxFileSize int64 `envconfig:"MAX_FILE_SIZE" default:"67108864"`
}

// Load reads the configuration from the environment. Callers apply their
// own overrides and then call Validate.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if !ValidOutputFormat(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (want one of %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.MaxFileSize)
	}
	return nil
}

// ValidOutputFormat reports whether f is a supported output format.
func ValidOutputFormat(f string) bool {
	for _, v := range OutputFormats {
		if f == v {
			return true
		}
	}
	return false
}
