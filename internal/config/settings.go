// Package config holds the client settings and where they are read from.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Settings represents the client configuration.
type Settings struct {
	// Strict rejects tokens outside open vocabularies instead of warning.
	Strict bool   `yaml:"strict" toml:"strict" json:"strict"`
	Format string `yaml:"format" toml:"format" json:"format"`
	Color  bool   `yaml:"color" toml:"color" json:"color"`
	LogDir string `yaml:"log_dir,omitempty" toml:"log_dir,omitempty" json:"log_dir,omitempty"`
}

// DefaultSettings returns lenient decoding with colored text output and no
// log file.
func DefaultSettings() Settings {
	return Settings{
		Strict: false,
		Format: FormatText,
		Color:  true,
	}
}

// Validate checks the settings for values the CLI cannot act on.
func (s Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid format %q: must be %q or %q", s.Format, FormatText, FormatJSON)
}

// Environment variables that override file settings.
const (
	EnvStrict  = "ASCLIENT_STRICT"
	EnvFormat  = "ASCLIENT_FORMAT"
	EnvLogDir  = "ASCLIENT_LOG_DIR"
	EnvNoColor = "NO_COLOR"
)

// LoadEnv reads .env style files into the process environment. Missing files
// are skipped; variables already set are kept.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides s with any settings present in the environment.
func ApplyEnv(s Settings) (Settings, error) {
	if raw := strings.TrimSpace(os.Getenv(EnvStrict)); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvStrict, err)
		}
		s.Strict = strict
	}
	if raw := strings.TrimSpace(os.Getenv(EnvFormat)); raw != "" {
		s.Format = strings.ToLower(raw)
	}
	if raw := strings.TrimSpace(os.Getenv(EnvLogDir)); raw != "" {
		s.LogDir = raw
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		s.Color = false
	}
	return s, s.Validate()
}
