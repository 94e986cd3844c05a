package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Store handles persistence of settings to a YAML or TOML file, chosen by
// the file extension.
type Store struct {
	path string
}

// NewStore creates a new settings store.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) isTOML() bool {
	return strings.EqualFold(filepath.Ext(s.path), ".toml")
}

// Load reads settings from the file. A missing file yields the defaults, and
// keys absent from the file keep their default value.
func (s *Store) Load() (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, err
	}

	if s.isTOML() {
		err = toml.Unmarshal(data, &settings)
	} else {
		err = yaml.Unmarshal(data, &settings)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	if settings.Format == "" {
		settings.Format = DefaultSettings().Format
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return settings, nil
}

// Save writes settings to the file.
func (s *Store) Save(settings Settings) error {
	var (
		data []byte
		err  error
	)
	if s.isTOML() {
		data, err = toml.Marshal(settings)
	} else {
		data, err = yaml.Marshal(settings)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(s.path, data, 0644)
}

// DefaultPath returns the settings file under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "asclient.yaml"
	}
	return filepath.Join(dir, "asclient", "config.yaml")
}
