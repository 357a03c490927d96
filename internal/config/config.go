package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the location of config.yaml
const EnvConfigPath = "CASCOLOR_CONFIG"

// LoadError reports a config file that exists but could not be used.
// The accompanying settings are always the defaults.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// GetCascolorDir returns the directory holding config and logs
func GetCascolorDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "casapps", "cascolor")
}

// GetLogsDir returns the debug log directory
func GetLogsDir() string {
	return filepath.Join(GetCascolorDir(), "logs")
}

// GetConfigPath returns the config file path, honoring CASCOLOR_CONFIG
func GetConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(GetCascolorDir(), "config.yaml")
}

// EnsureDirs creates the config and logs directories
func EnsureDirs() error {
	for _, dir := range []string{GetCascolorDir(), GetLogsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// LoadSettings reads the config file at GetConfigPath
func LoadSettings() (*Settings, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads settings from path. A missing file yields the defaults
// with no error. Fields absent from the file keep their default values.
// Any read, parse, or validation failure yields the full defaults together
// with a *LoadError so the caller can warn and carry on.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), &LoadError{Path: path, Err: err}
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), &LoadError{Path: path, Err: err}
	}
	if err := settings.validate(); err != nil {
		return DefaultSettings(), &LoadError{Path: path, Err: err}
	}
	return settings, nil
}

// SaveSettings writes settings to path while holding an exclusive lock on
// path + ".lock", so concurrent pickers never interleave their writes.
func SaveSettings(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// Store owns the loaded settings and persists every change immediately
type Store struct {
	mu       sync.Mutex
	path     string
	settings *Settings
}

// NewStore wraps settings loaded from path. A nil settings means defaults.
func NewStore(path string, settings *Settings) *Store {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Store{path: path, settings: settings}
}

// Settings returns a copy of the current settings
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *s.settings
	cp.ColorHistory = append([]string(nil), s.settings.ColorHistory...)
	return cp
}

func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.General.Theme
}

// SetTheme updates the theme in memory, then saves. The in-memory value
// changes even if the save fails.
func (s *Store) SetTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.General.Theme = t
	return SaveSettings(s.path, s.settings)
}

// Remember records hex at the front of the color history and saves
func (s *Store) Remember(hex string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.remember(hex)
	return SaveSettings(s.path, s.settings)
}
