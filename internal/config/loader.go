package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "devtoolbox"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// ConfigFileYAML is read when ConfigFile does not exist
	ConfigFileYAML = "config.yaml"
	// StateFile is the default state database name
	StateFile = "state.db"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads ~/.config/devtoolbox/config.json (or config.yaml when the JSON
// file is absent) and merges it with defaults. Dotfile values override
// defaults. Returns default config if no dotfile exists.
// Returns error only for parse errors, permission issues, or validation failures.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults if can't get home dir
	}
	dir := filepath.Join(homeDir, ".config", ConfigDir)
	cfg.Persistence.DatabasePath = filepath.Join(dir, StateFile)

	for _, name := range []string{ConfigFile, ConfigFileYAML} {
		data, err := l.fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err // Return error for permission issues
		}
		return l.apply(cfg, name, data)
	}
	return cfg, nil
}

// LoadFile reads the config at path, which must exist. The format follows
// the extension: .yaml/.yml for YAML, anything else JSON.
func (l *Loader) LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if homeDir, err := l.fs.UserHomeDir(); err == nil {
		cfg.Persistence.DatabasePath = filepath.Join(homeDir, ".config", ConfigDir, StateFile)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return l.apply(cfg, path, data)
}

// apply decodes data directly over cfg so present keys overwrite defaults
// (even if zero) while missing keys leave the defaults untouched.
func (l *Loader) apply(cfg *Config, name string, data []byte) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", name, err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}

	if err := l.expandPaths(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
