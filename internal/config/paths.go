package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// expandHome resolves a leading "~/" against the user's home directory.
// Other paths are returned cleaned but otherwise unchanged.
func expandHome(fs FileSystem, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := fs.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand tilde: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
	}
	return filepath.Clean(path), nil
}

// expandPaths applies expandHome to every path-valued setting
func (l *Loader) expandPaths(cfg *Config) error {
	for _, p := range []*string{&cfg.Persistence.DatabasePath, &cfg.Log.File} {
		expanded, err := expandHome(l.fs, *p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
