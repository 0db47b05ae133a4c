package config

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/Cyclone1070/devtoolbox/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const (
	jsonPath = "/home/user/.config/devtoolbox/config.json"
	yamlPath = "/home/user/.config/devtoolbox/config.yaml"
)

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.UI.TickIntervalMs)
	assert.Equal(t, 2, cfg.Transforms.JSONIndent)
	assert.Equal(t, 4, cfg.Transforms.SQLIndent)
	assert.True(t, cfg.Persistence.Enabled)
	assert.Equal(t, "/home/user/.config/devtoolbox/state.db", cfg.Persistence.DatabasePath)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	configJSON := `{
		"ui": {"sidebar_width": 40},
		"transforms": {"sql_uppercase": false}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{jsonPath: []byte(configJSON)},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	// Overridden
	assert.Equal(t, 40, cfg.UI.SidebarWidth)
	assert.False(t, cfg.Transforms.SQLUppercase)
	// Defaults preserved
	assert.Equal(t, 1000, cfg.UI.TickIntervalMs)
	assert.True(t, cfg.UI.HighlightOutput)
	assert.Equal(t, 1, cfg.Transforms.SQLLinesBetweenQueries)
	assert.Equal(t, "devtoolbox", cfg.Persistence.AppID)
}

func TestLoad_ExplicitZero_OverridesDefault(t *testing.T) {
	configJSON := `{"transforms": {"json_indent": 0}, "persistence": {"enabled": false}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{jsonPath: []byte(configJSON)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Transforms.JSONIndent)
	assert.False(t, cfg.Persistence.Enabled)
}

func TestLoad_YAMLFallback(t *testing.T) {
	configYAML := "ui:\n  glamour_style: light\nlog:\n  level: debug\n  file: /tmp/devtoolbox.log\n"
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{yamlPath: []byte(configYAML)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.GlamourStyle)
	assert.Equal(t, "/tmp/devtoolbox.log", cfg.Log.File)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, 2, cfg.Transforms.JSONIndent)
}

func TestLoad_JSONTakesPrecedenceOverYAML(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			jsonPath: []byte(`{"ui": {"sidebar_width": 20}}`),
			yamlPath: []byte("ui:\n  sidebar_width: 50\n"),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.UI.SidebarWidth)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/etc/devtoolbox.yml": []byte("persistence:\n  database_path: /var/lib/devtoolbox.db\n"),
		},
	}

	cfg, err := NewLoaderWithFS(fs).LoadFile("/etc/devtoolbox.yml")

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/devtoolbox.db", cfg.Persistence.DatabasePath)
}

func TestLoadFile_Missing_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user", Files: map[string][]byte{}}

	cfg, err := NewLoaderWithFS(fs).LoadFile("/nope.json")

	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, cfg)
}

func TestTransformOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transforms.JSONIndent = 4
	cfg.Transforms.SQLIndent = 2
	cfg.Transforms.SQLUppercase = false

	opts := cfg.TransformOptions()

	assert.Equal(t, "    ", opts.JSON.Indent)
	assert.True(t, opts.JSON.AllowComments)
	assert.Equal(t, "  ", opts.SQL.Indent)
	assert.False(t, opts.SQL.Uppercase)
	assert.Equal(t, 1, opts.SQL.LinesBetweenQueries)
}

func TestTransformOptions_DefaultsMatchTransformPackage(t *testing.T) {
	assert.Equal(t, transform.DefaultOptions(), DefaultConfig().TransformOptions())
}

// --- ERROR CASES ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{jsonPath: []byte(`{invalid json`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_MalformedYAML_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{yamlPath: []byte("ui: [unterminated")},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("no home directory"),
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_NegativeValues_Rejected(t *testing.T) {
	configJSON := `{"ui": {"tick_interval_ms": -5}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{jsonPath: []byte(configJSON)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation failed")
}

// --- EDGE CASES ---

func TestLoad_UnknownFields_Ignored(t *testing.T) {
	configJSON := `{
		"ui": {"sidebar_width": 25},
		"unknown_section": {"foo": "bar"}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{jsonPath: []byte(configJSON)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.UI.SidebarWidth)
}

func TestLoad_EmptyObject_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{jsonPath: []byte(`{}`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	want := DefaultConfig()
	want.Persistence.DatabasePath = "/home/user/.config/devtoolbox/state.db"
	assert.Equal(t, want, cfg)
}
