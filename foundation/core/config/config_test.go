// File: config_test.go
// Title: Configuration Tests
// Description: Tests for parsing, defaults, environment overrides,
//              validation and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.False(t, s.Encoding.EditorMode)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, "text", s.Log.Format)
	assert.Empty(t, s.Join.Separator)
	assert.NoError(t, s.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.toml", `
[encoding]
editor_mode = true

[log]
level = "debug"

[join]
separator = " | "
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.Encoding.EditorMode)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "text", s.Log.Format, "unset keys keep defaults")
	assert.Equal(t, " | ", s.Join.Separator)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.yml", `
encoding:
  editor_mode: true
log:
  format: json
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.Encoding.EditorMode)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "info", s.Log.Level)
}

func TestParseEmptyYAML(t *testing.T) {
	s, err := Parse([]byte("  \n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"empty path", "  ", mdwerror.CodeInvalidConfig},
		{"missing file", filepath.Join(dir, "nope.toml"), mdwerror.CodeConfigError},
		{"bad toml", writeFile(t, dir, "bad.toml", "[encoding\n"), mdwerror.CodeInvalidConfig},
		{"unknown toml key", writeFile(t, dir, "extra.toml", "[encoding]\nshift = 1\n"), mdwerror.CodeInvalidConfig},
		{"unknown yaml key", writeFile(t, dir, "extra.yaml", "logging:\n  level: x\n"), mdwerror.CodeInvalidConfig},
		{"bad level", writeFile(t, dir, "level.toml", "[log]\nlevel = \"loud\"\n"), mdwerror.CodeInvalidConfig},
		{"bad format", writeFile(t, dir, "format.yaml", "log:\n  format: xml\n"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		s := Default()
		err := s.applyEnv(envMap(map[string]string{
			EnvEditorMode: "true",
			EnvLogLevel:   "warn",
		}))
		require.NoError(t, err)
		assert.True(t, s.Encoding.EditorMode)
		assert.Equal(t, "warn", s.Log.Level)
	})

	t.Run("numeric bool", func(t *testing.T) {
		s := &Settings{Encoding: EncodingSettings{EditorMode: true}, Log: LogSettings{Level: "info"}}
		require.NoError(t, s.applyEnv(envMap(map[string]string{EnvEditorMode: "0"})))
		assert.False(t, s.Encoding.EditorMode)
	})

	t.Run("blank values ignored", func(t *testing.T) {
		s := Default()
		require.NoError(t, s.applyEnv(envMap(map[string]string{EnvEditorMode: " ", EnvLogLevel: ""})))
		assert.False(t, s.Encoding.EditorMode)
		assert.Equal(t, "info", s.Log.Level)
	})

	t.Run("invalid bool", func(t *testing.T) {
		s := Default()
		err := s.applyEnv(envMap(map[string]string{EnvEditorMode: "sometimes"}))
		require.Error(t, err)
		assert.Equal(t, mdwerror.CodeInvalidConfig, mdwerror.GetCode(err))
	})

	t.Run("invalid level", func(t *testing.T) {
		s := Default()
		err := s.applyEnv(envMap(map[string]string{EnvLogLevel: "chatty"}))
		assert.Equal(t, mdwerror.CodeInvalidConfig, mdwerror.GetCode(err))
	})
}

func TestLoggerConfig(t *testing.T) {
	s := &Settings{Log: LogSettings{Level: "debug", Format: "json"}}
	cfg := s.LoggerConfig()
	assert.Equal(t, log.LevelDebug, cfg.Level)
	assert.Equal(t, log.FormatJSON, cfg.Format)
	assert.Equal(t, "textkit", cfg.Name)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "configs")
	require.NoError(t, os.MkdirAll(second, 0o755))

	opts := DiscoveryOptions{
		Paths:      []string{dir, second},
		Filenames:  []string{"textkit"},
		Extensions: []string{".toml", ".yaml"},
	}
	assert.Empty(t, Discover(opts))

	yamlPath := writeFile(t, second, "textkit.yaml", "log:\n  level: debug\n")
	assert.Equal(t, yamlPath, Discover(opts))

	tomlPath := writeFile(t, dir, "textkit.toml", "")
	assert.Equal(t, tomlPath, Discover(opts))
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.toml", "[encoding]\neditor_mode = true\n")

	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvEditorMode, "")

	s, err := LoadFromEnv("")
	require.NoError(t, err)
	assert.True(t, s.Encoding.EditorMode)
	assert.Equal(t, "error", s.Log.Level)

	_, err = LoadFromEnv(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidateReportsEveryField(t *testing.T) {
	s := &Settings{Log: LogSettings{Level: "loud", Format: "xml"}}
	err := s.Validate()
	require.Error(t, err)
	assert.Equal(t, mdwerror.CodeInvalidConfig, mdwerror.GetCode(err))

	var mdwErr *mdwerror.Error
	require.ErrorAs(t, err, &mdwErr)
	assert.Equal(t, "log.level", mdwErr.Details()["field"])
	assert.Equal(t, 2, mdwErr.Details()["total_errors"])
	assert.Equal(t, "config.Validate", mdwErr.Operation())
}
