// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements Settings and the functions that parse, default,
//              override and validate them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-15 v0.2.0: Typed Settings for textkit

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/core/validation"
)

// Environment variables read by LoadFromEnv and ApplyEnv
const (
	EnvConfigPath = "TEXTKIT_CONFIG"
	EnvEditorMode = "TEXTKIT_EDITOR_MODE"
	EnvLogLevel   = "TEXTKIT_LOG_LEVEL"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Settings holds the complete textkit configuration
type Settings struct {
	Encoding EncodingSettings `toml:"encoding" yaml:"encoding"`
	Log      LogSettings      `toml:"log" yaml:"log"`
	Join     JoinSettings     `toml:"join" yaml:"join"`
}

// EncodingSettings controls legacy encoding conversion
type EncodingSettings struct {
	// EditorMode enables real Shift_JIS round-tripping. When false,
	// conversion is a passthrough, as outside the authoring editor.
	EditorMode bool `toml:"editor_mode" yaml:"editor_mode"`
}

// LogSettings controls the CLI logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// JoinSettings holds defaults for the join command
type JoinSettings struct {
	Separator string `toml:"separator" yaml:"separator"`
}

// Default returns the settings used when no file is present
func Default() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads settings from a file, detecting the format from its extension
func Load(filePath string) (*Settings, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads settings from a file in the given format
func LoadWithFormat(filePath string, format Format) (*Settings, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(os.ExpandEnv(filePath))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	settings, err := Parse(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config file").
			WithDetail("filePath", filePath)
	}
	return settings, nil
}

// Parse decodes settings from raw content, applies defaults and validates
func Parse(content []byte, format Format) (*Settings, error) {
	settings := Default()

	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		err = dec.Decode(settings)
		if err != nil && len(bytes.TrimSpace(content)) == 0 {
			err = nil
		}
	default:
		var meta toml.MetaData
		meta, err = toml.Decode(string(content), settings)
		if err == nil {
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown configuration key %q", undecoded[0].String())
			}
		}
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// ApplyEnv overrides settings from the process environment
func (s *Settings) ApplyEnv() error {
	return s.applyEnv(os.LookupEnv)
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	if raw, ok := lookup(EnvEditorMode); ok && strings.TrimSpace(raw) != "" {
		editorMode, err := cast.ToBoolE(strings.TrimSpace(raw))
		if err != nil {
			return mdwerror.Wrap(err, "invalid boolean in "+EnvEditorMode).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("value", raw)
		}
		s.Encoding.EditorMode = editorMode
	}
	if raw, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(raw) != "" {
		s.Log.Level = strings.TrimSpace(raw)
	}
	return s.Validate()
}

// Validate checks values that cannot be expressed by the file format
func (s *Settings) Validate() error {
	result := settingsValidator.Validate(s)
	if err := result.ToError(mdwerror.CodeInvalidConfig); err != nil {
		return mdwerror.Wrap(err, "invalid configuration").
			WithOperation("config.Validate")
	}
	return nil
}

var settingsValidator = validation.NewValidatorChain("settings").
	AddFunc(func(v interface{}) validation.ValidationResult {
		s := v.(*Settings)
		if _, err := log.ParseLevel(s.Log.Level); err != nil {
			return validation.NewValidationErrorWithField(validation.CodeFormat, "log.level", err.Error(), s.Log.Level)
		}
		return validation.NewValidationResult()
	}).
	AddFunc(func(v interface{}) validation.ValidationResult {
		s := v.(*Settings)
		if _, err := log.ParseFormat(s.Log.Format); err != nil {
			return validation.NewValidationErrorWithField(validation.CodeFormat, "log.format", err.Error(), s.Log.Format)
		}
		return validation.NewValidationResult()
	})

// LoggerConfig translates the log section into a logger configuration.
// Settings are validated on load, so parse errors cannot occur here.
func (s *Settings) LoggerConfig() log.Config {
	level, _ := log.ParseLevel(s.Log.Level)
	format, _ := log.ParseFormat(s.Log.Format)
	return log.Config{Level: level, Format: format, Name: "textkit"}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
