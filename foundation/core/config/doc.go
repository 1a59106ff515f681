// Package config loads textkit settings from TOML or YAML files.
//
// Package: config
// Title: Configuration Management for textkit
// Description: Typed settings for the textkit tools, loaded from TOML
//              (BurntSushi/toml) or YAML (gopkg.in/yaml.v3) with defaults,
//              environment overrides and validation. The encoding section
//              carries the editor-mode flag that switches ToShiftJIS between
//              passthrough and real conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-15 v0.2.0: Typed Settings replace the generic key/value store
//
// Example textkit.toml:
//
//	[encoding]
//	editor_mode = true
//
//	[log]
//	level = "debug"
//	format = "text"
//
//	[join]
//	separator = ", "
//
// Environment overrides (applied after the file):
//
//	TEXTKIT_EDITOR_MODE=true
//	TEXTKIT_LOG_LEVEL=warn
package config
