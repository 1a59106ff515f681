// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the textkit configuration file across the usual
//              locations and applies environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-10-15 v0.2.0: textkit search paths, defaults when nothing is found

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions returns the textkit search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "textkit"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"textkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover returns the path of the first existing configuration file, or ""
func Discover(options DiscoveryOptions) string {
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate
				}
			}
		}
	}
	return ""
}

// LoadFromEnv resolves the configuration the way the CLI does: an explicit
// path wins, then TEXTKIT_CONFIG, then discovery. Without any file the
// defaults are used. Environment overrides are applied last.
func LoadFromEnv(explicitPath string) (*Settings, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = Discover(DefaultDiscoveryOptions())
	}

	settings := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	return settings, nil
}
