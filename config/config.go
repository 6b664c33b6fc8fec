// Package config handles configuration for the mnemonic tool.
//
// Settings are resolved in order: built-in defaults, the config file,
// then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config holds the tool's runtime configuration.
type Config struct {
	// Wordlist language used when a command does not name one.
	Language string `conf:"language"`

	// Output
	Output OutputConfig

	// Logging
	Log LogConfig
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format OutputFormat `conf:"output.format"`
	Bits   bool         `conf:"output.bits"` // Include the bit layout when encoding
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet
//	macOS:   ~/Library/Application Support/Klingnet
//	Windows: %APPDATA%\Klingnet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Klingnet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Klingnet")
		}
		return filepath.Join(home, "AppData", "Roaming", "Klingnet")
	default:
		return filepath.Join(home, ".klingnet")
	}
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), "mnemonic.conf")
}
