package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Validate checks the configuration for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := wordlist.ByName(cfg.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	switch cfg.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q", FormatText, FormatJSON)
	}
	level := strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if !slices.Contains(log.Levels, level) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(log.Levels, ", "))
	}
	return nil
}
