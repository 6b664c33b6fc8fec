package config

import "github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Language: wordlist.English,
		Output: OutputConfig{
			Format: FormatText,
			Bits:   false,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
