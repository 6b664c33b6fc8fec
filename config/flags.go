package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is the tool version printed by --version.
const Version = "0.1.0"

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	Config   string
	Language string

	// Output
	JSON bool
	Bits bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args (subcommand and its arguments)
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetJSON    bool
	SetBits    bool
	SetLogJSON bool
}

// ParseFlags parses global command-line flags. Parsing stops at the first
// non-flag argument, which is the subcommand.
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-mnemonic", flag.ContinueOnError)
	fs.SetOutput(output)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Core
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")
	fs.StringVar(&f.Language, "language", "", "Wordlist language")
	fs.StringVar(&f.Language, "l", "", "Wordlist language (shorthand)")

	// Output
	fs.BoolVar(&f.JSON, "json", false, "Print results as JSON")
	fs.BoolVar(&f.Bits, "bits", false, "Include the bit layout when encoding")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = func() {
		PrintUsage(output)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetJSON = isFlagSet(fs, "json")
	f.SetBits = isFlagSet(fs, "bits")
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.Language != "" {
		cfg.Language = f.Language
	}

	// Output
	if f.SetJSON {
		if f.JSON {
			cfg.Output.Format = FormatJSON
		} else {
			cfg.Output.Format = FormatText
		}
	}
	if f.SetBits {
		cfg.Output.Bits = f.Bits
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the help text.
func PrintUsage(w io.Writer) {
	usage := `Klingnet Mnemonic - BIP-39 mnemonic encoder/decoder

Usage:
  klingnet-mnemonic [options] <command> [args]

Commands:
  encode <hex>          Encode 16-32 bytes of hex entropy as a mnemonic
  decode [mnemonic]     Decode a mnemonic back to hex entropy
  validate [mnemonic]   Check a mnemonic; exits 1 when invalid
  seed [mnemonic]       Derive the BIP-39 seed and BIP-32 master xpub
  bits <hex>            Show how entropy and checksum bits map to words
  languages             List bundled wordlists
  init                  Write a default config file

  A missing [mnemonic] argument is read from stdin (hidden on a terminal).

Options:
  --help, -h        Show this help message
  --version, -v     Show version information
  --config, -c      Config file path (default: ~/.klingnet/mnemonic.conf)
  --language, -l    Wordlist language (default: english)
  --json            Print results as JSON
  --bits            Include the bit layout when encoding

Logging Options:
  --log-level       Log level: debug, info, warn, error, off (default: warn)
  --log-file        Log file path (default: stderr)
  --log-json        Output logs as JSON

Examples:
  klingnet-mnemonic encode 00000000000000000000000000000000
  klingnet-mnemonic -l japanese encode 7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f
  echo "abandon ... about" | klingnet-mnemonic validate
`
	fmt.Fprint(w, usage)
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Config file (missing file is fine)
// 3. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()

	configPath := flags.Config
	if configPath == "" {
		configPath = DefaultConfigFile()
	}
	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, flags)
	cfg.Language = strings.TrimSpace(cfg.Language)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}
