package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mnemonic.conf")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConf(t, `# comment
language = "japanese"

output.format = json
output.bits = yes
log.level = 'debug'
`)
	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	cfg := Default()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}
	if cfg.Language != "japanese" {
		t.Errorf("Language = %q, want japanese", cfg.Language)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if !cfg.Output.Bits {
		t.Error("Output.Bits = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestLoadFile_BadLine(t *testing.T) {
	path := writeConf(t, "language english\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject lines without '='")
	}
}

func TestApplyFileConfig_UnknownKey(t *testing.T) {
	err := ApplyFileConfig(Default(), map[string]string{"p2p.port": "30303"})
	if err == nil {
		t.Error("ApplyFileConfig should reject unknown keys")
	}
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{"-l", "french", "--json", "--log-level=debug", "encode", "00ff"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if f.Language != "french" {
		t.Errorf("Language = %q, want french", f.Language)
	}
	if !f.JSON || !f.SetJSON {
		t.Error("--json should be set")
	}
	if f.SetBits {
		t.Error("--bits was not passed")
	}
	if len(f.Args) != 2 || f.Args[0] != "encode" || f.Args[1] != "00ff" {
		t.Errorf("Args = %v, want [encode 00ff]", f.Args)
	}

	cfg := Default()
	ApplyFlags(cfg, f)
	if cfg.Language != "french" || cfg.Output.Format != FormatJSON || cfg.Log.Level != "debug" {
		t.Errorf("ApplyFlags result = %+v", cfg)
	}
}

func TestParseFlags_ExplicitFalse(t *testing.T) {
	f, err := ParseFlags([]string{"--json=false", "--bits=false"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	cfg := Default()
	cfg.Output.Format = FormatJSON
	cfg.Output.Bits = true
	ApplyFlags(cfg, f)
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Output.Bits {
		t.Error("--bits=false should override the file setting")
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	if _, err := ParseFlags([]string{"--rpc"}, io.Discard); err == nil {
		t.Error("ParseFlags should reject unknown flags")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"korean", func(c *Config) { c.Language = "korean" }, false},
		{"unknown language", func(c *Config) { c.Language = "klingon" }, true},
		{"empty language", func(c *Config) { c.Language = "" }, true},
		{"bad format", func(c *Config) { c.Output.Format = "yaml" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"upper-case log level", func(c *Config) { c.Log.Level = "WARN" }, false},
		{"disabled log level", func(c *Config) { c.Log.Level = "disabled" }, false},
		{"off log level", func(c *Config) { c.Log.Level = " Off " }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConf(t, "language = spanish\noutput.format = json\n")

	cfg, flags, err := Load([]string{"-c", path, "--json=false", "decode"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Language != "spanish" {
		t.Errorf("Language = %q, want spanish from file", cfg.Language)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %q, want text from flag", cfg.Output.Format)
	}
	if len(flags.Args) != 1 || flags.Args[0] != "decode" {
		t.Errorf("Args = %v, want [decode]", flags.Args)
	}
}

func TestLoad_InvalidLanguage(t *testing.T) {
	path := writeConf(t, "")
	if _, _, err := Load([]string{"-c", path, "-l", "klingon"}); err == nil {
		t.Error("Load should reject an unknown language")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mnemonic.conf")
	if err := WriteDefaultConfig(path); err != nil {
		t.Fatalf("WriteDefaultConfig() error: %v", err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	cfg := Default()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config file does not validate: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("default file = %+v, want %+v", cfg, Default())
	}

	if err := WriteDefaultConfig(path); err == nil {
		t.Error("WriteDefaultConfig should not overwrite an existing file")
	}
}
