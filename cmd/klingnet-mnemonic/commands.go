package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// encodeResult is the JSON form of encode output.
type encodeResult struct {
	Language    string           `json:"language"`
	Words       int              `json:"words"`
	Mnemonic    string           `json:"mnemonic"`
	Fingerprint string           `json:"fingerprint"`
	Layout      *mnemonic.Layout `json:"layout,omitempty"`
}

type decodeResult struct {
	Language       string     `json:"language"`
	Entropy        string     `json:"entropy"`
	Bits           int        `json:"bits"`
	Fingerprint    string     `json:"fingerprint"`
	ChecksumDigest types.Hash `json:"checksum_digest"`
}

type validateResult struct {
	Language string `json:"language"`
	Valid    bool   `json:"valid"`
}

type seedResult struct {
	Seed              string `json:"seed"`
	MasterFingerprint string `json:"master_fingerprint"`
	MasterXPub        string `json:"master_xpub"`
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output.Format == config.FormatJSON
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) cmdEncode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: klingnet-mnemonic encode <hex entropy>")
	}
	entropy, err := parseEntropy(args[0])
	if err != nil {
		return err
	}

	phrase, err := a.codec.EntropyToMnemonic(entropy)
	if err != nil {
		return err
	}
	log.CLI.Debug().Int("entropy_bytes", len(entropy)).Msg("Encoded entropy")

	var layout *mnemonic.Layout
	if a.cfg.Output.Bits {
		if layout, err = a.codec.Layout(entropy); err != nil {
			return err
		}
	}

	if a.jsonOutput() {
		return a.printJSON(encodeResult{
			Language:    a.codec.Wordlist().Name(),
			Words:       mnemonic.WordCount(len(entropy)),
			Mnemonic:    phrase,
			Fingerprint: crypto.Fingerprint(entropy),
			Layout:      layout,
		})
	}
	fmt.Fprintln(a.stdout, phrase)
	if layout != nil {
		a.printLayout(layout)
	}
	return nil
}

func (a *app) cmdDecode(args []string) error {
	phrase, err := a.readMnemonic(args)
	if err != nil {
		return err
	}
	entropy, err := a.codec.MnemonicToEntropy(phrase)
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return a.printJSON(decodeResult{
			Language:       a.codec.Wordlist().Name(),
			Entropy:        hex.EncodeToString(entropy),
			Bits:           len(entropy) * 8,
			Fingerprint:    crypto.Fingerprint(entropy),
			ChecksumDigest: a.codec.ChecksumDigest(entropy),
		})
	}
	fmt.Fprintln(a.stdout, hex.EncodeToString(entropy))
	return nil
}

func (a *app) cmdValidate(args []string) error {
	phrase, err := a.readMnemonic(args)
	if err != nil {
		return err
	}
	valid := a.codec.ValidateMnemonic(phrase)

	if a.jsonOutput() {
		if err := a.printJSON(validateResult{Language: a.codec.Wordlist().Name(), Valid: valid}); err != nil {
			return err
		}
	} else if valid {
		fmt.Fprintln(a.stdout, "valid")
	} else {
		fmt.Fprintln(a.stdout, "invalid")
	}
	if !valid {
		return errInvalid
	}
	return nil
}

func (a *app) cmdSeed(args []string) error {
	phrase, err := a.readMnemonic(args)
	if err != nil {
		return err
	}
	passphrase, err := a.readPassphrase()
	if err != nil {
		return err
	}

	seed, err := wallet.SeedFromMnemonic(phrase, passphrase, a.codec.Wordlist())
	if err != nil {
		return err
	}
	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		return err
	}
	fp, err := master.Fingerprint()
	if err != nil {
		return err
	}

	res := seedResult{
		Seed:              hex.EncodeToString(seed),
		MasterFingerprint: fp,
		MasterXPub:        master.ExtendedPublicKey(),
	}
	if a.jsonOutput() {
		return a.printJSON(res)
	}
	fmt.Fprintf(a.stdout, "Seed:               %s\n", res.Seed)
	fmt.Fprintf(a.stdout, "Master fingerprint: %s\n", res.MasterFingerprint)
	fmt.Fprintf(a.stdout, "Master xpub:        %s\n", res.MasterXPub)
	return nil
}

func (a *app) cmdBits(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: klingnet-mnemonic bits <hex entropy>")
	}
	entropy, err := parseEntropy(args[0])
	if err != nil {
		return err
	}
	layout, err := a.codec.Layout(entropy)
	if err != nil {
		return err
	}
	if a.jsonOutput() {
		return a.printJSON(layout)
	}
	a.printLayout(layout)
	return nil
}

func (a *app) printLayout(l *mnemonic.Layout) {
	fmt.Fprintf(a.stdout, "Entropy bits:  %s\n", l.EntropyBits)
	fmt.Fprintf(a.stdout, "Checksum bits: %s\n", l.ChecksumBits)
	for i, g := range l.Groups {
		fmt.Fprintf(a.stdout, "  %2d  %s  %4d  %s\n", i+1, g, l.Indices[i], l.Words[i])
	}
}

func (a *app) cmdLanguages() error {
	langs := wordlist.Languages()
	if a.jsonOutput() {
		return a.printJSON(langs)
	}
	for _, name := range langs {
		marker := " "
		if name == a.codec.Wordlist().Name() {
			marker = "*"
		}
		fmt.Fprintf(a.stdout, "%s %s\n", marker, name)
	}
	return nil
}

func (a *app) cmdInit(args []string) error {
	path := config.DefaultConfigFile()
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(a.stdout, "Wrote %s\n", path)
	return nil
}

// parseEntropy decodes hex entropy, tolerating a 0x prefix and whitespace.
func parseEntropy(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	entropy, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("entropy must be hex: %w", err)
	}
	return entropy, nil
}

// readMnemonic returns the mnemonic from args, or reads it from stdin.
// On a terminal the input is not echoed.
func (a *app) readMnemonic(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if a.isTerminal() {
		b, err := a.readSecret("Mnemonic: ")
		if err != nil {
			return "", fmt.Errorf("read mnemonic: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(bufio.NewReader(a.stdin))
	if err != nil {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	return string(b), nil
}

// readPassphrase prompts on a terminal, otherwise falls back to the
// environment. An empty passphrase is valid.
func (a *app) readPassphrase() (string, error) {
	if a.isTerminal() {
		b, err := a.readSecret("Passphrase (empty for none): ")
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		return string(b), nil
	}
	return a.getenv(passphraseEnv), nil
}
