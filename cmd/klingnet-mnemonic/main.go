// klingnet-mnemonic converts between BIP-39 mnemonics and their entropy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"golang.org/x/term"
)

// passphraseEnv supplies the seed passphrase when stdin is not a terminal.
const passphraseEnv = "KLINGNET_MNEMONIC_PASSPHRASE"

// errInvalid signals a negative validation result (exit code 1, no message).
var errInvalid = errors.New("invalid")

// app carries everything a command needs. Tests build it directly.
type app struct {
	cfg    *config.Config
	codec  *mnemonic.Codec
	stdin  io.Reader
	stdout io.Writer

	// isTerminal reports whether stdin is interactive.
	isTerminal func() bool
	// readSecret prompts for and reads a line without echo.
	readSecret func(prompt string) ([]byte, error)
	// getenv looks up environment variables.
	getenv func(string) string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, flags, err := config.Load(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if flags.Help {
		config.PrintUsage(os.Stdout)
		return 0
	}
	if flags.Version {
		fmt.Printf("klingnet-mnemonic version %s\n", config.Version)
		return 0
	}
	if len(flags.Args) == 0 {
		config.PrintUsage(os.Stderr)
		return 1
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logging: %v\n", err)
		return 1
	}

	a, err := newApp(cfg, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	a.isTerminal = func() bool { return term.IsTerminal(int(syscall.Stdin)) }
	a.readSecret = readPassword
	a.getenv = os.Getenv

	if err := a.dispatch(flags.Args[0], flags.Args[1:]); err != nil {
		if !errors.Is(err, errInvalid) {
			log.CLI.Debug().Err(err).Str("command", flags.Args[0]).Msg("Command failed")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// newApp resolves the configured wordlist, installs it as the process
// default, and builds the codec.
func newApp(cfg *config.Config, stdin io.Reader, stdout io.Writer) (*app, error) {
	wl, err := wordlist.ByName(cfg.Language)
	if err != nil {
		return nil, err
	}
	mnemonic.SetDefaultWordlist(wl)
	log.Wordlist.Debug().Str("language", wl.Name()).Msg("Wordlist loaded")

	codec, err := mnemonic.New(wl, mnemonic.WithLogger(log.Codec))
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:        cfg,
		codec:      codec,
		stdin:      stdin,
		stdout:     stdout,
		isTerminal: func() bool { return false },
		readSecret: func(string) ([]byte, error) { return nil, fmt.Errorf("no terminal") },
		getenv:     func(string) string { return "" },
	}, nil
}

func (a *app) dispatch(cmd string, args []string) error {
	switch cmd {
	case "encode":
		return a.cmdEncode(args)
	case "decode":
		return a.cmdDecode(args)
	case "validate":
		return a.cmdValidate(args)
	case "seed":
		return a.cmdSeed(args)
	case "bits":
		return a.cmdBits(args)
	case "languages":
		return a.cmdLanguages()
	case "init":
		return a.cmdInit(args)
	default:
		return fmt.Errorf("unknown command %q (see --help)", cmd)
	}
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}
