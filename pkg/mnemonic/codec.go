// Package mnemonic implements the BIP-39 mnemonic codec: entropy to words and
// back, with a SHA-256 checksum that catches transcription errors.
//
// A Codec is bound to one wordlist and is safe for concurrent use. The
// package-level functions take the wordlist explicitly; a nil wordlist falls
// back to the process default set with SetDefaultWordlist (English unless
// changed).
package mnemonic

import (
	"sync/atomic"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"github.com/rs/zerolog"
)

// Codec converts between entropy and mnemonics for a single wordlist.
type Codec struct {
	wl     *wordlist.Wordlist
	digest Digest
	log    zerolog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithDigest replaces the checksum digest. Tests use it to stub SHA-256.
func WithDigest(d Digest) Option {
	return func(c *Codec) {
		if d != nil {
			c.digest = d
		}
	}
}

// WithLogger sets the logger used for rejected mnemonics. Secret material
// (entropy, words) is never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Codec) {
		c.log = l
	}
}

// New creates a codec bound to wl.
func New(wl *wordlist.Wordlist, opts ...Option) (*Codec, error) {
	if wl == nil {
		return nil, ErrWordlistRequired
	}
	c := &Codec{
		wl:     wl,
		digest: SHA256Digest,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Wordlist returns the wordlist the codec is bound to.
func (c *Codec) Wordlist() *wordlist.Wordlist {
	return c.wl
}

var defaultWordlist atomic.Pointer[wordlist.Wordlist]

func init() {
	defaultWordlist.Store(wordlist.Default())
}

// SetDefaultWordlist replaces the process-wide default wordlist. Passing nil
// clears it, after which calls without a wordlist fail with ErrWordlistRequired.
func SetDefaultWordlist(wl *wordlist.Wordlist) {
	defaultWordlist.Store(wl)
}

// DefaultWordlist returns the process-wide default wordlist, or nil.
func DefaultWordlist() *wordlist.Wordlist {
	return defaultWordlist.Load()
}

func codecFor(wl *wordlist.Wordlist) (*Codec, error) {
	if wl == nil {
		wl = DefaultWordlist()
	}
	return New(wl)
}

// EntropyToMnemonic encodes entropy with wl, or the default wordlist if wl is nil.
func EntropyToMnemonic(entropy []byte, wl *wordlist.Wordlist) (string, error) {
	c, err := codecFor(wl)
	if err != nil {
		return "", err
	}
	return c.EntropyToMnemonic(entropy)
}

// MnemonicToEntropy decodes a mnemonic with wl, or the default wordlist if wl is nil.
func MnemonicToEntropy(mnemonic string, wl *wordlist.Wordlist) ([]byte, error) {
	c, err := codecFor(wl)
	if err != nil {
		return nil, err
	}
	return c.MnemonicToEntropy(mnemonic)
}

// ValidateMnemonic reports whether mnemonic decodes cleanly. It never fails;
// a missing wordlist is reported as false.
func ValidateMnemonic(mnemonic string, wl *wordlist.Wordlist) bool {
	c, err := codecFor(wl)
	if err != nil {
		return false
	}
	return c.ValidateMnemonic(mnemonic)
}
