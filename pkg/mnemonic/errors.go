package mnemonic

import "errors"

// Codec errors. Every error returned by this package wraps exactly one of
// these, so callers can match with errors.Is.
var (
	// ErrWordlistRequired is returned when no wordlist was given and no
	// default is configured.
	ErrWordlistRequired = errors.New("a wordlist is required but a default could not be found")

	// ErrInvalidMnemonic is returned when the word count is not a multiple
	// of 3 or a word is not in the wordlist.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidEntropy is returned when entropy is shorter than 16 bytes,
	// longer than 32 bytes, or not a multiple of 4 bytes.
	ErrInvalidEntropy = errors.New("invalid entropy")

	// ErrInvalidChecksum is returned when the checksum embedded in a
	// mnemonic does not match its entropy.
	ErrInvalidChecksum = errors.New("invalid mnemonic checksum")
)
