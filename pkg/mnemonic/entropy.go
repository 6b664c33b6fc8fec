package mnemonic

import "fmt"

// Entropy size rules, in bytes.
const (
	MinEntropySize  = 16
	MaxEntropySize  = 32
	EntropySizeStep = 4
)

// ValidateEntropyLength checks an entropy length in bytes.
func ValidateEntropyLength(n int) error {
	if n < MinEntropySize || n > MaxEntropySize || n%EntropySizeStep != 0 {
		return fmt.Errorf("%w: %d bytes, want %d-%d in steps of %d",
			ErrInvalidEntropy, n, MinEntropySize, MaxEntropySize, EntropySizeStep)
	}
	return nil
}

// ChecksumLength returns CS in bits for an entropy of n bytes (CS = ENT/32).
func ChecksumLength(n int) int {
	return n * 8 / 32
}

// WordCount returns the number of words a mnemonic for n bytes of entropy has.
func WordCount(n int) int {
	return (n*8 + ChecksumLength(n)) / 11
}

// EntropyLength returns the entropy size in bytes encoded by a mnemonic of
// the given word count.
func EntropyLength(words int) (int, error) {
	if words <= 0 || words%3 != 0 {
		return 0, fmt.Errorf("%w: %d words is not a positive multiple of 3", ErrInvalidMnemonic, words)
	}
	n := words / 3 * 4
	if err := ValidateEntropyLength(n); err != nil {
		return 0, err
	}
	return n, nil
}
