package mnemonic

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"golang.org/x/text/unicode/norm"
)

// SplitWords normalizes a mnemonic to NFKD and splits it on runs of
// whitespace. The ideographic space decomposes to an ASCII space under NFKD,
// so Japanese mnemonics split the same way. A byte order mark counts as
// whitespace.
func SplitWords(mnemonic string) []string {
	return strings.FieldsFunc(norm.NFKD.String(mnemonic), isSeparator)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// MnemonicToEntropy decodes a mnemonic sentence back to its entropy and
// verifies the embedded checksum.
func (c *Codec) MnemonicToEntropy(mnemonic string) ([]byte, error) {
	words := SplitWords(mnemonic)
	if len(words) == 0 || len(words)%3 != 0 {
		return nil, fmt.Errorf("%w: %d words is not a positive multiple of 3", ErrInvalidMnemonic, len(words))
	}

	bits := newBitBuffer(len(words) * wordlist.BitsPerWord)
	for i, w := range words {
		idx, ok := c.wl.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: word %d is not in the %s wordlist", ErrInvalidMnemonic, i+1, c.wl.Name())
		}
		bits.appendBits(uint32(idx), wordlist.BitsPerWord)
	}

	// Every 33 bits carry 32 entropy bits and 1 checksum bit.
	divider := bits.Len() / 33 * 32
	entropy := bits.prefixBytes(divider)
	if err := ValidateEntropyLength(len(entropy)); err != nil {
		return nil, err
	}

	embedded, embeddedLen := bits.readUint(divider, bits.Len()-divider), bits.Len()-divider
	want, wantLen := checksumBits(entropy, c.digest)
	if embeddedLen != wantLen || embedded != want {
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}

// ValidateMnemonic reports whether mnemonic decodes cleanly. It is the only
// codec operation that absorbs errors.
func (c *Codec) ValidateMnemonic(mnemonic string) bool {
	if _, err := c.MnemonicToEntropy(mnemonic); err != nil {
		c.log.Debug().Err(err).Str("wordlist", c.wl.Name()).Msg("Mnemonic rejected")
		return false
	}
	return true
}
