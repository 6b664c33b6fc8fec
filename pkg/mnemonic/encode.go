package mnemonic

import (
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// EntropyToMnemonic encodes entropy as a mnemonic sentence.
// Entropy must be 16-32 bytes in steps of 4.
func (c *Codec) EntropyToMnemonic(entropy []byte) (string, error) {
	words, err := c.EntropyToWords(entropy)
	if err != nil {
		return "", err
	}
	return strings.Join(words, c.wl.Separator()), nil
}

// EntropyToWords is EntropyToMnemonic without the final join.
func (c *Codec) EntropyToWords(entropy []byte) ([]string, error) {
	if err := ValidateEntropyLength(len(entropy)); err != nil {
		return nil, err
	}
	bits := c.entropyBits(entropy)
	words := make([]string, bits.Len()/wordlist.BitsPerWord)
	for i := range words {
		words[i] = c.wl.Word(int(bits.readUint(i*wordlist.BitsPerWord, wordlist.BitsPerWord)))
	}
	return words, nil
}

// entropyBits returns entropy ++ checksum as a bit buffer. The length is
// always a multiple of 11 for valid entropy: ENT+CS = 33*ENT/32.
func (c *Codec) entropyBits(entropy []byte) *bitBuffer {
	cs, csLen := checksumBits(entropy, c.digest)
	bits := newBitBuffer(len(entropy)*8 + csLen)
	for _, b := range entropy {
		bits.appendBits(uint32(b), 8)
	}
	bits.appendBits(cs, csLen)
	return bits
}
