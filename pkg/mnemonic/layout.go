package mnemonic

import (
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Layout is a bit-level breakdown of how entropy maps to words.
// It exposes secret material and is only meant for inspection tooling.
type Layout struct {
	EntropyBits  string   `json:"entropy_bits"`
	ChecksumBits string   `json:"checksum_bits"`
	Groups       []string `json:"groups"`
	Indices      []int    `json:"indices"`
	Words        []string `json:"words"`
}

// Layout returns the bit layout of the mnemonic for entropy.
func (c *Codec) Layout(entropy []byte) (*Layout, error) {
	if err := ValidateEntropyLength(len(entropy)); err != nil {
		return nil, err
	}
	var ent strings.Builder
	for _, b := range entropy {
		ent.WriteString(ByteToBits(b))
	}
	bits := c.entropyBits(entropy).String()

	l := &Layout{
		EntropyBits:  ent.String(),
		ChecksumBits: bits[ent.Len():],
	}
	for off := 0; off < len(bits); off += wordlist.BitsPerWord {
		group := bits[off : off+wordlist.BitsPerWord]
		idx, err := BitsToIndex(group)
		if err != nil {
			return nil, err
		}
		l.Groups = append(l.Groups, group)
		l.Indices = append(l.Indices, idx)
		l.Words = append(l.Words, c.wl.Word(idx))
	}
	return l, nil
}
