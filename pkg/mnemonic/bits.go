package mnemonic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// bitBuffer is an append-only, MSB-first packed bit string.
type bitBuffer struct {
	buf []byte
	n   int
}

func newBitBuffer(capBits int) *bitBuffer {
	return &bitBuffer{buf: make([]byte, 0, (capBits+7)/8)}
}

// Len returns the number of bits written.
func (b *bitBuffer) Len() int {
	return b.n
}

// appendBits appends the low width bits of v, most significant first.
func (b *bitBuffer) appendBits(v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		if b.n%8 == 0 {
			b.buf = append(b.buf, 0)
		}
		if v>>uint(i)&1 == 1 {
			b.buf[b.n/8] |= 0x80 >> uint(b.n%8)
		}
		b.n++
	}
}

// readUint reads width bits starting at bit offset off. width must be <= 32.
func (b *bitBuffer) readUint(off, width int) uint32 {
	var v uint32
	for i := off; i < off+width; i++ {
		v = v<<1 | uint32(b.buf[i/8]>>uint(7-i%8)&1)
	}
	return v
}

// prefixBytes returns the first nbits/8 bytes. nbits must be a multiple of 8.
func (b *bitBuffer) prefixBytes(nbits int) []byte {
	out := make([]byte, nbits/8)
	copy(out, b.buf)
	return out
}

// String renders the buffer as '0'/'1' characters.
func (b *bitBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + byte(b.readUint(i, 1)))
	}
	return sb.String()
}

// ByteToBits returns the 8-character zero-padded binary form of b.
func ByteToBits(b byte) string {
	return fmt.Sprintf("%08b", b)
}

// BitsToByte parses an 8-character binary string.
func BitsToByte(s string) (byte, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("byte group must be 8 bits, got %d", len(s))
	}
	v, err := strconv.ParseUint(s, 2, 8)
	if err != nil {
		return 0, fmt.Errorf("parse byte group: %w", err)
	}
	return byte(v), nil
}

// IndexToBits returns the 11-character zero-padded binary form of a word index.
func IndexToBits(i int) string {
	return fmt.Sprintf("%0*b", wordlist.BitsPerWord, i&(wordlist.Size-1))
}

// BitsToIndex parses an 11-character binary string into a word index.
func BitsToIndex(s string) (int, error) {
	if len(s) != wordlist.BitsPerWord {
		return 0, fmt.Errorf("word group must be %d bits, got %d", wordlist.BitsPerWord, len(s))
	}
	v, err := strconv.ParseUint(s, 2, wordlist.BitsPerWord)
	if err != nil {
		return 0, fmt.Errorf("parse word group: %w", err)
	}
	return int(v), nil
}
