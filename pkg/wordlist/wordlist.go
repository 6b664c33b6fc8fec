// Package wordlist provides the ordered 2048-word tables used by BIP-39
// mnemonics. A word's position in its table is its 11-bit value.
package wordlist

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Size is the number of words in every BIP-39 wordlist.
const Size = 2048

// BitsPerWord is the number of bits a single word encodes.
const BitsPerWord = 11

// JapaneseFirstWord is the first entry of the Japanese wordlist. Mnemonics
// built from a table starting with this word are joined with IdeographicSpace.
const JapaneseFirstWord = "\u3042\u3044\u3053\u304f\u3057\u3093"

// Word separators.
const (
	Space            = " "
	IdeographicSpace = "\u3000"
)

// ErrInvalidWordlist is returned when a table is not exactly Size unique words.
var ErrInvalidWordlist = errors.New("invalid wordlist")

// Wordlist is an immutable, ordered table of Size words. It is safe for
// concurrent use since nothing mutates it after New returns.
type Wordlist struct {
	name  string
	words []string
	index map[string]int
}

// New builds a wordlist from an ordered table of words.
// The table is copied. Lookups are keyed by the NFKD form of each word.
func New(name string, words []string) (*Wordlist, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: %s has %d words, want %d", ErrInvalidWordlist, name, len(words), Size)
	}

	wl := &Wordlist{
		name:  name,
		words: make([]string, Size),
		index: make(map[string]int, Size),
	}
	for i, w := range words {
		if strings.TrimSpace(w) == "" {
			return nil, fmt.Errorf("%w: %s word %d is empty", ErrInvalidWordlist, name, i)
		}
		if strings.ContainsFunc(w, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %s word %d contains whitespace", ErrInvalidWordlist, name, i)
		}
		key := norm.NFKD.String(w)
		if prev, ok := wl.index[key]; ok {
			return nil, fmt.Errorf("%w: %s words %d and %d are identical", ErrInvalidWordlist, name, prev, i)
		}
		wl.words[i] = w
		wl.index[key] = i
	}
	return wl, nil
}

// MustNew is like New but panics on error. Only for known-good tables.
func MustNew(name string, words []string) *Wordlist {
	wl, err := New(name, words)
	if err != nil {
		panic(err)
	}
	return wl
}

// Name returns the language name the table was registered with.
func (wl *Wordlist) Name() string {
	return wl.name
}

// Len returns the number of words (always Size).
func (wl *Wordlist) Len() int {
	return len(wl.words)
}

// Word returns the word at index i. Panics if i is outside [0, Size).
func (wl *Wordlist) Word(i int) string {
	return wl.words[i]
}

// Index returns the position of word in the table.
func (wl *Wordlist) Index(word string) (int, bool) {
	i, ok := wl.index[norm.NFKD.String(word)]
	return i, ok
}

// Words returns a copy of the table.
func (wl *Wordlist) Words() []string {
	out := make([]string, len(wl.words))
	copy(out, wl.words)
	return out
}

// Separator returns the string used to join mnemonic words for this table.
// The Japanese table uses the ideographic space, every other table an ASCII space.
func (wl *Wordlist) Separator() string {
	if wl.words[0] == JapaneseFirstWord {
		return IdeographicSpace
	}
	return Space
}
