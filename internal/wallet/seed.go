// Package wallet derives BIP-39 seeds and BIP-32 master keys from mnemonics
// validated by the codec in pkg/mnemonic.
package wallet

import (
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// seedIterations is the PBKDF2 round count fixed by BIP-39.
const seedIterations = 2048

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional passphrase
// using PBKDF2-SHA512 as specified in BIP-39. The mnemonic must pass the codec's
// checks against wl (the default wordlist when wl is nil).
func SeedFromMnemonic(phrase, passphrase string, wl *wordlist.Wordlist) ([]byte, error) {
	if _, err := mnemonic.MnemonicToEntropy(phrase, wl); err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	defer log.Benchmark("seed derivation")()

	words := mnemonic.SplitWords(phrase)
	sentence := strings.Join(words, " ")
	salt := norm.NFKD.String("mnemonic" + passphrase)
	seed := pbkdf2.Key([]byte(sentence), []byte(salt), seedIterations, SeedSize, sha512.New)

	log.Wallet.Debug().Int("words", len(words)).Msg("Derived seed")
	return seed, nil
}
