package wordlist

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language names accepted by ByName.
const (
	English            = "english"
	Japanese           = "japanese"
	Korean             = "korean"
	Spanish            = "spanish"
	French             = "french"
	Italian            = "italian"
	Czech              = "czech"
	ChineseSimplified  = "chinese_simplified"
	ChineseTraditional = "chinese_traditional"
)

type bundled struct {
	words []string
	once  sync.Once
	wl    *Wordlist
}

// Bundled tables are built on first use and shared read-only afterwards.
var registry = map[string]*bundled{
	English:            {words: wordlists.English},
	Japanese:           {words: wordlists.Japanese},
	Korean:             {words: wordlists.Korean},
	Spanish:            {words: wordlists.Spanish},
	French:             {words: wordlists.French},
	Italian:            {words: wordlists.Italian},
	Czech:              {words: wordlists.Czech},
	ChineseSimplified:  {words: wordlists.ChineseSimplified},
	ChineseTraditional: {words: wordlists.ChineseTraditional},
}

// ByName returns the bundled wordlist for a language.
// Names are case-insensitive; "-" and "_" are interchangeable.
func ByName(name string) (*Wordlist, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	b, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown wordlist language %q (available: %s)", name, strings.Join(Languages(), ", "))
	}
	b.once.Do(func() {
		b.wl = MustNew(key, b.words)
	})
	return b.wl, nil
}

// Default returns the bundled English wordlist.
func Default() *Wordlist {
	wl, _ := ByName(English)
	return wl
}

// Languages returns the names of all bundled wordlists, sorted.
func Languages() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
