// Package types defines primitive value types shared by the mnemonic tooling.
package types

import (
	"encoding/hex"
	"encoding/json"
)

// HashSize is the length of a digest in bytes.
const HashSize = 32

// Hash represents a 256-bit digest value.
type Hash [HashSize]byte

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalJSON encodes the hash as a hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
