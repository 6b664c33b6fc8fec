package mnemonic

import (
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
)

// Digest is the hash capability used for checksums: a 32-byte digest of data.
// It is the only place the codec computes cryptographic material.
type Digest func(data []byte) types.Hash

// SHA256Digest is the BIP-39 checksum digest.
func SHA256Digest(data []byte) types.Hash {
	return crypto.SHA256(data)
}

// checksumBits returns the leading CS bits of digest(entropy), right-aligned,
// where CS = ENT/32. Entropy must already have a valid length, so CS <= 8.
func checksumBits(entropy []byte, digest Digest) (uint32, int) {
	cs := ChecksumLength(len(entropy))
	h := digest(entropy)
	return uint32(h[0] >> uint(8-cs)), cs
}

// ChecksumDigest returns the full digest the checksum bits of entropy are
// taken from.
func (c *Codec) ChecksumDigest(entropy []byte) types.Hash {
	return c.digest(entropy)
}
