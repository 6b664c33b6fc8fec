// Package crypto provides the hash primitives used by the mnemonic codec.
package crypto

import (
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
)

// FingerprintSize is the number of BLAKE3 bytes kept in a fingerprint.
const FingerprintSize = 4

// SHA256 computes the SHA-256 digest of the input data.
// This is the digest BIP-39 uses for mnemonic checksums.
func SHA256(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}

// Fingerprint returns a short, non-secret identifier for a secret.
// Fingerprint = hex(BLAKE3(secret)[:4]).
func Fingerprint(secret []byte) string {
	return Hash(secret).String()[:2*FingerprintSize]
}
