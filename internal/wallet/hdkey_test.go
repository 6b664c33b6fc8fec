package wallet

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip32"
)

// testSeed returns a deterministic seed for testing.
// Uses the BIP-39 test vector: "abandon" x11 + "about" with passphrase "TREZOR".
func testSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := SeedFromMnemonic(testMnemonic, "TREZOR", nil)
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	return seed
}

func TestNewMasterKey(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	if !master.IsPrivate() {
		t.Error("master key should be private")
	}
	if master.Depth() != 0 {
		t.Errorf("master key depth = %d, want 0", master.Depth())
	}
	if priv := master.PrivateKeyBytes(); len(priv) != 32 {
		t.Errorf("private key length = %d, want 32", len(priv))
	}
	if pub := master.PublicKeyBytes(); len(pub) != 33 {
		t.Errorf("public key length = %d, want 33", len(pub))
	}
}

func TestNewMasterKey_InvalidSeedLength(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 32)},
		{"too long", make([]byte, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMasterKey(tt.seed); err == nil {
				t.Error("expected error for invalid seed length")
			}
		})
	}
}

func TestNewMasterKey_Deterministic(t *testing.T) {
	seed := testSeed(t)
	k1, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	k2, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	if !bytes.Equal(k1.PrivateKeyBytes(), k2.PrivateKeyBytes()) {
		t.Error("same seed should produce the same master key")
	}
}

func TestExtendedPublicKey(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	xpub := master.ExtendedPublicKey()
	if !strings.HasPrefix(xpub, "xpub") {
		t.Errorf("ExtendedPublicKey() = %q, want xpub prefix", xpub)
	}
	if len(xpub) != 111 {
		t.Errorf("ExtendedPublicKey() length = %d, want 111", len(xpub))
	}
}

func TestFingerprint(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	fp, err := master.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}
	if len(fp) != 8 {
		t.Errorf("Fingerprint() = %q, want 8 hex chars", fp)
	}

	// A private child records the same parent fingerprint.
	child, err := master.DeriveChild(bip32.FirstHardenedChild)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	if got := hex.EncodeToString(child.key.FingerPrint); got != fp {
		t.Errorf("child parent fingerprint = %s, want %s", got, fp)
	}
}

func TestDerivePath(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	path, err := master.DerivePath(bip32.FirstHardenedChild+44, bip32.FirstHardenedChild, 0)
	if err != nil {
		t.Fatalf("DerivePath() error: %v", err)
	}
	if path.Depth() != 3 {
		t.Errorf("depth = %d, want 3", path.Depth())
	}

	step, err := master.DeriveChild(bip32.FirstHardenedChild + 44)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	step, err = step.DeriveChild(bip32.FirstHardenedChild)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	step, err = step.DeriveChild(0)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	if !bytes.Equal(path.PrivateKeyBytes(), step.PrivateKeyBytes()) {
		t.Error("DerivePath should equal sequential DeriveChild calls")
	}
}

func TestNeuter(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	pub := master.Neuter()
	if pub.IsPrivate() {
		t.Error("neutered key should not be private")
	}
	if pub.PrivateKeyBytes() != nil {
		t.Error("neutered key should not expose private bytes")
	}
	if !bytes.Equal(pub.PublicKeyBytes(), master.PublicKeyBytes()) {
		t.Error("neutered key should keep the public key")
	}
}
