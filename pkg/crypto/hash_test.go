package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
)

func hexToHash(t *testing.T, s string) types.Hash {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	var h types.Hash
	copy(h[:], b)
	return h
}

func TestSHA256(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "abc",
			input: []byte("abc"),
			want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:  "16 zero bytes",
			input: make([]byte, 16),
			want:  "374708fff7719dd5979ec875d56cd2286f6d3cf7ec317a3b25632aab28ec37bb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA256(tt.input)
			want := hexToHash(t, tt.want)
			if got != want {
				t.Errorf("SHA256(%x) = %x, want %x", tt.input, got, want)
			}
		})
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		},
		{
			name:  "hello",
			input: []byte("hello"),
			want:  "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hash(tt.input)
			want := hexToHash(t, tt.want)
			if got != want {
				t.Errorf("Hash(%q) = %x, want %x", tt.input, got, want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint([]byte("hello"))
	if fp != "ea8f163d" {
		t.Errorf("Fingerprint = %s, want ea8f163d", fp)
	}
	if len(fp) != FingerprintSize*2 {
		t.Errorf("Fingerprint length = %d, want %d", len(fp), FingerprintSize*2)
	}
}

func TestFingerprint_DifferentInputs(t *testing.T) {
	if Fingerprint([]byte("input A")) == Fingerprint([]byte("input B")) {
		t.Error("different inputs produced the same fingerprint")
	}
}
