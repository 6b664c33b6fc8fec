package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHash_String(t *testing.T) {
	var h Hash
	if got := h.String(); got != strings.Repeat("00", HashSize) {
		t.Errorf("zero String() = %s", got)
	}

	h[0], h[HashSize-1] = 0x37, 0xbb
	s := h.String()
	if len(s) != 2*HashSize {
		t.Fatalf("String() length = %d, want %d", len(s), 2*HashSize)
	}
	if !strings.HasPrefix(s, "37") || !strings.HasSuffix(s, "bb") {
		t.Errorf("String() = %s, want 37...bb", s)
	}
}

func TestHash_MarshalJSON(t *testing.T) {
	h := Hash{0xde, 0xad}
	data, err := json.Marshal(struct {
		Digest Hash `json:"digest"`
	}{h})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"digest":"dead` + strings.Repeat("00", HashSize-2) + `"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
