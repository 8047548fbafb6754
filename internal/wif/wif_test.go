package wif_test

import (
	"testing"

	"github.com/weakwallet/scanner/internal/wif"
)

// TestEncodeGeneratorKeyKnownVector checks private key 1 against its
// well-known mainnet compressed WIF.
func TestEncodeGeneratorKeyKnownVector(t *testing.T) {
	var k [32]byte
	k[31] = 1
	got := wif.Encode(k, true)
	want := "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"
	if got != want {
		t.Fatalf("Encode(1, compressed) = %s, want %s", got, want)
	}
}

func TestEncodeCompressedVsUncompressedDiffer(t *testing.T) {
	var k [32]byte
	k[31] = 7
	compressed := wif.Encode(k, true)
	uncompressed := wif.Encode(k, false)
	if compressed == uncompressed {
		t.Fatalf("compressed and uncompressed WIF should not match")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	var k [32]byte
	k[15] = 0x42
	if wif.Encode(k, true) != wif.Encode(k, true) {
		t.Fatalf("Encode is not deterministic")
	}
}
