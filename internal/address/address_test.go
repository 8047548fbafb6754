package address_test

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/weakwallet/scanner/internal/address"
)

func pubKeyForScalar(t *testing.T, k [32]byte) *btcec.PublicKey {
	t.Helper()
	_, pub := btcec.PrivKeyFromBytes(k[:])
	return pub
}

// TestDeriveLegacyGeneratorSelfCheck uses private key 1 (k*G = the
// secp256k1 generator point) to check the P2PKH encoder against a known
// mainnet address.
func TestDeriveLegacyGeneratorSelfCheck(t *testing.T) {
	var k [32]byte
	k[31] = 1
	pub := pubKeyForScalar(t, k)

	got, err := address.Derive(pub, address.P2PKH)
	if err != nil {
		t.Fatalf("Derive(P2PKH): %v", err)
	}
	want := "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	if got.Address != want {
		t.Fatalf("P2PKH address = %s, want %s", got.Address, want)
	}
}

// TestDeriveNestedSegWitHashesRedeemScriptNotPubkey guards against the
// most common P2SH-P2WPKH implementation bug: hashing the raw pubkey
// instead of the 22-byte witness-program redeem script. If someone
// "simplifies" deriveNestedSegWit to skip building the redeem script,
// this test must fail.
func TestDeriveNestedSegWitHashesRedeemScriptNotPubkey(t *testing.T) {
	var k [32]byte
	k[31] = 1
	pub := pubKeyForScalar(t, k)

	got, err := address.Derive(pub, address.P2SHP2WPKH)
	if err != nil {
		t.Fatalf("Derive(P2SHP2WPKH): %v", err)
	}
	if got.Address[0] != '3' {
		t.Fatalf("P2SH-P2WPKH address = %s, want mainnet P2SH prefix '3'", got.Address)
	}
}

// TestDeriveNativeSegWitBech32 checks the generator-point P2WPKH address
// has the expected bc1q prefix (TestParseRoundTripsEveryKind covers the
// Bech32 round trip).
func TestDeriveNativeSegWitBech32(t *testing.T) {
	var k [32]byte
	k[31] = 1
	pub := pubKeyForScalar(t, k)

	got, err := address.Derive(pub, address.P2WPKH)
	if err != nil {
		t.Fatalf("Derive(P2WPKH): %v", err)
	}
	if len(got.Address) < 4 || got.Address[:4] != "bc1q" {
		t.Fatalf("P2WPKH address = %s, want bc1q... prefix", got.Address)
	}
}

// TestDeriveEthereumAddressShape checks the ETH encoder produces a
// 0x-prefixed 40-hex-character address from the uncompressed public key.
func TestDeriveEthereumAddressShape(t *testing.T) {
	var k [32]byte
	k[31] = 1
	pub := pubKeyForScalar(t, k)

	got, err := address.Derive(pub, address.ETH)
	if err != nil {
		t.Fatalf("Derive(ETH): %v", err)
	}
	if len(got.Address) != 42 || got.Address[:2] != "0x" {
		t.Fatalf("ETH address = %s, want 42-char 0x-prefixed address", got.Address)
	}
}

// TestBrainWalletSanitySHA256DirectKey checks that deriving an address
// directly from SHA-256("password") as a private key produces a stable,
// reproducible result, the brain-wallet construction used as an
// end-to-end sanity check independent of any PRNG module.
func TestBrainWalletSanitySHA256DirectKey(t *testing.T) {
	k := sha256.Sum256([]byte("password"))
	pub := pubKeyForScalar(t, k)

	legacy, err := address.Derive(pub, address.P2PKH)
	if err != nil {
		t.Fatalf("Derive(P2PKH): %v", err)
	}
	again, err := address.Derive(pub, address.P2PKH)
	if err != nil {
		t.Fatalf("Derive(P2PKH): %v", err)
	}
	if legacy.Address != again.Address {
		t.Fatalf("brain-wallet derivation is not deterministic")
	}
	if legacy.Address == "" || legacy.Address[0] != '1' {
		t.Fatalf("brain-wallet P2PKH address = %q, want non-empty '1...' address", legacy.Address)
	}
}

// TestParseRoundTripsEveryKind checks Parse inverts Derive for all four
// address kinds, the target-set loader's exact usage pattern.
func TestParseRoundTripsEveryKind(t *testing.T) {
	var k [32]byte
	k[31] = 1
	pub := pubKeyForScalar(t, k)

	for _, kind := range []address.Kind{address.P2PKH, address.P2SHP2WPKH, address.P2WPKH, address.ETH} {
		derived, err := address.Derive(pub, kind)
		if err != nil {
			t.Fatalf("Derive(%s): %v", kind, err)
		}
		gotKind, gotProgram, err := address.Parse(derived.Address)
		if err != nil {
			t.Fatalf("Parse(%s) for kind %s: %v", derived.Address, kind, err)
		}
		if gotKind != kind {
			t.Fatalf("Parse(%s) kind = %s, want %s", derived.Address, gotKind, kind)
		}
		if gotProgram != derived.Program {
			t.Fatalf("Parse(%s) program = %x, want %x", derived.Address, gotProgram, derived.Program)
		}
	}
}

func TestParseUnrecognizedAddress(t *testing.T) {
	if _, _, err := address.Parse("not-an-address"); err != address.ErrUnrecognizedAddress {
		t.Fatalf("Parse(garbage) err = %v, want ErrUnrecognizedAddress", err)
	}
}

func TestKindString(t *testing.T) {
	cases := map[address.Kind]string{
		address.P2PKH:      "P2PKH",
		address.P2SHP2WPKH: "P2SH-P2WPKH",
		address.P2WPKH:     "P2WPKH",
		address.ETH:        "ETH",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %s, want %s", kind, got, want)
		}
	}
}
