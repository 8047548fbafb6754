package hdwallet

import (
	"encoding/hex"
	"testing"
)

func TestEntropyMnemonicRoundTripKnownLengths(t *testing.T) {
	for _, n := range []int{16, 20, 24, 28, 32} {
		entropy := make([]byte, n)
		for i := range entropy {
			entropy[i] = byte(i)
		}
		mnemonic, err := EntropyToMnemonic(entropy)
		if err != nil {
			t.Fatalf("EntropyToMnemonic(%d bytes): %v", n, err)
		}
		if mnemonic == "" {
			t.Fatalf("EntropyToMnemonic(%d bytes) returned empty mnemonic", n)
		}
		got, err := MnemonicToEntropy(mnemonic)
		if err != nil {
			t.Fatalf("MnemonicToEntropy round trip: %v", err)
		}
		if hex.EncodeToString(got) != hex.EncodeToString(entropy) {
			t.Fatalf("round trip entropy = %x, want %x", got, entropy)
		}
	}
}

func TestEntropyToMnemonicBadLength(t *testing.T) {
	if _, err := EntropyToMnemonic(make([]byte, 15)); err != ErrBadEntropyLength {
		t.Fatalf("expected ErrBadEntropyLength for 15-byte entropy, got %v", err)
	}
	if _, err := EntropyToMnemonic(make([]byte, 33)); err != ErrBadEntropyLength {
		t.Fatalf("expected ErrBadEntropyLength for 33-byte entropy, got %v", err)
	}
}

func TestMnemonicToSeedKnownVector(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	seed := MnemonicToSeed(mnemonic, "TREZOR")
	want := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e"
	if hex.EncodeToString(seed) != want {
		t.Fatalf("MnemonicToSeed = %x, want %s", seed, want)
	}
}

func TestMnemonicToSeedVsElectrumSeedDiffer(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	bip39Seed := MnemonicToSeed(mnemonic, "")
	electrumSeed := MnemonicToElectrumSeed(mnemonic, "")
	if hex.EncodeToString(bip39Seed) == hex.EncodeToString(electrumSeed) {
		t.Fatalf("BIP39 and Electrum salts produced the same seed")
	}
	if len(bip39Seed) != 64 || len(electrumSeed) != 64 {
		t.Fatalf("seed lengths = %d/%d, want 64/64", len(bip39Seed), len(electrumSeed))
	}
}

func TestMnemonicToSeedDeterministic(t *testing.T) {
	mnemonic := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	a := MnemonicToSeed(mnemonic, "TREZOR")
	b := MnemonicToSeed(mnemonic, "TREZOR")
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Fatalf("MnemonicToSeed is not deterministic")
	}
}
