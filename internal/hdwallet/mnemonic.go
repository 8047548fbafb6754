// Package hdwallet implements BIP39 mnemonic generation and BIP32
// hierarchical-deterministic key derivation, including the Electrum-style
// salt variant Cake Wallet uses.
package hdwallet

import (
	"errors"

	"github.com/tyler-smith/go-bip39"

	"github.com/weakwallet/scanner/internal/hashes"
)

// ErrBadEntropyLength is returned when entropy is not 16/20/24/28/32 bytes.
var ErrBadEntropyLength = errors.New("hdwallet: entropy must be 16, 20, 24, 28, or 32 bytes")

// EntropyToMnemonic splits entropy||checksum into 11-bit indices over the
// BIP39 English wordlist. entropy must be 16/20/24/28/32 bytes.
func EntropyToMnemonic(entropy []byte) (string, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", ErrBadEntropyLength
	}
	return bip39.NewMnemonic(entropy)
}

// MnemonicToEntropy recovers the original entropy from a mnemonic,
// verifying its embedded checksum.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	return bip39.EntropyFromMnemonic(mnemonic)
}

// bip39Salt is the fixed BIP39 PBKDF2 salt prefix.
const bip39Salt = "mnemonic"

// electrumSalt is the fixed Electrum-style PBKDF2 salt prefix Cake
// Wallet's legacy derivation uses instead of BIP39's.
const electrumSalt = "electrum"

// MnemonicToSeed runs PBKDF2-HMAC-SHA512 with 2048 iterations over the
// NFKD-normalized, space-joined mnemonic, salted with "mnemonic" ||
// passphrase, returning the 64-byte BIP39 master seed.
func MnemonicToSeed(mnemonic, passphrase string) []byte {
	return hashes.PBKDF2HMACSHA512(
		normalizeMnemonic(mnemonic),
		[]byte(bip39Salt+passphrase),
		2048, 64,
	)
}

// MnemonicToElectrumSeed is the Electrum-style variant: same PBKDF2
// construction, salt "electrum" || passphrase, and — unlike BIP39 — no
// checksum validation of the mnemonic itself (Cake Wallet's legacy path
// accepts any word sequence that indexes the wordlist).
func MnemonicToElectrumSeed(mnemonic, passphrase string) []byte {
	return hashes.PBKDF2HMACSHA512(
		normalizeMnemonic(mnemonic),
		[]byte(electrumSalt+passphrase),
		2048, 64,
	)
}

// normalizeMnemonic applies BIP39's NFKD + single-space-join
// normalization. go-bip39's NewSeed already does this internally; this
// standalone helper lets the Electrum-salt variant share the same
// normalization without hardcoding the "mnemonic" salt go-bip39 bakes in.
func normalizeMnemonic(mnemonic string) []byte {
	return bip39NormalizeNFKD(mnemonic)
}
