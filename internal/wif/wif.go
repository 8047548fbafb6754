// Package wif encodes a recovered private key scalar as a Wallet
// Import Format string, the form a user pastes into a wallet to spend
// from a scanned address. A scanner that only reports "this address
// matched" without the key to sweep it is not useful to the person it
// is run for, so every confirmed match carries one.
package wif

import (
	"github.com/mr-tron/base58"

	"github.com/weakwallet/scanner/internal/hashes"
)

const mainnetPrivateKeyVersion byte = 0x80

// Encode returns the WIF encoding of a 32-byte private key scalar.
// compressed marks whether the key derives a compressed-serialized
// public key (true for every address kind this scanner computes).
func Encode(priv [32]byte, compressed bool) string {
	payload := make([]byte, 0, 34)
	payload = append(payload, mainnetPrivateKeyVersion)
	payload = append(payload, priv[:]...)
	if compressed {
		payload = append(payload, 0x01)
	}
	checksum := hashes.SHA256D(payload)
	full := append(payload, checksum[:4]...)
	return base58.Encode(full)
}
