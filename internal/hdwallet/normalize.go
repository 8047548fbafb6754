package hdwallet

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// bip39NormalizeNFKD applies Unicode NFKD normalization and collapses the
// mnemonic to single-space-joined words, per BIP39's seed-derivation
// normalization rule.
func bip39NormalizeNFKD(mnemonic string) []byte {
	words := strings.Fields(mnemonic)
	joined := strings.Join(words, " ")
	return norm.NFKD.Bytes([]byte(joined))
}
