// Package address derives Bitcoin and Ethereum addresses from a
// secp256k1 public key: P2PKH, nested and native segwit, and Ethereum's
// Keccak-derived form, via a witness-version-parameterized Bech32
// helper shared by P2WPKH and any future segwit version.
package address

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/weakwallet/scanner/internal/hashes"
)

// Kind identifies which of the scanner's four supported address
// encodings a MatchRecord was produced under.
type Kind int

const (
	// P2PKH is the legacy Base58Check pay-to-pubkey-hash address ("1...").
	P2PKH Kind = iota
	// P2SHP2WPKH is the nested-segwit P2SH-wrapped P2WPKH address ("3...").
	P2SHP2WPKH
	// P2WPKH is the native segwit witness-v0 Bech32 address ("bc1q...").
	P2WPKH
	// ETH is the Ethereum 20-byte Keccak-derived address ("0x...").
	ETH
)

func (k Kind) String() string {
	switch k {
	case P2PKH:
		return "P2PKH"
	case P2SHP2WPKH:
		return "P2SH-P2WPKH"
	case P2WPKH:
		return "P2WPKH"
	case ETH:
		return "ETH"
	default:
		return "unknown"
	}
}

const (
	mainnetP2PKHVersion byte = 0x00
	mainnetP2SHVersion  byte = 0x05
	mainnetSegwitHRP         = "bc"
)

// Result holds both the human-readable address string and the raw
// 20-byte program the target set indexes on, so callers never need to
// re-derive one from the other.
type Result struct {
	Kind    Kind
	Address string
	Program [20]byte
}

// Derive computes the address of the given kind for a public key.
func Derive(pubKey *btcec.PublicKey, kind Kind) (Result, error) {
	switch kind {
	case P2PKH:
		return deriveLegacy(pubKey)
	case P2SHP2WPKH:
		return deriveNestedSegWit(pubKey)
	case P2WPKH:
		return deriveNativeSegWit(pubKey)
	case ETH:
		return deriveEthereum(pubKey)
	default:
		return Result{}, errUnknownKind
	}
}

// deriveLegacy builds a P2PKH address: Base58Check(0x00 || hash160(compressed_pubkey)).
func deriveLegacy(pubKey *btcec.PublicKey) (Result, error) {
	program := hashes.Hash160(pubKey.SerializeCompressed())
	addr := hashes.Base58CheckEncode(mainnetP2PKHVersion, program[:])
	return Result{Kind: P2PKH, Address: addr, Program: program}, nil
}

// deriveNestedSegWit builds a P2SH-P2WPKH address. The most common
// implementation bug is hashing the raw compressed pubkey instead of the
// 22-byte witness-program redeem script (0x00 0x14 || hash160(pubkey));
// this hashes the redeem script, as BIP-49/BIP-141 require.
func deriveNestedSegWit(pubKey *btcec.PublicKey) (Result, error) {
	pubKeyHash := hashes.Hash160(pubKey.SerializeCompressed())

	var redeemScript [22]byte
	redeemScript[0] = 0x00 // witness version 0
	redeemScript[1] = 0x14 // push 20 bytes
	copy(redeemScript[2:], pubKeyHash[:])

	scriptHash := hashes.Hash160(redeemScript[:])
	addr := hashes.Base58CheckEncode(mainnetP2SHVersion, scriptHash[:])
	return Result{Kind: P2SHP2WPKH, Address: addr, Program: scriptHash}, nil
}

// deriveNativeSegWit builds a P2WPKH address: Bech32(hrp="bc", version=0,
// hash160(compressed_pubkey)). Shares the witness-version-parameterized
// Bech32 helper the Taproot-era code used only for version 1.
func deriveNativeSegWit(pubKey *btcec.PublicKey) (Result, error) {
	program := hashes.Hash160(pubKey.SerializeCompressed())
	addr, err := hashes.Bech32Encode(mainnetSegwitHRP, 0, program[:])
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: P2WPKH, Address: addr, Program: program}, nil
}

// deriveEthereum builds an Ethereum address: the last 20 bytes of
// Keccak256(uncompressed_pubkey_without_04_prefix), 0x-prefixed and hex
// encoded (no EIP-55 checksum casing — target sets are matched
// case-insensitively upstream of this package).
func deriveEthereum(pubKey *btcec.PublicKey) (Result, error) {
	uncompressed := pubKey.SerializeUncompressed()
	digest := hashes.Keccak256(uncompressed[1:]) // drop the 0x04 prefix
	var program [20]byte
	copy(program[:], digest[12:])
	addr := "0x" + hex.EncodeToString(program[:])
	return Result{Kind: ETH, Address: addr, Program: program}, nil
}
