// Package hashes wraps the hash and encoding primitives the scanner's
// derivation chain is built from: SHA-256, SHA-512, RIPEMD-160,
// HMAC-SHA-512, PBKDF2-HMAC-SHA-512, Keccak-256, Base58Check, and
// Bech32/Bech32m.
package hashes

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
)

// ErrBadChecksum is returned when a Base58Check payload's checksum does
// not match its data.
var ErrBadChecksum = errors.New("hashes: bad base58check checksum")

// ErrBadAlphabet is returned when Base58Check input contains a character
// outside the Base58 alphabet.
var ErrBadAlphabet = errors.New("hashes: invalid base58 alphabet character")

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA256D returns SHA-256(SHA-256(data)), the double-hash Bitcoin uses for
// checksums and txids.
func SHA256D(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// RIPEMD160 returns the RIPEMD-160 digest of data.
func RIPEMD160(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160 returns RIPEMD160(SHA256(data)), the 20-byte program Bitcoin
// P2PKH/P2WPKH addresses encode.
func Hash160(data []byte) [20]byte {
	sum := sha256.Sum256(data)
	return RIPEMD160(sum[:])
}

// HMACSHA512 returns HMAC-SHA512(key, msg).
func HMACSHA512(key, msg []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// PBKDF2HMACSHA512 derives dkLen bytes from password/salt using
// PBKDF2-HMAC-SHA512 with the given iteration count. The BIP39 master
// seed calls this with iters=2048, dkLen=64.
func PBKDF2HMACSHA512(password, salt []byte, iters, dkLen int) []byte {
	return pbkdf2.Key(password, salt, iters, dkLen, sha512.New)
}

// Keccak256 returns the Ethereum-flavour Keccak-256 digest of data.
func Keccak256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(data))
	return out
}

// Base58CheckEncode encodes data with a 4-byte double-SHA-256 checksum.
func Base58CheckEncode(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}

// Base58CheckDecode verifies and strips the checksum, returning the
// version byte and payload.
func Base58CheckDecode(s string) (version byte, payload []byte, err error) {
	payload, version, err = base58.CheckDecode(s)
	if err != nil {
		switch err {
		case base58.ErrChecksum:
			return 0, nil, ErrBadChecksum
		case base58.ErrInvalidFormat:
			return 0, nil, ErrBadAlphabet
		default:
			return 0, nil, ErrBadAlphabet
		}
	}
	return version, payload, nil
}
