package address

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/weakwallet/scanner/internal/hashes"
)

// ErrUnrecognizedAddress is returned by Parse when a string doesn't
// decode as any of the four supported encodings.
var ErrUnrecognizedAddress = errors.New("address: unrecognized address format")

// Parse decodes a human-readable address string back into its Kind and
// 20-byte program, the form internal/target indexes on. It is the
// target-set loader's entry point: a target file lists addresses as
// users would paste them, never raw programs.
func Parse(s string) (Kind, [20]byte, error) {
	var program [20]byte

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		raw, err := hex.DecodeString(s[2:])
		if err != nil || len(raw) != 20 {
			return 0, program, ErrUnrecognizedAddress
		}
		copy(program[:], raw)
		return ETH, program, nil
	}

	if strings.HasPrefix(s, "bc1") {
		_, witnessVersion, raw, err := hashes.Bech32Decode(s)
		if err != nil || witnessVersion != 0 || len(raw) != 20 {
			return 0, program, ErrUnrecognizedAddress
		}
		copy(program[:], raw)
		return P2WPKH, program, nil
	}

	version, payload, err := hashes.Base58CheckDecode(s)
	if err != nil || len(payload) != 20 {
		return 0, program, ErrUnrecognizedAddress
	}
	copy(program[:], payload)
	switch version {
	case mainnetP2PKHVersion:
		return P2PKH, program, nil
	case mainnetP2SHVersion:
		return P2SHP2WPKH, program, nil
	default:
		return 0, program, ErrUnrecognizedAddress
	}
}
