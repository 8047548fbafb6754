package hashes

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Bech32Encode encodes a witness program under hrp using Bech32 (witness
// version 0) or Bech32m (witness version 1+), per BIP-173/BIP-350.
func Bech32Encode(hrp string, witnessVersion byte, program []byte) (string, error) {
	data, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("hashes: convert bits: %w", err)
	}
	data = append([]byte{witnessVersion}, data...)

	if witnessVersion == 0 {
		return bech32.Encode(hrp, data)
	}
	return bech32.EncodeM(hrp, data)
}

// Bech32Decode decodes a segwit Bech32/Bech32m address, returning the hrp,
// witness version, and witness program. It rejects mixed-case input and
// verifies the polymod checksum against whichever constant (Bech32 or
// Bech32m) the encoding used.
func Bech32Decode(address string) (hrp string, witnessVersion byte, program []byte, err error) {
	hrp, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return "", 0, nil, fmt.Errorf("hashes: bech32 decode: %w", err)
	}
	if len(data) < 1 {
		return "", 0, nil, fmt.Errorf("hashes: empty bech32 payload")
	}
	witnessVersion = data[0]
	program, err = bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, fmt.Errorf("hashes: convert bits: %w", err)
	}
	return hrp, witnessVersion, program, nil
}
