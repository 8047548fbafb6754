package prng

import "encoding/binary"

// ExtractMSBBytes draws n bytes by taking the high byte of each
// generator.NextU32() call: `word >> (W-8)`. This is the Milk Sad
// extraction rule and matches what `bx seed` historically produced.
func ExtractMSBBytes(src Source, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(src.NextU32() >> 24)
	}
	return out
}

// ExtractLSBBytes draws n bytes by taking the low byte of each
// generator.NextU32() call: `word & 0xFF`. The Trust Wallet browser
// extension used this instead of the MSB rule Milk Sad uses; the
// distinction between the two is the entire vulnerability surface this
// pair of extraction rules exists to model.
func ExtractLSBBytes(src Source, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(src.NextU32())
	}
	return out
}

// ExtractFullWordLE64 packs ceil(n/8) 64-bit draws little-endian and
// truncates to n bytes. Profanity packs 4 MT19937-64 words this way to
// build a 32-byte private key.
func ExtractFullWordLE64(src Source64, n int) []byte {
	out := make([]byte, 0, n+8)
	for len(out) < n {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], src.NextU64())
		out = append(out, buf[:]...)
	}
	return out[:n]
}

// ExtractByteWiseLCG advances src one step per output byte and takes the
// low byte of each step, the iOS minstd_rand0/minstd_rand extraction
// rule.
func ExtractByteWiseLCG(src Source, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(src.NextU32())
	}
	return out
}

// ExtractDartNextInt256 draws n bytes by calling NextInt256 once per
// byte, the Cake Wallet extraction rule.
func ExtractDartNextInt256(src *DartXorshift128Plus, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = src.NextInt256()
	}
	return out
}

// ExtractPoolAndARC4 implements the Randstorm pool-and-ARC4 construction:
// fill a 256-byte pool with one PRNG call per pair of bytes (high byte
// then low byte of floor(65536*next_unit), where next_unit is the generator's
// output normalized to a unit float as the vulnerable BitcoinJS build
// did), XOR the low 32 bits of timestampSalt over the first four pool
// bytes, key ARC4 with the pool, then return 32 bytes of ARC4 keystream
// as the private key.
func ExtractPoolAndARC4(src Source, timestampSalt uint32) ([]byte, error) {
	const poolSize = 256
	pool := make([]byte, poolSize)
	for i := 0; i < poolSize; i += 2 {
		// next_unit in [0,1) approximated as word/2^32; floor(65536*next_unit)
		// is then just the high 16 bits of the 32-bit word.
		word := src.NextU32()
		scaled := uint32((uint64(word) * 65536) >> 32)
		pool[i] = byte(scaled >> 8)
		if i+1 < poolSize {
			pool[i+1] = byte(scaled)
		}
	}

	var saltBytes [4]byte
	binary.BigEndian.PutUint32(saltBytes[:], timestampSalt)
	for i := 0; i < 4; i++ {
		pool[i] ^= saltBytes[i]
	}

	return ARC4Keystream(pool, 32)
}
