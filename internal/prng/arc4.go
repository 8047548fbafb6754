package prng

import "crypto/rc4"

// ARC4Keystream keys an RC4 cipher with pool and returns n bytes of
// keystream (the PRGA output), the secondary PRNG Randstorm-era
// BitcoinJS 0.1.x used once its 256-byte entropy pool was seeded.
// crypto/rc4 (standard library) implements exactly the KSA+PRGA this
// component needs — there is no reason to hand-roll an S-box here.
func ARC4Keystream(pool []byte, n int) ([]byte, error) {
	cipher, err := rc4.NewCipher(pool)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	cipher.XORKeyStream(out, out)
	return out, nil
}
