package modules

import (
	"errors"

	"github.com/weakwallet/scanner/internal/ecc"
)

// ErrNoNonceReuse is returned when two signatures do not share a nonce
// (r values differ), so no key can be recovered.
var ErrNoNonceReuse = errors.New("modules: signatures do not share a nonce")

// Signature is one ECDSA signature plus the message hash it covers, in
// the exact (r, s, z) shape the nonce-reuse recovery algebra needs.
type Signature struct {
	R [32]byte
	S [32]byte
	Z [32]byte // message hash (already reduced mod n by the caller)
}

// RecoverKeyFromNonceReuse recovers the private key shared by two ECDSA
// signatures that reused the same nonce k:
//
//	k = (z1 - z2) * (s1 - s2)^-1 mod n
//	d = (s1*k - z1) * r^-1 mod n
//
// Both signatures must carry the same r (the x-coordinate of k*G mod n);
// a mismatch means they don't share a nonce and recovery is impossible.
func RecoverKeyFromNonceReuse(sig1, sig2 Signature) ([32]byte, error) {
	if sig1.R != sig2.R {
		return [32]byte{}, ErrNoNonceReuse
	}

	zDiff := ecc.ScalarSub(sig1.Z, sig2.Z)
	sDiff := ecc.ScalarSub(sig1.S, sig2.S)

	sDiffInv, err := ecc.ScalarInverse(sDiff)
	if err != nil {
		return [32]byte{}, ErrNoNonceReuse
	}
	k := ecc.ScalarMul(zDiff, sDiffInv)

	rInv, err := ecc.ScalarInverse(sig1.R)
	if err != nil {
		return [32]byte{}, ErrNoNonceReuse
	}
	s1k := ecc.ScalarMul(sig1.S, k)
	numerator := ecc.ScalarSub(s1k, sig1.Z)
	d := ecc.ScalarMul(numerator, rInv)

	return d, nil
}
