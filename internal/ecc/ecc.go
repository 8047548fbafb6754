// Package ecc wraps the secp256k1 primitives the scanner needs to turn a
// recovered scalar (private key) into a public key and back: scalar
// multiplication against the generator, point addition, and point
// serialization. It is a thin layer over btcec/v2.
package ecc

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ErrInvalidScalar is returned when a scalar is not in [1, n-1].
var ErrInvalidScalar = errors.New("ecc: scalar out of range")

// Point is an affine secp256k1 point.
type Point struct {
	jacobian btcec.JacobianPoint
}

// ScalarMulG computes k*G for a 32-byte big-endian scalar k.
func ScalarMulG(k [32]byte) (Point, error) {
	var scalar btcec.ModNScalar
	overflow := scalar.SetBytes(&k)
	if overflow != 0 || scalar.IsZero() {
		return Point{}, ErrInvalidScalar
	}
	var result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&scalar, &result)
	result.ToAffine()
	return Point{jacobian: result}, nil
}

// PointAdd returns p+q.
func PointAdd(p, q Point) Point {
	var result btcec.JacobianPoint
	btcec.AddNonConst(&p.jacobian, &q.jacobian, &result)
	result.ToAffine()
	return Point{jacobian: result}
}

// PointDouble returns 2*p.
func PointDouble(p Point) Point {
	var result btcec.JacobianPoint
	btcec.DoubleNonConst(&p.jacobian, &result)
	result.ToAffine()
	return Point{jacobian: result}
}

// ScalarMulPoint computes k*P for an arbitrary point P. Nothing in the
// repository calls it.
func ScalarMulPoint(k [32]byte, p Point) (Point, error) {
	var scalar btcec.ModNScalar
	overflow := scalar.SetBytes(&k)
	if overflow != 0 || scalar.IsZero() {
		return Point{}, ErrInvalidScalar
	}
	var result btcec.JacobianPoint
	btcec.ScalarMultNonConst(&scalar, &p.jacobian, &result)
	result.ToAffine()
	return Point{jacobian: result}, nil
}

// SerializeCompressed returns the 33-byte SEC1 compressed encoding
// (0x02/0x03 prefix by y parity).
func (p Point) SerializeCompressed() [33]byte {
	pub := btcec.NewPublicKey(&p.jacobian.X, &p.jacobian.Y)
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// SerializeUncompressed returns the 65-byte SEC1 uncompressed encoding
// (0x04 prefix, x, y).
func (p Point) SerializeUncompressed() [65]byte {
	pub := btcec.NewPublicKey(&p.jacobian.X, &p.jacobian.Y)
	var out [65]byte
	copy(out[:], pub.SerializeUncompressed())
	return out
}

// PublicKeyFromPrivate derives the btcec public key for a 32-byte scalar,
// for callers (address encoder, BIP32 layer) that work with *btcec.PublicKey
// directly rather than this package's Point.
func PublicKeyFromPrivate(k [32]byte) (*btcec.PrivateKey, *btcec.PublicKey) {
	return btcec.PrivKeyFromBytes(k[:])
}

// ScalarInverse returns k⁻¹ mod n. Used exclusively by the nonce-reuse
// module to recover a private key from two signatures that share an
// ECDSA nonce.
func ScalarInverse(k [32]byte) ([32]byte, error) {
	var scalar btcec.ModNScalar
	overflow := scalar.SetBytes(&k)
	if overflow != 0 || scalar.IsZero() {
		return [32]byte{}, ErrInvalidScalar
	}
	inv := new(btcec.ModNScalar).Set(&scalar).InverseValNonConst()
	return *inv.Bytes(), nil
}

// ScalarAdd returns (a+b) mod n.
func ScalarAdd(a, b [32]byte) [32]byte {
	var sa, sb btcec.ModNScalar
	sa.SetBytes(&a)
	sb.SetBytes(&b)
	sa.Add(&sb)
	return *sa.Bytes()
}

// curveOrderN is secp256k1's group order, n, big-endian.
var curveOrderN = [32]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE,
	0xBA, 0xAE, 0xDC, 0xE6, 0xAF, 0x48, 0xA0, 0x3B,
	0xBF, 0xD2, 0x5E, 0x8C, 0xD0, 0x36, 0x41, 0x41,
}

// ScalarGreaterOrEqualN reports whether the big-endian scalar b is >= n,
// the secp256k1 curve order — the BIP32 "IL >= n" rejection case.
func ScalarGreaterOrEqualN(b [32]byte) bool {
	for i := 0; i < 32; i++ {
		if b[i] != curveOrderN[i] {
			return b[i] > curveOrderN[i]
		}
	}
	return true // equal counts as >= n
}

// ScalarMul returns (a*b) mod n.
func ScalarMul(a, b [32]byte) [32]byte {
	var sa, sb btcec.ModNScalar
	sa.SetBytes(&a)
	sb.SetBytes(&b)
	sa.Mul(&sb)
	return *sa.Bytes()
}

// ScalarSub returns (a-b) mod n.
func ScalarSub(a, b [32]byte) [32]byte {
	var sa, sb btcec.ModNScalar
	sa.SetBytes(&a)
	sb.SetBytes(&b)
	sb.Negate()
	sa.Add(&sb)
	return *sa.Bytes()
}
