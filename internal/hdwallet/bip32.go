package hdwallet

import (
	"encoding/binary"
	"errors"

	"github.com/weakwallet/scanner/internal/ecc"
	"github.com/weakwallet/scanner/internal/hashes"
)

// ErrDerivationFailed is returned on the rare tweak-out-of-range case:
// IL >= n, or (parent + IL) mod n == 0. Callers treat this as a
// per-candidate failure they may abort rather than reroll.
var ErrDerivationFailed = errors.New("hdwallet: child key derivation failed (tweak out of range)")

// HardenedOffset is BIP32's 2^31 hardened-child boundary.
const HardenedOffset = uint32(1) << 31

// ExtendedKey is a BIP32 extended private key: a 32-byte key, 32-byte
// chain code, and enough parent bookkeeping to support continued
// derivation (depth, parent fingerprint, own child index).
type ExtendedKey struct {
	Key        [32]byte
	ChainCode  [32]byte
	Depth      uint8
	ParentFP   [4]byte
	ChildIndex uint32
}

// bitcoinSeedKey is the fixed HMAC key BIP32 uses to derive the master
// extended key from the BIP39 seed.
var bitcoinSeedKey = []byte("Bitcoin seed")

// MasterFromSeed computes the BIP32 master extended key:
// I = HMAC-SHA512("Bitcoin seed", seed); key = I[:32]; chainCode = I[32:].
func MasterFromSeed(seed []byte) ExtendedKey {
	i := hashes.HMACSHA512(bitcoinSeedKey, seed)
	var k ExtendedKey
	copy(k.Key[:], i[:32])
	copy(k.ChainCode[:], i[32:])
	k.Depth = 0
	return k
}

// compressedPub returns the 33-byte compressed public key for an
// extended private key.
func compressedPub(k ExtendedKey) ([33]byte, error) {
	p, err := ecc.ScalarMulG(k.Key)
	if err != nil {
		return [33]byte{}, err
	}
	return p.SerializeCompressed(), nil
}

// fingerprint returns the first 4 bytes of hash160(compressed pubkey),
// the BIP32 parent-fingerprint field.
func fingerprint(k ExtendedKey) ([4]byte, error) {
	pub, err := compressedPub(k)
	if err != nil {
		return [4]byte{}, err
	}
	h := hashes.Hash160(pub[:])
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp, nil
}

// Derive computes a single BIP32 child key. Derivation is hardened iff
// index >= HardenedOffset: the HMAC input is 0x00||parent_priv||index_be
// for hardened children, or compressed_parent_pub||index_be for normal
// children. child_key = (parent + IL) mod n; child_chain = IR.
func Derive(parent ExtendedKey, index uint32) (ExtendedKey, error) {
	var data [37]byte
	hardened := index >= HardenedOffset
	if hardened {
		data[0] = 0x00
		copy(data[1:33], parent.Key[:])
	} else {
		pub, err := compressedPub(parent)
		if err != nil {
			return ExtendedKey{}, err
		}
		copy(data[0:33], pub[:])
	}
	binary.BigEndian.PutUint32(data[33:37], index)

	i := hashes.HMACSHA512(parent.ChainCode[:], data[:])
	var il [32]byte
	copy(il[:], i[:32])

	if ecc.ScalarGreaterOrEqualN(il) {
		return ExtendedKey{}, ErrDerivationFailed
	}
	childKey := ecc.ScalarAdd(parent.Key, il)
	if isZero32(childKey) {
		return ExtendedKey{}, ErrDerivationFailed
	}

	parentFP, err := fingerprint(parent)
	if err != nil {
		return ExtendedKey{}, err
	}

	var child ExtendedKey
	child.Key = childKey
	copy(child.ChainCode[:], i[32:])
	child.Depth = parent.Depth + 1
	child.ParentFP = parentFP
	child.ChildIndex = index
	return child, nil
}

// PathStep is one (index, hardened) component of a derivation path.
type PathStep struct {
	Index    uint32
	Hardened bool
}

// ResolvedIndex returns the raw BIP32 index for a path step (index with
// the hardened bit set when Hardened is true).
func (p PathStep) ResolvedIndex() uint32 {
	if p.Hardened {
		return p.Index | HardenedOffset
	}
	return p.Index
}

// DerivePath walks master through a sequence of path steps, returning the
// leaf extended key.
func DerivePath(master ExtendedKey, path []PathStep) (ExtendedKey, error) {
	current := master
	for _, step := range path {
		next, err := Derive(current, step.ResolvedIndex())
		if err != nil {
			return ExtendedKey{}, err
		}
		current = next
	}
	return current, nil
}

func isZero32(b [32]byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
