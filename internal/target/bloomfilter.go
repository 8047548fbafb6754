// Package target implements the scanner's target-address set: a Bloom
// filter in front of an exact map, so a pipeline worker can reject
// the overwhelming majority of non-matching candidates with a handful of
// bit tests before ever touching the map.
package target

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// bloomFilter is a classic k-hash Bloom filter backed by bits-and-blooms/
// bitset. It never reports a false negative; its false-positive rate is
// bounded by the m/n/k sizing chosen in newBloomFilter. Bits are not
// grouped into cache-line blocks; each probe indexes the whole bitset.
type bloomFilter struct {
	bits *bitset.BitSet
	m    uint
	k    uint
}

// newBloomFilter sizes a filter for n expected elements at the given
// target false-positive rate, using the standard m = -n*ln(p)/(ln2)^2,
// k = (m/n)*ln2 formulas.
func newBloomFilter(n int, falsePositiveRate float64) *bloomFilter {
	if n < 1 {
		n = 1
	}
	m := optimalM(n, falsePositiveRate)
	k := optimalK(m, n)
	return &bloomFilter{bits: bitset.New(m), m: m, k: k}
}

func optimalM(n int, p float64) uint {
	raw := math.Ceil(-1 * float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	if raw < 1 {
		raw = 1
	}
	return uint(raw)
}

func optimalK(m uint, n int) uint {
	raw := math.Round(float64(m) / float64(n) * math.Ln2)
	if raw < 1 {
		raw = 1
	}
	return uint(raw)
}

// add sets the k bit positions derived from key's double-hash.
func (f *bloomFilter) add(key []byte) {
	h1, h2 := splitHash(key)
	for i := uint(0); i < f.k; i++ {
		f.bits.Set(f.index(h1, h2, i))
	}
}

// mayContain reports whether key could be a member. false means key is
// definitely not a member; true means it might be (check the exact map).
func (f *bloomFilter) mayContain(key []byte) bool {
	h1, h2 := splitHash(key)
	for i := uint(0); i < f.k; i++ {
		if !f.bits.Test(f.index(h1, h2, i)) {
			return false
		}
	}
	return true
}

// index computes the i-th probe position using Kirsch-Mitzenmacher
// double hashing: h1 + i*h2 mod m, avoiding k independent hash
// functions.
func (f *bloomFilter) index(h1, h2 uint64, i uint) uint {
	combined := h1 + uint64(i)*h2
	return uint(combined % uint64(f.m))
}
