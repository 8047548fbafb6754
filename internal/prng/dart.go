package prng

// DartXorshift128Plus mirrors the xorshift128+ generator Dart's core
// `Random` class uses when seeded explicitly, the source of the Cake
// Wallet weakness.
//
// The NextInt256 extraction below is pinned to a specific Dart core
// library release rather than verified against a live SDK; a future
// Dart release changing the core library's algorithm would make this
// drift. Cross-check against a current Dart reference before relying
// on it for a real recovery.
type DartXorshift128Plus struct {
	s0, s1 uint64
}

// NewDartXorshift128Plus seeds from a 64-bit microsecond timestamp:
// s0=seed, s1=seed^0x5DEECE66D.
func NewDartXorshift128Plus(seed uint64) *DartXorshift128Plus {
	return &DartXorshift128Plus{s0: seed, s1: seed ^ 0x5DEECE66D}
}

func rotl64(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// NextU64 advances the xorshift128+ state and returns the sum of the
// updated words: s0' = rotl(s0,55) ^ (s1 ^ (s1<<14)), s1' = rotl(s1,36),
// out = s0'+s1'.
func (g *DartXorshift128Plus) NextU64() uint64 {
	s0, s1 := g.s0, g.s1
	newS0 := rotl64(s0, 55) ^ (s1 ^ (s1 << 14))
	newS1 := rotl64(s1, 36)
	g.s0, g.s1 = newS0, newS1
	return newS0 + newS1
}

// NextInt256 draws one 64-bit word and reduces it to a single byte in
// [0,256) via `((hi*256) + ((lo*256) >> 32)) >> 32`, where hi/lo are the
// high/low 32-bit halves of the drawn word — Dart's `next_int(256)`
// construction.
func (g *DartXorshift128Plus) NextInt256() byte {
	word := g.NextU64()
	hi := word >> 32
	lo := word & 0xFFFFFFFF
	val := ((hi * 256) + ((lo * 256) >> 32)) >> 32
	return byte(val)
}
