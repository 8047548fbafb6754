package prng

// Minstd is the "minimal standard" Lehmer generator, in its two common
// multiplier variants. The Trust Wallet iOS app's entropy weakness traces
// to C++ <random>'s minstd_rand0 (A=16807) or minstd_rand (A=48271),
// both implementations of s = (A*s) mod (2^31 - 1).
type Minstd struct {
	state      uint32
	multiplier uint64
}

const minstdModulus = 2147483647 // 2^31 - 1

// NewMinstdRand0 constructs the A=16807 variant (the original 1969 Lehmer
// constant, minstd_rand0 in C++11 <random>).
func NewMinstdRand0(seed uint32) *Minstd {
	return newMinstd(seed, 16807)
}

// NewMinstdRand constructs the A=48271 variant (the Park-Miller revision,
// minstd_rand in C++11 <random>).
func NewMinstdRand(seed uint32) *Minstd {
	return newMinstd(seed, 48271)
}

func newMinstd(seed uint32, multiplier uint64) *Minstd {
	s := seed % minstdModulus
	if s == 0 {
		s = 1 // the generator is degenerate at state zero; coerce non-zero
	}
	return &Minstd{state: s, multiplier: multiplier}
}

// NextU32 advances s = (A*s) mod (2^31-1) and returns the new state.
func (g *Minstd) NextU32() uint32 {
	g.state = uint32((g.multiplier * uint64(g.state)) % minstdModulus)
	return g.state
}
