// Package prng implements the small, historically-weak pseudo-random
// generators that browsers, mobile runtimes, and standard libraries
// shipped during 2011-2024. None of these are cryptographically secure;
// re-implementing them bit-exactly is the entire point of the weakness
// modules that sit on top of this package.
package prng

// Source produces a stream of 32-bit words from a deterministic seed.
// Every generator with a 32-bit output word implements it; the 64-bit
// generators implement Source64 instead. Extraction rules in extract.go
// turn that word stream into entropy bytes.
type Source interface {
	// NextU32 returns the next 32-bit output word.
	NextU32() uint32
}

// Source64 is implemented by generators whose native output word is
// 64 bits (MT19937-64, Dart's xorshift128+).
type Source64 interface {
	NextU64() uint64
}
