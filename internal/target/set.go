package target

// defaultFalsePositiveRate bounds the Bloom filter's false-positive rate
// to ~0.1%.
const defaultFalsePositiveRate = 0.001

// Entry is one address the scanner watches for, keyed by its raw 20-byte
// program (hash160 for Bitcoin kinds, the low 20 bytes of Keccak256 for
// Ethereum) and carrying a caller-supplied label (e.g. the original
// address string, or a case identifier) for reporting.
type Entry struct {
	Program [20]byte
	Label   string
}

// Set is the scanner's target-address set: a Bloom filter in front of an
// exact map. Lookup never returns a false negative; Build is O(N) and the
// set is immutable afterward, which is what lets every pipeline worker
// share one *Set without locking.
type Set struct {
	filter *bloomFilter
	exact  map[[20]byte]string
}

// Build constructs a target set from a slice of entries. The set is
// immutable after Build returns; DO NOT mutate a *Set concurrently with
// pipeline workers calling Lookup.
func Build(entries []Entry) *Set {
	filter := newBloomFilter(len(entries), defaultFalsePositiveRate)
	exact := make(map[[20]byte]string, len(entries))
	for _, e := range entries {
		filter.add(e.Program[:])
		exact[e.Program] = e.Label
	}
	return &Set{filter: filter, exact: exact}
}

// Lookup reports whether program is a tracked target, and if so, its
// label. It probes the Bloom filter first; a negative there is decisive.
// A positive falls through to the exact map, which is the only source of
// truth for the boolean result — the Bloom filter can never turn a
// genuine miss into a false hit.
func (s *Set) Lookup(program [20]byte) (label string, ok bool) {
	if !s.filter.mayContain(program[:]) {
		return "", false
	}
	label, ok = s.exact[program]
	return label, ok
}

// Len returns the number of tracked targets.
func (s *Set) Len() int {
	return len(s.exact)
}
