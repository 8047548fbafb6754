package target

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/weakwallet/scanner/internal/hashes"
)

// splitHash derives two independent 64-bit hashes of key for the Bloom
// filter's double-hashing scheme: the first 8 bytes of SHA-256(key) (the
// scanner's own hash primitive, already wired for C1) and a 64-bit
// FNV-1a hash (stdlib hash/fnv — no ecosystem library in this pack
// supplies a second, independent general-purpose hash, and FNV-1a is the
// standard library's own answer for exactly this case).
func splitHash(key []byte) (h1, h2 uint64) {
	digest := hashes.SHA256(key)
	h1 = binary.LittleEndian.Uint64(digest[:8])

	f := fnv.New64a()
	f.Write(key)
	h2 = f.Sum64()
	return h1, h2
}
