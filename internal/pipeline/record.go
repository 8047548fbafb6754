package pipeline

import "github.com/weakwallet/scanner/internal/address"

// MatchRecord is one confirmed target-set hit: a module name, the seed
// that produced it, the derivation path (empty for ModeDirectKey
// modules), the matched address itself, and the private key that
// spends it.
type MatchRecord struct {
	Module      string
	Seed        uint64
	Path        string
	Address     string
	Kind        address.Kind
	TargetLabel string
	PrivateKey  [32]byte
}
