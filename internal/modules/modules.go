// Package modules defines the scanner's six seed-driven weakness
// definitions: the fixed (PRNG, extraction rule, entropy length,
// derivation path, address kind) combinations a real wallet bug
// produced, plus the differently-shaped ECDSA nonce-reuse recovery
// module (seven modules in total).
package modules

import (
	"github.com/weakwallet/scanner/internal/address"
	"github.com/weakwallet/scanner/internal/hdwallet"
)

// ExtractorKind names one of the six entropy-extraction rules a module
// pairs with its PRNG.
type ExtractorKind int

const (
	ExtractMSB ExtractorKind = iota
	ExtractLSB
	ExtractFullWordLE
	ExtractByteWiseLCG
	ExtractPoolARC4
	ExtractDartNextInt256
)

// PRNGKind names which of internal/prng's generators a module is built
// on.
type PRNGKind int

const (
	PRNGMT19937 PRNGKind = iota
	PRNGMT19937_64
	PRNGJavaLCG
	PRNGMWC1616
	PRNGMSVCLCG
	PRNGMinstdRand0
	PRNGMinstdRand
	PRNGDartXorshift128Plus
)

// Mode distinguishes modules that feed their entropy through full
// BIP32/BIP39 derivation from ones that use the entropy as a private key
// scalar directly (Randstorm, Profanity-style vanity generators).
type Mode int

const (
	ModeBIP32 Mode = iota
	ModeDirectKey
)

// PathStep mirrors hdwallet.PathStep; modules declare paths as plain
// data so Definition can be a value type.
type PathStep = hdwallet.PathStep

// Definition describes one seed-space weakness: how to turn a seed into
// entropy, entropy into key material (BIP32 derivation, or direct key),
// and the address kinds to compute and check per candidate.
type Definition struct {
	Name         string
	Mode         Mode
	PRNG         PRNGKind
	Extractor    ExtractorKind
	EntropyLen   int // bytes
	UseElectrum  bool
	Passphrase   string
	Paths        []PathStep // ModeBIP32 only
	AddressKinds []address.Kind
	SeedMin      uint64
	SeedMax      uint64 // inclusive

	// Purposes, AccountIndices, and AddressIndices, when non-empty,
	// replace the first, second-to-last, and last entries of Paths with
	// every combination in their cartesian product. Purposes walks the
	// BIP44/49/84 purpose field (Milk Sad and Trust Wallet browser both
	// scan all three derivations at once); AccountIndices walks either a
	// BIP44 change chain (0/1) or Cake Wallet's `m/0'/c/i` account slot
	// c, whichever Paths places there; AddressIndices walks the address
	// index. Any left empty falls back to Paths' own value in that slot.
	// Kept short by default: real wallets rarely populate more than a
	// handful of accounts or addresses before a balance check would have
	// already flagged the wallet.
	Purposes       []uint32
	AccountIndices []uint32
	AddressIndices []uint32
}

// Definitions is the fixed catalog of the scanner's weakness modules,
// keyed by name.
var Definitions = map[string]Definition{
	"milksad": {
		Name:           "milksad",
		Mode:           ModeBIP32,
		PRNG:           PRNGMT19937,
		Extractor:      ExtractMSB,
		EntropyLen:     16,
		Paths:          []PathStep{{Index: 44, Hardened: true}, {Index: 0, Hardened: true}, {Index: 0, Hardened: true}, {Index: 0}, {Index: 0}},
		AddressKinds:   []address.Kind{address.P2PKH, address.P2SHP2WPKH, address.P2WPKH},
		SeedMin:        0,
		SeedMax:        0xFFFFFFFF,
		Purposes:       []uint32{44, 49, 84},
		AccountIndices: []uint32{0, 1},
		AddressIndices: []uint32{0, 1, 2, 3, 4},
	},
	"trustwallet_browser": {
		Name:         "trustwallet_browser",
		Mode:         ModeBIP32,
		PRNG:         PRNGMT19937,
		Extractor:    ExtractLSB,
		EntropyLen:   16,
		Paths:        []PathStep{{Index: 44, Hardened: true}, {Index: 0, Hardened: true}, {Index: 0, Hardened: true}, {Index: 0}, {Index: 0}},
		AddressKinds: []address.Kind{address.P2PKH, address.P2SHP2WPKH, address.P2WPKH},
		SeedMin:      0,
		SeedMax:      0xFFFFFFFF,
		Purposes:     []uint32{44, 49, 84},
	},
	"trustwallet_ios": {
		Name:         "trustwallet_ios",
		Mode:         ModeBIP32,
		PRNG:         PRNGMinstdRand0,
		Extractor:    ExtractByteWiseLCG,
		EntropyLen:   16,
		Paths:        []PathStep{{Index: 44, Hardened: true}, {Index: 0, Hardened: true}, {Index: 0, Hardened: true}, {Index: 0}, {Index: 0}},
		AddressKinds: []address.Kind{address.P2PKH},
		SeedMin:      1,
		SeedMax:      0x7FFFFFFE,
	},
	"cakewallet_dart": {
		Name:           "cakewallet_dart",
		Mode:           ModeBIP32,
		PRNG:           PRNGDartXorshift128Plus,
		Extractor:      ExtractDartNextInt256,
		EntropyLen:     32,
		UseElectrum:    true,
		Paths:          []PathStep{{Index: 0, Hardened: true}, {Index: 0}, {Index: 0}},
		AddressKinds:   []address.Kind{address.P2PKH, address.P2SHP2WPKH, address.P2WPKH},
		SeedMin:        0,
		SeedMax:        0xFFFFFFFFFFFF,
		AccountIndices: []uint32{0, 1, 2},
		AddressIndices: []uint32{0, 1, 2, 3, 4},
	},
	"randstorm": {
		Name:         "randstorm",
		Mode:         ModeDirectKey,
		PRNG:         PRNGMSVCLCG,
		Extractor:    ExtractPoolARC4,
		EntropyLen:   32,
		AddressKinds: []address.Kind{address.P2PKH},
		SeedMin:      0,
		SeedMax:      0xFFFFFFFF,
	},
	"profanity": {
		Name:         "profanity",
		Mode:         ModeDirectKey,
		PRNG:         PRNGMT19937_64,
		Extractor:    ExtractFullWordLE,
		EntropyLen:   32,
		AddressKinds: []address.Kind{address.ETH},
		SeedMin:      0,
		SeedMax:      0xFFFFFFFF,
	},
}

// GPUEligible reports whether a module's per-candidate work is pure
// secp256k1 scalar multiplication plus hashing (Mode == ModeDirectKey) —
// no BIP32 tweak math — and so can be batched on the GPU backend.
// BIP32-path modules fall back to CPU even when the pipeline is
// configured for a GPU backend.
func (d Definition) GPUEligible() bool {
	return d.Mode == ModeDirectKey
}
