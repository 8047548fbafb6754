package modules

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/weakwallet/scanner/internal/address"
	"github.com/weakwallet/scanner/internal/ecc"
	"github.com/weakwallet/scanner/internal/hdwallet"
)

// Candidate is one seed's computed addresses, ready for target-set
// lookup. PrivateKey is carried alongside so a confirmed match can be
// reported with the key needed to sweep it, not just the address that
// matched.
type Candidate struct {
	Seed       uint64
	Module     string
	Addresses  []address.Result
	Path       string
	PrivateKey [32]byte
}

// Emit runs the full seed -> entropy -> key material -> address chain
// for one seed under a module definition, using Paths as given (account
// and address index fixed at whatever Paths already specifies).
func Emit(d Definition, seed uint64) (Candidate, error) {
	entropy, err := SeedToEntropy(d, seed)
	if err != nil {
		return Candidate{}, fmt.Errorf("modules: seed to entropy: %w", err)
	}

	switch d.Mode {
	case ModeDirectKey:
		return emitDirectKey(d, seed, entropy)
	case ModeBIP32:
		return emitBIP32(d, seed, d.Paths, entropy)
	default:
		return Candidate{}, fmt.Errorf("modules: unknown mode %d", d.Mode)
	}
}

// EmitAll is Emit generalized over a module's Purposes x AccountIndices
// x AddressIndices product (BIP44/49/84 purpose, Cake Wallet's `m/0'/c/i`
// account slot c or a BIP44 change chain, and the address index). For
// modules that leave all three empty it returns Emit's single candidate;
// ModeDirectKey modules have no path concept and always return one.
func EmitAll(d Definition, seed uint64) ([]Candidate, error) {
	if d.Mode != ModeBIP32 || (len(d.Purposes) == 0 && len(d.AccountIndices) == 0 && len(d.AddressIndices) == 0) {
		c, err := Emit(d, seed)
		if err != nil {
			return nil, err
		}
		return []Candidate{c}, nil
	}

	entropy, err := SeedToEntropy(d, seed)
	if err != nil {
		return nil, fmt.Errorf("modules: seed to entropy: %w", err)
	}
	if len(d.Paths) < 2 {
		return nil, fmt.Errorf("modules: %s: path expansion set but Paths too short", d.Name)
	}

	purposes := d.Purposes
	if len(purposes) == 0 {
		purposes = []uint32{d.Paths[0].Index}
	}
	accounts := d.AccountIndices
	if len(accounts) == 0 {
		accounts = []uint32{d.Paths[len(d.Paths)-2].Index}
	}
	indices := d.AddressIndices
	if len(indices) == 0 {
		indices = []uint32{d.Paths[len(d.Paths)-1].Index}
	}

	candidates := make([]Candidate, 0, len(purposes)*len(accounts)*len(indices))
	for _, purpose := range purposes {
		for _, account := range accounts {
			for _, idx := range indices {
				paths := make([]PathStep, len(d.Paths))
				copy(paths, d.Paths)
				paths[0].Index = purpose
				paths[len(paths)-2].Index = account
				paths[len(paths)-1].Index = idx

				c, err := emitBIP32(d, seed, paths, entropy)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, c)
			}
		}
	}
	return candidates, nil
}

func emitDirectKey(d Definition, seed uint64, entropy []byte) (Candidate, error) {
	var scalar [32]byte
	copy(scalar[:], entropy)

	_, pub := btcec.PrivKeyFromBytes(scalar[:])
	results := make([]address.Result, 0, len(d.AddressKinds))
	for _, kind := range d.AddressKinds {
		r, err := address.Derive(pub, kind)
		if err != nil {
			return Candidate{}, fmt.Errorf("modules: derive address: %w", err)
		}
		results = append(results, r)
	}
	return Candidate{Seed: seed, Module: d.Name, Addresses: results, PrivateKey: scalar}, nil
}

func emitBIP32(d Definition, seed uint64, paths []hdwallet.PathStep, entropy []byte) (Candidate, error) {
	mnemonic, err := hdwallet.EntropyToMnemonic(entropy)
	if err != nil {
		return Candidate{}, fmt.Errorf("modules: entropy to mnemonic: %w", err)
	}

	var masterSeed []byte
	if d.UseElectrum {
		masterSeed = hdwallet.MnemonicToElectrumSeed(mnemonic, d.Passphrase)
	} else {
		masterSeed = hdwallet.MnemonicToSeed(mnemonic, d.Passphrase)
	}

	master := hdwallet.MasterFromSeed(masterSeed)
	leaf, err := hdwallet.DerivePath(master, paths)
	if err != nil {
		return Candidate{}, fmt.Errorf("modules: derive path: %w", err)
	}

	_, pub := ecc.PublicKeyFromPrivate(leaf.Key)
	results := make([]address.Result, 0, len(d.AddressKinds))
	for _, kind := range d.AddressKinds {
		r, err := address.Derive(pub, kind)
		if err != nil {
			return Candidate{}, fmt.Errorf("modules: derive address: %w", err)
		}
		results = append(results, r)
	}
	return Candidate{Seed: seed, Module: d.Name, Addresses: results, Path: pathString(paths), PrivateKey: leaf.Key}, nil
}

func pathString(steps []hdwallet.PathStep) string {
	s := "m"
	for _, step := range steps {
		s += "/"
		s += itoa(step.Index)
		if step.Hardened {
			s += "'"
		}
	}
	return s
}

func itoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
