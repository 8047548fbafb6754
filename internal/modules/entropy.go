package modules

import (
	"errors"
	"fmt"

	"github.com/weakwallet/scanner/internal/prng"
)

// ErrUnsupportedCombination is returned when a Definition pairs a PRNG
// and an ExtractorKind this package has no dispatch rule for.
var ErrUnsupportedCombination = errors.New("modules: unsupported prng/extractor combination")

// SeedToEntropy runs the module's PRNG/extractor pipeline over seed and
// returns EntropyLen bytes of entropy (or key material, for
// ModeDirectKey modules).
func SeedToEntropy(d Definition, seed uint64) ([]byte, error) {
	switch d.Extractor {
	case ExtractMSB:
		src, err := newSource32(d.PRNG, seed)
		if err != nil {
			return nil, err
		}
		return prng.ExtractMSBBytes(src, d.EntropyLen), nil

	case ExtractLSB:
		src, err := newSource32(d.PRNG, seed)
		if err != nil {
			return nil, err
		}
		return prng.ExtractLSBBytes(src, d.EntropyLen), nil

	case ExtractByteWiseLCG:
		src, err := newSource32(d.PRNG, seed)
		if err != nil {
			return nil, err
		}
		return prng.ExtractByteWiseLCG(src, d.EntropyLen), nil

	case ExtractFullWordLE:
		if d.PRNG != PRNGJavaLCG {
			src64, err := newSource64(d.PRNG, seed)
			if err != nil {
				return nil, err
			}
			return prng.ExtractFullWordLE64(src64, d.EntropyLen), nil
		}
		// Java LCG only has a 32-bit NextU32; adapt it to Source64 by
		// pairing two consecutive draws per 64-bit word.
		gen := prng.NewJavaLCG(seed)
		return prng.ExtractFullWordLE64(javaLCGAsSource64{gen}, d.EntropyLen), nil

	case ExtractDartNextInt256:
		if d.PRNG != PRNGDartXorshift128Plus {
			return nil, ErrUnsupportedCombination
		}
		gen := prng.NewDartXorshift128Plus(seed)
		return prng.ExtractDartNextInt256(gen, d.EntropyLen), nil

	case ExtractPoolARC4:
		src, err := newSource32(d.PRNG, seed)
		if err != nil {
			return nil, err
		}
		timestampSalt := uint32(seed)
		return prng.ExtractPoolAndARC4(src, timestampSalt)

	default:
		return nil, ErrUnsupportedCombination
	}
}

func newSource32(kind PRNGKind, seed uint64) (prng.Source, error) {
	switch kind {
	case PRNGMT19937:
		return prng.NewMT19937(uint32(seed)), nil
	case PRNGMWC1616:
		return prng.NewMWC1616(uint32(seed)), nil
	case PRNGMSVCLCG:
		return prng.NewMSVCLCG(uint32(seed)), nil
	case PRNGMinstdRand0:
		return prng.NewMinstdRand0(uint32(seed)), nil
	case PRNGMinstdRand:
		return prng.NewMinstdRand(uint32(seed)), nil
	default:
		return nil, fmt.Errorf("%w: prng kind %d has no 32-bit source", ErrUnsupportedCombination, kind)
	}
}

func newSource64(kind PRNGKind, seed uint64) (prng.Source64, error) {
	switch kind {
	case PRNGMT19937_64:
		return prng.NewMT19937_64(seed), nil
	case PRNGDartXorshift128Plus:
		return prng.NewDartXorshift128Plus(seed), nil
	default:
		return nil, fmt.Errorf("%w: prng kind %d has no 64-bit source", ErrUnsupportedCombination, kind)
	}
}

// javaLCGAsSource64 packs two consecutive Java LCG 32-bit draws into one
// 64-bit word (high word first), so the full-word-LE extraction rule can
// run over a generator whose native output is 32 bits.
type javaLCGAsSource64 struct {
	gen *prng.JavaLCG
}

func (j javaLCGAsSource64) NextU64() uint64 {
	hi := uint64(j.gen.NextU32())
	lo := uint64(j.gen.NextU32())
	return hi<<32 | lo
}
