// Package pipeline drives a weakness module's seed range across a
// worker pool, matching every candidate's addresses against a target
// set. One goroutine per worker claims batches from a shared counter
// and collects every match, rather than racing to a single result; an
// atomic attempts counter is reported once, in the final Result.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/weakwallet/scanner/internal/modules"
	"github.com/weakwallet/scanner/internal/target"
)

// defaultBatchSize is the number of seeds a worker claims at a time.
const defaultBatchSize = 1 << 16

// derivationStormWindow and derivationStormRate bound the fraction of
// per-candidate derivation failures (BIP32 "IL >= n" / child-is-zero)
// tolerated over any window before the pipeline aborts the run:
// legitimate BIP32 failures are astronomically rare, so a rate this
// high signals a bug in the derivation chain, not bad luck.
const (
	derivationStormWindow = 10000
	derivationStormRate   = 0.001
)

// ErrDerivationStorm is returned when the observed derivation-failure
// rate exceeds derivationStormRate over a derivationStormWindow-sized
// span of candidates.
var ErrDerivationStorm = fmt.Errorf("pipeline: derivation failure rate exceeded %.4f over a %d-candidate window", derivationStormRate, derivationStormWindow)

// Backend records which hardware the caller asked for. Run derives every
// candidate on the CPU whichever value is set; BackendGPU only adds a
// warning when the module is not GPU-eligible.
type Backend int

const (
	BackendCPU Backend = iota
	BackendGPU
)

// Config is the external "module parameters" shape a caller builds: the
// module to scan, its seed range, and execution knobs.
type Config struct {
	Module    string
	SeedStart uint64
	SeedEnd   uint64 // inclusive
	Workers   int
	Backend   Backend
	BatchSize uint64
}

// Progress is the attempts/elapsed snapshot taken when a run ends. Result.Warnings
// carries anything noteworthy that happened along the way (e.g. GPU
// backend unavailable, falling back to CPU).
type Progress struct {
	Attempts uint64
	Elapsed  time.Duration
}

// Result is everything a Run produced.
type Result struct {
	Matches  []MatchRecord
	Progress Progress
	Warnings []string
}

// stormWindow tracks a rolling count of attempts/failures and reports
// whether the failure rate over the most recently completed window
// exceeded derivationStormRate. It resets every derivationStormWindow
// attempts, so a single bad window triggers the storm, not a slow
// accumulation diluted by a long healthy run beforehand.
type stormWindow struct {
	attempts uint64
	failures uint64
}

func (w *stormWindow) observe(failed bool) (stormed bool) {
	attempts := atomic.AddUint64(&w.attempts, 1)
	var failures uint64
	if failed {
		failures = atomic.AddUint64(&w.failures, 1)
	} else {
		failures = atomic.LoadUint64(&w.failures)
	}
	if attempts < derivationStormWindow {
		return false
	}
	rate := float64(failures) / float64(attempts)
	atomic.StoreUint64(&w.attempts, 0)
	atomic.StoreUint64(&w.failures, 0)
	return rate > derivationStormRate
}

// Run partitions [SeedStart, SeedEnd] across Workers goroutines, derives
// every candidate under Module, and checks it against set. It blocks
// until every seed has been processed, ctx is cancelled, or a
// derivation storm is detected — a fire-and-forget background run has
// no use case for a batch scanner, so Run returns the final Result
// directly rather than streaming over channels.
func Run(ctx context.Context, cfg Config, set *target.Set) (Result, error) {
	def, ok := modules.Definitions[cfg.Module]
	if !ok {
		return Result{}, fmt.Errorf("pipeline: unknown module %q", cfg.Module)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}

	var warnings []string
	if cfg.Backend == BackendGPU && !def.GPUEligible() {
		warnings = append(warnings, fmt.Sprintf("module %q derives through BIP32 and is not GPU-eligible; falling back to CPU", cfg.Module))
	}

	var nextBatchStart = cfg.SeedStart
	var attempts uint64
	var window stormWindow
	var mu sync.Mutex // guards matches
	var matches []MatchRecord
	stormCh := make(chan struct{})
	var stormOnce sync.Once

	startTime := time.Now()
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-stormCh:
					return
				default:
				}

				batchStart := atomic.AddUint64(&nextBatchStart, batchSize) - batchSize
				if batchStart > cfg.SeedEnd {
					return
				}
				batchEnd := batchStart + batchSize - 1
				if batchEnd > cfg.SeedEnd || batchEnd < batchStart /* overflow */ {
					batchEnd = cfg.SeedEnd
				}

				for seed := batchStart; ; seed++ {
					select {
					case <-ctx.Done():
						return
					case <-stormCh:
						return
					default:
					}

					cands, derr := modules.EmitAll(def, seed)
					atomic.AddUint64(&attempts, 1)
					if window.observe(derr != nil) {
						stormOnce.Do(func() { close(stormCh) })
						return
					}

					if derr == nil {
						for _, cand := range cands {
							// P2PKH and P2WPKH encode the same hash160, so one
							// target program is reported once per leaf.
							matched := make(map[[20]byte]bool, len(cand.Addresses))
							for _, addr := range cand.Addresses {
								if matched[addr.Program] {
									continue
								}
								label, found := set.Lookup(addr.Program)
								if !found {
									continue
								}
								matched[addr.Program] = true
								mu.Lock()
								matches = append(matches, MatchRecord{
									Module:      cand.Module,
									Seed:        cand.Seed,
									Path:        cand.Path,
									Address:     addr.Address,
									Kind:        addr.Kind,
									TargetLabel: label,
									PrivateKey:  cand.PrivateKey,
								})
								mu.Unlock()
							}
						}
					}

					if seed == batchEnd {
						break
					}
				}
			}
		}()
	}

	wg.Wait()

	result := Result{
		Matches:  matches,
		Progress: Progress{Attempts: atomic.LoadUint64(&attempts), Elapsed: time.Since(startTime)},
		Warnings: warnings,
	}

	select {
	case <-stormCh:
		return result, ErrDerivationStorm
	default:
	}
	if ctx.Err() != nil {
		return result, ctx.Err()
	}
	return result, nil
}
