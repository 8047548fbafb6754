package pipeline

import (
	"context"
	"testing"

	"github.com/weakwallet/scanner/internal/modules"
	"github.com/weakwallet/scanner/internal/target"
)

// TestRunMilkSadSingleSeedMatch is the Milk Sad end-to-end scenario:
// scanning just seed=0 against a target set containing exactly that
// seed's address must produce exactly one match.
func TestRunMilkSadSingleSeedMatch(t *testing.T) {
	def := modules.Definitions["milksad"]
	cand, err := modules.Emit(def, 0)
	if err != nil {
		t.Fatalf("Emit(milksad, 0): %v", err)
	}
	set := target.Build([]target.Entry{
		{Program: cand.Addresses[0].Program, Label: "milksad-seed-0"},
	})

	result, err := Run(context.Background(), Config{
		Module:    "milksad",
		SeedStart: 0,
		SeedEnd:   1,
		Workers:   2,
	}, set)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(result.Matches), result.Matches)
	}
	if result.Matches[0].Seed != 0 {
		t.Fatalf("match seed = %d, want 0", result.Matches[0].Seed)
	}
	if result.Progress.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", result.Progress.Attempts)
	}
}

// TestRunDeterministicMatchSetAcrossWorkerCounts checks that the set of
// matches found does not depend on how many workers process the range.
func TestRunDeterministicMatchSetAcrossWorkerCounts(t *testing.T) {
	def := modules.Definitions["milksad"]
	var entries []target.Entry
	for _, seed := range []uint64{3, 40, 77} {
		cand, err := modules.Emit(def, seed)
		if err != nil {
			t.Fatalf("Emit(milksad, %d): %v", seed, err)
		}
		entries = append(entries, target.Entry{Program: cand.Addresses[0].Program, Label: "x"})
	}
	set := target.Build(entries)

	oneWorker, err := Run(context.Background(), Config{Module: "milksad", SeedStart: 0, SeedEnd: 99, Workers: 1, BatchSize: 10}, set)
	if err != nil {
		t.Fatalf("Run(1 worker): %v", err)
	}
	fourWorkers, err := Run(context.Background(), Config{Module: "milksad", SeedStart: 0, SeedEnd: 99, Workers: 4, BatchSize: 10}, set)
	if err != nil {
		t.Fatalf("Run(4 workers): %v", err)
	}

	if len(oneWorker.Matches) != 3 || len(fourWorkers.Matches) != 3 {
		t.Fatalf("got %d/%d matches, want 3/3", len(oneWorker.Matches), len(fourWorkers.Matches))
	}

	seedsOf := func(matches []MatchRecord) map[uint64]bool {
		m := make(map[uint64]bool)
		for _, rec := range matches {
			m[rec.Seed] = true
		}
		return m
	}
	a, b := seedsOf(oneWorker.Matches), seedsOf(fourWorkers.Matches)
	for seed := range a {
		if !b[seed] {
			t.Fatalf("seed %d matched with 1 worker but not 4", seed)
		}
	}
}

func TestRunUnknownModule(t *testing.T) {
	set := target.Build(nil)
	_, err := Run(context.Background(), Config{Module: "does-not-exist", SeedStart: 0, SeedEnd: 1}, set)
	if err == nil {
		t.Fatalf("expected an error for an unknown module")
	}
}

func TestRunGPUBackendWarnsAndFallsBackForBIP32Module(t *testing.T) {
	set := target.Build(nil)
	result, err := Run(context.Background(), Config{
		Module:    "milksad",
		SeedStart: 0,
		SeedEnd:   0,
		Workers:   1,
		Backend:   BackendGPU,
	}, set)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning about GPU ineligibility, got %v", result.Warnings)
	}
}

func TestRunCancellation(t *testing.T) {
	set := target.Build(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := Run(ctx, Config{Module: "milksad", SeedStart: 0, SeedEnd: 1 << 20, Workers: 2}, set)
	if err == nil {
		t.Fatalf("expected context.Canceled, got nil (attempts=%d)", result.Progress.Attempts)
	}
}
