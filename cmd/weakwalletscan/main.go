// Command weakwalletscan scans a seed range under one weakness module
// against a target address list, reporting any candidate whose derived
// address matches. It is a flag-driven batch job: point it at a module,
// a seed range, and a target file, and it runs to completion or Ctrl-C.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/weakwallet/scanner/internal/console"
	"github.com/weakwallet/scanner/internal/modules"
	"github.com/weakwallet/scanner/internal/pipeline"
	"github.com/weakwallet/scanner/internal/target"
	"github.com/weakwallet/scanner/internal/wif"
)

func main() {
	moduleName := flag.String("module", "", "weakness module to scan (see -list)")
	seedStart := flag.Uint64("seed-start", 0, "first seed to scan (inclusive)")
	seedEnd := flag.Uint64("seed-end", 0, "last seed to scan (inclusive)")
	targetFile := flag.String("targets", "", "path to a target address list (address,label per line)")
	workers := flag.Int("workers", 0, "worker goroutines (default: runtime.NumCPU())")
	useGPU := flag.Bool("gpu", false, "request the GPU backend (derivation still runs on the CPU; warns for modules that are not GPU-eligible)")
	list := flag.Bool("list", false, "list known modules and exit")
	flag.Parse()

	if *list {
		printModuleList()
		return
	}

	if *moduleName == "" || *targetFile == "" {
		fmt.Fprintln(os.Stderr, "weakwalletscan: -module and -targets are required (see -list)")
		os.Exit(2)
	}

	f, err := os.Open(*targetFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weakwalletscan: open target file: %v\n", err)
		os.Exit(1)
	}
	entries, err := target.LoadCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "weakwalletscan: load targets: %v\n", err)
		os.Exit(1)
	}
	set := target.Build(entries)

	backend := pipeline.BackendCPU
	if *useGPU {
		backend = pipeline.BackendGPU
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	defer signal.Stop(sigCh)

	reporter := console.New(os.Stdout)

	result, err := pipeline.Run(ctx, pipeline.Config{
		Module:    *moduleName,
		SeedStart: *seedStart,
		SeedEnd:   *seedEnd,
		Workers:   *workers,
		Backend:   backend,
	}, set)

	for _, w := range result.Warnings {
		reporter.Warning(w)
	}
	reporter.Summary(len(result.Matches), result.Progress.Attempts, result.Progress.Elapsed)

	for _, m := range result.Matches {
		fmt.Printf("MATCH module=%s seed=%d path=%s kind=%s address=%s target=%s wif=%s\n",
			m.Module, m.Seed, m.Path, m.Kind, m.Address, m.TargetLabel, wif.Encode(m.PrivateKey, true))
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "weakwalletscan: %v\n", err)
		os.Exit(1)
	}
}

func printModuleList() {
	names := make([]string, 0, len(modules.Definitions))
	for name := range modules.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("known modules:")
	for _, name := range names {
		def := modules.Definitions[name]
		gpu := ""
		if def.GPUEligible() {
			gpu = " (GPU-eligible)"
		}
		kinds := make([]string, len(def.AddressKinds))
		for i, k := range def.AddressKinds {
			kinds[i] = k.String()
		}
		fmt.Printf("  %-28s seeds [%d, %d] -> %s%s\n", name, def.SeedMin, def.SeedMax, strings.Join(kinds, ","), gpu)
	}
}
