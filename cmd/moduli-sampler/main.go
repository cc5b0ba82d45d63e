// Command moduli-sampler samples families of algebraic curves and computes
// their cohomological invariants.
//
// Subcommands:
//
//	validate    — check a parameter file against the schema
//	sample      — sample a curve family and write family.json
//	invariants  — summarize and consistency-check an existing family
//	pipeline    — sample + invariants + metadata in one run
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// setupLogging installs the process-wide slog handler. The core math
// packages never log; this covers the CLI orchestration only.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
