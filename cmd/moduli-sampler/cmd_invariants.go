package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faiazparis/algebraic-moduli-sampler/invariants"
	"github.com/faiazparis/algebraic-moduli-sampler/jsonio"
)

// runInvariants loads a previously sampled family, validates the internal
// consistency of its invariants, and writes a results document with the
// consistency report and summary statistics.
func runInvariants(cmd *cobra.Command, args []string) error {
	familyFile := args[0]
	slog.Debug("loading family data", "file", familyFile)

	family, err := jsonio.LoadFamily(familyFile)
	if err != nil {
		return fmt.Errorf("invariant computation failed: %w", err)
	}

	consistency := invariants.ValidateConsistency(family)
	summary := invariants.Summarize(family)

	results := map[string]any{
		"family_file":       familyFile,
		"consistency_check": consistency,
		"summary":           summary,
		"curve_data":        family,
	}
	if err = jsonio.Save(invariantsOut, results); err != nil {
		return fmt.Errorf("invariant computation failed: %w", err)
	}

	fmt.Println(renderSuccess("Invariants computed!"))
	fmt.Println(renderField("Results saved to", invariantsOut))

	printConsistency(consistency)
	if len(summary) > 0 {
		fmt.Println(renderSummaryTable("Family Summary", summary))
	}
	return nil
}

// maxErrorsShown bounds the per-curve error lines printed by
// printConsistency; the remainder is reported as a count.
const maxErrorsShown = 3

// printConsistency reports validation errors (first maxErrorsShown shown,
// plus a count of the rest) or the all-clear.
func printConsistency(report invariants.ConsistencyReport) {
	if len(report.ValidationErrors) == 0 {
		fmt.Println(renderSuccess("All consistency checks passed"))
		return
	}
	fmt.Println(renderWarning(fmt.Sprintf("Found %d validation errors", len(report.ValidationErrors))))
	for i, ce := range report.ValidationErrors {
		if i >= maxErrorsShown {
			fmt.Printf("  ...and %d more\n", len(report.ValidationErrors)-maxErrorsShown)
			break
		}
		fmt.Printf("  Curve %d: %s\n", ce.CurveIndex, strings.Join(ce.Errors, ", "))
	}
}
