package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faiazparis/algebraic-moduli-sampler/sampling"
)

// runValidate loads and validates a parameter file, then echoes the key
// settings so a user can eyeball what a run would do.
func runValidate(cmd *cobra.Command, args []string) error {
	paramsFile := args[0]
	slog.Debug("validating parameters", "file", paramsFile)

	params, err := sampling.LoadParams(paramsFile)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println(renderSuccess("Parameters valid!"))
	fmt.Println(renderField("Family type", params.FamilyType))
	fmt.Println(renderField("Sampling strategy", params.Sampling.Strategy))
	fmt.Println(renderField("Default samples", params.Sampling.NSamplesDefault))
	fmt.Println(renderField("Seed", params.Sampling.Seed))
	fmt.Println(renderField("Invariants", strings.Join(params.Invariants.Compute, ", ")))
	return nil
}
