package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/faiazparis/algebraic-moduli-sampler/invariants"
	"github.com/faiazparis/algebraic-moduli-sampler/jsonio"
	"github.com/faiazparis/algebraic-moduli-sampler/metadata"
	"github.com/faiazparis/algebraic-moduli-sampler/sampling"
)

// runSample samples a curve family and writes family.json plus run metadata
// into the output directory.
func runSample(cmd *cobra.Command, args []string) error {
	paramsFile := args[0]

	params, err := sampling.LoadParams(paramsFile)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		params.Sampling.Seed = seedOverride
	}

	slog.Info("sampling curve family",
		"family", params.FamilyType,
		"strategy", params.Sampling.Strategy,
		"seed", params.Sampling.Seed)

	sampler, err := sampling.New(params)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}
	family, err := sampler.SampleFamily(nSamples)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	familyFile := filepath.Join(sampleOut, "family.json")
	if err = jsonio.Save(familyFile, family); err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	meta := metadata.Capture("sample")
	meta.ParamsFile = paramsFile
	meta.Seed = params.Sampling.Seed
	meta.NSamples = len(family)
	meta.FamilyType = params.FamilyType
	meta.SamplingStrategy = params.Sampling.Strategy
	meta.Invariants = params.Invariants.Compute
	if hash, hashErr := metadata.HashParams(params); hashErr == nil {
		meta.ParamsHash = hash
	}
	metadataFile := filepath.Join(sampleOut, "metadata.json")
	if err = meta.Save(metadataFile); err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	fmt.Println(renderSuccess("Sampling complete!"))
	fmt.Println(renderField("Generated curves", len(family)))
	fmt.Println(renderField("Family data", familyFile))
	fmt.Println(renderField("Metadata", metadataFile))

	if summary := invariants.Summarize(family); len(summary) > 0 {
		fmt.Println(renderSummaryTable("Family Summary", summary))
	}
	return nil
}
