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

// runPipeline chains sampling, invariant validation, and metadata capture
// into one invocation writing family.json, results.json, and metadata.json.
func runPipeline(cmd *cobra.Command, args []string) error {
	paramsFile := args[0]

	params, err := sampling.LoadParams(paramsFile)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		params.Sampling.Seed = seedOverride
	}

	slog.Info("running pipeline",
		"family", params.FamilyType,
		"strategy", params.Sampling.Strategy,
		"seed", params.Sampling.Seed)

	sampler, err := sampling.New(params)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}
	family, err := sampler.SampleFamily(nSamples)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	familyFile := filepath.Join(pipelineOut, "family.json")
	if err = jsonio.Save(familyFile, family); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	consistency := invariants.ValidateConsistency(family)
	summary := invariants.Summarize(family)

	resultsFile := filepath.Join(pipelineOut, "results.json")
	results := map[string]any{
		"family_file":       familyFile,
		"consistency_check": consistency,
		"summary":           summary,
		"curve_data":        family,
	}
	if err = jsonio.Save(resultsFile, results); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	meta := metadata.Capture("pipeline")
	meta.ParamsFile = paramsFile
	meta.Seed = params.Sampling.Seed
	meta.NSamples = len(family)
	meta.FamilyType = params.FamilyType
	meta.SamplingStrategy = params.Sampling.Strategy
	meta.Invariants = params.Invariants.Compute
	if hash, hashErr := metadata.HashParams(params); hashErr == nil {
		meta.ParamsHash = hash
	}
	if meta.Extra == nil {
		meta.Extra = map[string]any{}
	}
	meta.Extra["consistency_checks_passed"] = len(consistency.ValidationErrors) == 0
	metadataFile := filepath.Join(pipelineOut, "metadata.json")
	if err = meta.Save(metadataFile); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Println(renderSuccess("Pipeline complete!"))
	fmt.Println(renderField("Generated curves", len(family)))
	fmt.Println(renderField("Family data", familyFile))
	fmt.Println(renderField("Results", resultsFile))
	fmt.Println(renderField("Metadata", metadataFile))

	printConsistency(consistency)
	if len(summary) > 0 {
		fmt.Println(renderSummaryTable("Pipeline Results Summary", summary))
	}
	return nil
}
