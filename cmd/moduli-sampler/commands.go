package main

import (
	"github.com/spf13/cobra"
)

// --- Global flag variables ---
// Each command that writes output owns its --out variable: sharing one
// variable across registrations would make the last default win for all.
var (
	seedOverride  int64
	nSamples      int
	sampleOut     string
	invariantsOut string
	pipelineOut   string
	verbose       bool

	rootCmd = &cobra.Command{
		Use:   "moduli-sampler",
		Short: "Sample algebraic curve families and compute sheaf-cohomology invariants",
		Long: `moduli-sampler generates families of algebraic curves (P1 line bundles,
elliptic, hyperelliptic, plane curves) from a parameter file, computes
genus / canonical degree / h0 / h1 per curve, and verifies Riemann-Roch
and Serre duality over the sampled family.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate <params-file>",
		Short: "Validate a parameter file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate, // Defined in cmd_validate.go
	}

	sampleCmd = &cobra.Command{
		Use:   "sample <params-file>",
		Short: "Sample a curve family and write it to the output directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample, // Defined in cmd_sample.go
	}

	invariantsCmd = &cobra.Command{
		Use:   "invariants <family-file>",
		Short: "Summarize and consistency-check an existing curve family",
		Args:  cobra.ExactArgs(1),
		RunE:  runInvariants, // Defined in cmd_invariants.go
	}

	pipelineCmd = &cobra.Command{
		Use:   "pipeline <params-file>",
		Short: "Run sampling, invariant validation, and metadata capture in one go",
		Args:  cobra.ExactArgs(1),
		RunE:  runPipeline, // Defined in cmd_pipeline.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	sampleCmd.Flags().Int64Var(&seedOverride, "seed", 0, "override the random seed from the parameter file")
	sampleCmd.Flags().IntVar(&nSamples, "n", 0, "number of samples to generate (default from parameter file)")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "./output", "output directory")

	invariantsCmd.Flags().StringVar(&invariantsOut, "out", "./invariants.json", "output file")

	pipelineCmd.Flags().Int64Var(&seedOverride, "seed", 0, "override the random seed from the parameter file")
	pipelineCmd.Flags().IntVar(&nSamples, "n", 0, "number of samples to generate (default from parameter file)")
	pipelineCmd.Flags().StringVar(&pipelineOut, "out", "./pipeline_output", "output directory")

	rootCmd.AddCommand(validateCmd, sampleCmd, invariantsCmd, pipelineCmd)
}
