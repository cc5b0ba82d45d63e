package sampling_test

import (
	"fmt"

	"github.com/faiazparis/algebraic-moduli-sampler/sampling"
)

// ExampleSampler_SampleFamily samples three P¹ line bundle degrees on a
// grid and prints their cohomology.
func ExampleSampler_SampleFamily() {
	params := sampling.Params{
		FamilyType: "P1",
		Constraints: sampling.Constraints{
			Degree: &sampling.DegreeConstraint{Min: 0, Max: 10},
			Field:  "Q",
		},
		Sampling: sampling.SamplingConfig{
			NSamplesDefault: 3,
			Seed:            42,
			Strategy:        sampling.StrategyGrid,
		},
		Invariants: sampling.InvariantsConfig{
			Compute: []string{"genus", "h0", "h1"},
		},
	}

	s, _ := sampling.New(params)
	family, _ := s.SampleFamily(3)
	for _, rec := range family {
		fmt.Printf("d=%v h0=%v h1=%v\n", rec["degree"], rec["h0"], rec["h1"])
	}
	// Output:
	// d=0 h0=1 h1=0
	// d=1 h0=2 h1=0
	// d=2 h0=3 h1=0
}
