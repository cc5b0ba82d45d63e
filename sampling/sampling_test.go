package sampling_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/faiazparis/algebraic-moduli-sampler/sampling"
)

// p1Params returns a valid P1 parameter set over the degree range [lo, hi].
func p1Params(lo, hi int64, strategy string) sampling.Params {
	return sampling.Params{
		FamilyType: "P1",
		Constraints: sampling.Constraints{
			Degree: &sampling.DegreeConstraint{Min: lo, Max: hi},
			Field:  "Q",
		},
		Sampling: sampling.SamplingConfig{
			NSamplesDefault: 5,
			Seed:            42,
			Strategy:        strategy,
		},
		Invariants: sampling.InvariantsConfig{
			Compute: []string{"genus", "h0", "h1"},
		},
	}
}

// ellipticParams returns a valid Elliptic parameter set with the given
// coefficient ranges.
func ellipticParams(aRange, bRange [2]int64) sampling.Params {
	return sampling.Params{
		FamilyType: "Elliptic",
		Constraints: sampling.Constraints{
			CoefficientRanges: map[string][2]int64{"a": aRange, "b": bRange},
			Field:             "Q",
		},
		Sampling: sampling.SamplingConfig{
			NSamplesDefault: 5,
			Seed:            7,
			Strategy:        sampling.StrategyRandom,
		},
		Invariants: sampling.InvariantsConfig{
			Compute: []string{"genus", "canonical_deg"},
		},
	}
}

// TestValidateFamilyRules exercises the per-family cross-field rules.
func TestValidateFamilyRules(t *testing.T) {
	t.Run("P1 requires degree", func(t *testing.T) {
		p := p1Params(0, 5, sampling.StrategyRandom)
		p.Constraints.Degree = nil
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)
	})

	t.Run("P1 rejects genus", func(t *testing.T) {
		p := p1Params(0, 5, sampling.StrategyRandom)
		g := int64(0)
		p.Constraints.Genus = &g
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)
	})

	t.Run("Elliptic requires coefficient ranges", func(t *testing.T) {
		p := ellipticParams([2]int64{-3, 3}, [2]int64{-3, 3})
		p.Constraints.CoefficientRanges = nil
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)
	})

	t.Run("Elliptic genus must be 1 if given", func(t *testing.T) {
		p := ellipticParams([2]int64{-3, 3}, [2]int64{-3, 3})
		g := int64(2)
		p.Constraints.Genus = &g
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)

		g = 1
		assert.NoError(t, p.Validate())
	})

	t.Run("Hyperelliptic requires genus and ranges", func(t *testing.T) {
		p := sampling.Params{
			FamilyType: "Hyperelliptic",
			Constraints: sampling.Constraints{
				CoefficientRanges: map[string][2]int64{"a0": {-2, 2}},
			},
			Sampling:   sampling.SamplingConfig{NSamplesDefault: 3, Strategy: "random"},
			Invariants: sampling.InvariantsConfig{Compute: []string{"genus"}},
		}
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)

		g := int64(2)
		p.Constraints.Genus = &g
		assert.NoError(t, p.Validate())

		p.Constraints.CoefficientRanges = nil
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)
	})

	t.Run("PlaneCurve requires single degree >= 1", func(t *testing.T) {
		p := sampling.Params{
			FamilyType: "PlaneCurve",
			Constraints: sampling.Constraints{
				Degree: &sampling.DegreeConstraint{Min: 2, Max: 4},
			},
			Sampling:   sampling.SamplingConfig{NSamplesDefault: 3, Strategy: "random"},
			Invariants: sampling.InvariantsConfig{Compute: []string{"genus"}},
		}
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams, "range degree rejected")

		p.Constraints.Degree = &sampling.DegreeConstraint{Min: 0, Max: 0}
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams, "degree 0 rejected")

		p.Constraints.Degree = &sampling.DegreeConstraint{Min: 3, Max: 3}
		assert.NoError(t, p.Validate())
	})

	t.Run("inverted degree range rejected", func(t *testing.T) {
		p := p1Params(5, 0, sampling.StrategyRandom)
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)
	})

	t.Run("unknown family rejected", func(t *testing.T) {
		p := p1Params(0, 5, sampling.StrategyRandom)
		p.FamilyType = "K3Surface"
		assert.ErrorIs(t, p.Validate(), sampling.ErrInvalidParams)
	})
}

// TestValidateDefaults verifies normalization fills field Q, strategy
// random, and smoothness_check true.
func TestValidateDefaults(t *testing.T) {
	p := p1Params(0, 5, "")
	p.Constraints.Field = ""
	require.NoError(t, p.Validate())

	assert.Equal(t, "Q", p.Constraints.Field)
	assert.Equal(t, sampling.StrategyRandom, p.Sampling.Strategy)
	assert.True(t, p.Constraints.CheckSmoothness())
}

// TestDegreeConstraintJSON verifies the scalar-or-pair decoding and the
// symmetric encoding.
func TestDegreeConstraintJSON(t *testing.T) {
	var d sampling.DegreeConstraint
	require.NoError(t, json.Unmarshal([]byte(`3`), &d))
	assert.Equal(t, int64(3), d.Min)
	assert.Equal(t, int64(3), d.Max)
	v, single := d.Single()
	assert.True(t, single)
	assert.Equal(t, int64(3), v)

	require.NoError(t, json.Unmarshal([]byte(`[-2, 5]`), &d))
	assert.Equal(t, int64(-2), d.Min)
	assert.Equal(t, int64(5), d.Max)
	_, single = d.Single()
	assert.False(t, single)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &d), "three elements rejected")
	assert.Error(t, json.Unmarshal([]byte(`"five"`), &d))

	out, err := json.Marshal(sampling.DegreeConstraint{Min: 3, Max: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(out))

	out, err = json.Marshal(sampling.DegreeConstraint{Min: -2, Max: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `[-2, 5]`, string(out))
}

// TestDegreeConstraintYAML mirrors the JSON decoding rules for YAML input.
func TestDegreeConstraintYAML(t *testing.T) {
	var d sampling.DegreeConstraint
	require.NoError(t, yaml.Unmarshal([]byte(`4`), &d))
	assert.Equal(t, int64(4), d.Min)
	assert.Equal(t, int64(4), d.Max)

	require.NoError(t, yaml.Unmarshal([]byte(`[0, 9]`), &d))
	assert.Equal(t, int64(0), d.Min)
	assert.Equal(t, int64(9), d.Max)

	assert.Error(t, yaml.Unmarshal([]byte(`[1, 2, 3]`), &d))
}

// TestLoadParamsJSON round-trips a parameter document through a file,
// including rejection of unknown top-level fields.
func TestLoadParamsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.json")

	doc := `{
		"family_type": "P1",
		"constraints": {"degree": [0, 10], "field": "Q", "smoothness_check": true},
		"sampling": {"n_samples_default": 5, "seed": 42, "strategy": "random"},
		"invariants": {"compute": ["genus", "h0", "h1"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := sampling.LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, "P1", p.FamilyType)
	assert.Equal(t, int64(0), p.Constraints.Degree.Min)
	assert.Equal(t, int64(10), p.Constraints.Degree.Max)
	assert.Equal(t, int64(42), p.Sampling.Seed)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"family_type": "P1", "surprise": 1}`), 0o644))
	_, err = sampling.LoadParams(bad)
	assert.ErrorIs(t, err, sampling.ErrInvalidParams, "unknown fields rejected")

	_, err = sampling.LoadParams(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

// TestLoadParamsYAML verifies the extension-based YAML path.
func TestLoadParamsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	doc := `
family_type: Elliptic
constraints:
  coefficient_ranges:
    a: [-3, 3]
    b: [-3, 3]
  field: Q
  smoothness_check: true
sampling:
  n_samples_default: 4
  seed: 7
  strategy: grid
invariants:
  compute: [genus, canonical_deg]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := sampling.LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, "Elliptic", p.FamilyType)
	assert.Equal(t, sampling.StrategyGrid, p.Sampling.Strategy)
	assert.Equal(t, [2]int64{-3, 3}, p.Constraints.CoefficientRanges["a"])
}

// TestSamplerDeterminism verifies two fresh samplers with identical params
// produce byte-identical families.
func TestSamplerDeterminism(t *testing.T) {
	run := func() []byte {
		s, err := sampling.New(ellipticParams([2]int64{-3, 3}, [2]int64{-3, 3}))
		require.NoError(t, err)
		family, err := s.SampleFamily(6)
		require.NoError(t, err)
		raw, err := json.Marshal(family)
		require.NoError(t, err)
		return raw
	}
	assert.Equal(t, run(), run(), "same seed must reproduce the same family")
}

// TestSamplerSeedSensitivity verifies different seeds change the drawn
// family.
func TestSamplerSeedSensitivity(t *testing.T) {
	draw := func(seed int64) []byte {
		p := ellipticParams([2]int64{-50, 50}, [2]int64{-50, 50})
		p.Sampling.Seed = seed
		s, err := sampling.New(p)
		require.NoError(t, err)
		family, err := s.SampleFamily(8)
		require.NoError(t, err)
		raw, err := json.Marshal(family)
		require.NoError(t, err)
		return raw
	}
	assert.NotEqual(t, draw(1), draw(2))
}

// TestSampleFamilyAnnotations verifies every record carries the strategy
// and seed.
func TestSampleFamilyAnnotations(t *testing.T) {
	s, err := sampling.New(p1Params(0, 10, sampling.StrategyGrid))
	require.NoError(t, err)
	family, err := s.SampleFamily(3)
	require.NoError(t, err)
	require.NotEmpty(t, family)

	for _, rec := range family {
		assert.Equal(t, sampling.StrategyGrid, rec["sampling_strategy"])
		assert.Equal(t, int64(42), rec["seed"])
	}
}

// TestSampleP1Grid verifies grid takes the first n degrees of the range and
// the enumerator walks that contiguous span.
func TestSampleP1Grid(t *testing.T) {
	s, err := sampling.New(p1Params(0, 10, sampling.StrategyGrid))
	require.NoError(t, err)
	family, err := s.SampleFamily(3)
	require.NoError(t, err)

	require.Len(t, family, 3)
	for i, rec := range family {
		assert.Equal(t, int64(i), rec["degree"])
	}
}

// TestSampleP1ContiguousSpan verifies the random strategy's records always
// cover a contiguous degree span: enumeration fills the gap between the
// smallest and largest drawn degree.
func TestSampleP1ContiguousSpan(t *testing.T) {
	s, err := sampling.New(p1Params(-5, 15, sampling.StrategyRandom))
	require.NoError(t, err)
	family, err := s.SampleFamily(4)
	require.NoError(t, err)
	require.NotEmpty(t, family)

	first := family[0]["degree"].(int64)
	for i, rec := range family {
		assert.Equal(t, first+int64(i), rec["degree"], "degrees must be contiguous")
	}
}

// TestSampleP1ClampsToRangeSize verifies n larger than the degree range
// yields exactly the whole range under grid.
func TestSampleP1ClampsToRangeSize(t *testing.T) {
	s, err := sampling.New(p1Params(0, 4, sampling.StrategyGrid))
	require.NoError(t, err)
	family, err := s.SampleFamily(50)
	require.NoError(t, err)
	assert.Len(t, family, 5)
}

// TestSampleEllipticSmoothnessFilter verifies singular draws are filtered:
// the box {0}×{0} contains only y² = x³, so the family comes back empty.
func TestSampleEllipticSmoothnessFilter(t *testing.T) {
	s, err := sampling.New(ellipticParams([2]int64{0, 0}, [2]int64{0, 0}))
	require.NoError(t, err)
	family, err := s.SampleFamily(5)
	require.NoError(t, err)
	assert.Empty(t, family, "every draw in the box is singular")
}

// TestSampleEllipticGrid verifies grid enumerates the coefficient box in
// order, truncated at n.
func TestSampleEllipticGrid(t *testing.T) {
	p := ellipticParams([2]int64{1, 2}, [2]int64{1, 2})
	p.Sampling.Strategy = sampling.StrategyGrid
	f := false
	p.Constraints.SmoothnessCheck = &f

	s, err := sampling.New(p)
	require.NoError(t, err)
	family, err := s.SampleFamily(3)
	require.NoError(t, err)

	require.Len(t, family, 3)
	assert.Equal(t, int64(1), family[0]["a"])
	assert.Equal(t, int64(1), family[0]["b"])
	assert.Equal(t, int64(1), family[1]["a"])
	assert.Equal(t, int64(2), family[1]["b"])
	assert.Equal(t, int64(2), family[2]["a"])
}

// TestSampleHyperelliptic verifies genus-2 sampling draws degree-5
// polynomials (2g+1) and annotates records with their coefficients.
func TestSampleHyperelliptic(t *testing.T) {
	g := int64(2)
	p := sampling.Params{
		FamilyType: "Hyperelliptic",
		Constraints: sampling.Constraints{
			Genus:             &g,
			CoefficientRanges: map[string][2]int64{"a0": {1, 1}},
			Field:             "Q",
		},
		Sampling:   sampling.SamplingConfig{NSamplesDefault: 4, Seed: 11, Strategy: "random"},
		Invariants: sampling.InvariantsConfig{Compute: []string{"genus", "canonical_deg"}},
	}
	s, err := sampling.New(p)
	require.NoError(t, err)
	family, err := s.SampleFamily(4)
	require.NoError(t, err)
	require.NotEmpty(t, family)

	for _, rec := range family {
		coeffs := rec["coefficients"].([]int64)
		assert.Len(t, coeffs, 6, "deg f = 2g+1 = 5 needs six coefficients")
		assert.Equal(t, int64(1), coeffs[0], "a0 pinned to 1 by its range")
		assert.Equal(t, int64(2), rec["genus"])
		assert.Equal(t, int64(2), rec["canonical_deg"])
		assert.Equal(t, true, rec["is_smooth"], "rejection keeps only squarefree draws")
	}
}

// TestSampleHyperellipticRejectionCap verifies a box with no squarefree
// member terminates with an empty family instead of spinning.
func TestSampleHyperellipticRejectionCap(t *testing.T) {
	g := int64(1)
	// Pin every coefficient to 0: f is the zero polynomial, never squarefree.
	ranges := map[string][2]int64{
		"a0": {0, 0}, "a1": {0, 0}, "a2": {0, 0}, "a3": {0, 0},
	}
	p := sampling.Params{
		FamilyType: "Hyperelliptic",
		Constraints: sampling.Constraints{
			Genus:             &g,
			CoefficientRanges: ranges,
			Field:             "Q",
		},
		Sampling:   sampling.SamplingConfig{NSamplesDefault: 3, Seed: 5, Strategy: "random"},
		Invariants: sampling.InvariantsConfig{Compute: []string{"genus"}},
	}
	s, err := sampling.New(p)
	require.NoError(t, err)
	family, err := s.SampleFamily(3)
	require.NoError(t, err)
	assert.Empty(t, family)
}

// TestSamplePlane verifies degree-3 sampling produces the expected monomial
// support and the right genus.
func TestSamplePlane(t *testing.T) {
	p := sampling.Params{
		FamilyType: "PlaneCurve",
		Constraints: sampling.Constraints{
			Degree: &sampling.DegreeConstraint{Min: 3, Max: 3},
			Field:  "Q",
		},
		Sampling:   sampling.SamplingConfig{NSamplesDefault: 2, Seed: 9, Strategy: "random"},
		Invariants: sampling.InvariantsConfig{Compute: []string{"genus"}},
	}
	s, err := sampling.New(p)
	require.NoError(t, err)
	family, err := s.SampleFamily(2)
	require.NoError(t, err)
	require.Len(t, family, 2)

	for _, rec := range family {
		assert.Equal(t, int64(1), rec["genus"], "(3-1)(3-2)/2 = 1")
		coeffs := rec["coefficients"].(map[string]int64)
		for _, label := range []string{"x^3", "y^3", "z^3", "x^1*y^2", "x^1*z^2", "y^1*z^2"} {
			assert.Contains(t, coeffs, label)
		}
	}
}

// TestSampleFamilyDefaultN verifies n ≤ 0 falls back to n_samples_default.
func TestSampleFamilyDefaultN(t *testing.T) {
	p := p1Params(0, 20, sampling.StrategyGrid)
	p.Sampling.NSamplesDefault = 4
	s, err := sampling.New(p)
	require.NoError(t, err)

	family, err := s.SampleFamily(0)
	require.NoError(t, err)
	assert.Len(t, family, 4)
}

// TestDeriveSeed verifies seed derivation is deterministic, stream-sensitive,
// and decorrelated from the parent.
func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, sampling.DeriveSeed(42, 0), sampling.DeriveSeed(42, 0),
		"same parent and stream must derive the same seed")
	assert.NotEqual(t, sampling.DeriveSeed(42, 0), sampling.DeriveSeed(42, 1),
		"distinct streams must derive distinct seeds")
	assert.NotEqual(t, sampling.DeriveSeed(42, 0), sampling.DeriveSeed(43, 0),
		"distinct parents must derive distinct seeds")
	assert.NotEqual(t, int64(42), sampling.DeriveSeed(42, 0),
		"derived seed must not echo the parent")
}

// TestDeriveSeedIndependentSamplers verifies samplers seeded from distinct
// derived streams draw different families while each stream stays
// reproducible.
func TestDeriveSeedIndependentSamplers(t *testing.T) {
	draw := func(stream uint64) []byte {
		p := ellipticParams([2]int64{-50, 50}, [2]int64{-50, 50})
		p.Sampling.Seed = sampling.DeriveSeed(99, stream)
		s, err := sampling.New(p)
		require.NoError(t, err)
		family, err := s.SampleFamily(8)
		require.NoError(t, err)
		raw, err := json.Marshal(family)
		require.NoError(t, err)
		return raw
	}
	assert.Equal(t, draw(0), draw(0), "a derived stream is reproducible")
	assert.NotEqual(t, draw(0), draw(1), "sibling streams are independent")
}

// TestNewRejectsInvalidParams verifies the constructor validates.
func TestNewRejectsInvalidParams(t *testing.T) {
	p := p1Params(0, 5, sampling.StrategyRandom)
	p.Constraints.Degree = nil
	_, err := sampling.New(p)
	assert.ErrorIs(t, err, sampling.ErrInvalidParams)
}
