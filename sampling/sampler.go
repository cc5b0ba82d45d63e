package sampling

import (
	"fmt"
	"math/rand"

	"github.com/faiazparis/algebraic-moduli-sampler/curve"
	"github.com/faiazparis/algebraic-moduli-sampler/invariants"
)

// Sampling strategy tags accepted in parameter files.
const (
	StrategyGrid   = "grid"
	StrategyRandom = "random"
	StrategyLHS    = "lhs"
)

// Default coefficient ranges used when a coefficient has no entry in
// constraints.coefficient_ranges.
var (
	defaultEllipticRange = [2]int64{-3, 3}
	defaultCoeffRange    = [2]int64{-2, 2}
)

// maxAttemptsFactor caps rejection sampling at factor·n attempts so a
// constraint box with no (or almost no) smooth members terminates with a
// short family instead of spinning.
const maxAttemptsFactor = 10

// Sampler draws curve families according to validated Params. A Sampler
// owns its RNG and is not safe for concurrent use; create one per
// goroutine, deriving seeds with DeriveSeed if independence matters.
type Sampler struct {
	params Params
	rng    *rand.Rand
}

// New validates p and returns a deterministic Sampler seeded from
// p.Sampling.Seed.
func New(p Params) (*Sampler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{params: p, rng: rngFromSeed(p.Sampling.Seed)}, nil
}

// Params returns the validated parameters the Sampler was built from.
func (s *Sampler) Params() Params { return s.params }

// SampleFamily draws n curves from the configured family and returns their
// invariant records, annotated with sampling_strategy and seed. n ≤ 0 means
// the configured n_samples_default.
//
// The same Sampler must not be reused for a second deterministic run:
// drawing advances the RNG. Build a fresh Sampler per run.
func (s *Sampler) SampleFamily(n int) ([]invariants.Record, error) {
	if n <= 0 {
		n = s.params.Sampling.NSamplesDefault
	}

	var (
		records []invariants.Record
		err     error
	)
	switch s.params.FamilyType {
	case "P1":
		records, err = s.sampleP1(n)
	case "Elliptic":
		records, err = s.sampleElliptic(n)
	case "Hyperelliptic":
		records, err = s.sampleHyperelliptic(n)
	case "PlaneCurve":
		records, err = s.samplePlane(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFamily, s.params.FamilyType)
	}
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		rec["sampling_strategy"] = s.params.Sampling.Strategy
		rec["seed"] = s.params.Sampling.Seed
	}
	return records, nil
}

// sampleP1 draws line bundle degrees within the degree constraint.
//
// Note: the family enumerator this feeds walks a contiguous range, so the
// final records cover the span [min(drawn), max(drawn)], not the exact
// drawn set. Strategies therefore influence the span, not which degrees
// inside it appear. Long-standing behavior; callers depend on contiguous
// output.
func (s *Sampler) sampleP1(n int) ([]invariants.Record, error) {
	lo, hi := s.params.Constraints.Degree.Min, s.params.Constraints.Degree.Max
	size := int(hi - lo + 1)

	var degrees []int64
	switch s.params.Sampling.Strategy {
	case StrategyGrid:
		k := n
		if k > size {
			k = size
		}
		for d := lo; d < lo+int64(k); d++ {
			degrees = append(degrees, d)
		}
	case StrategyRandom:
		k := n
		if k > size {
			k = size
		}
		degrees = permRange(s.rng, lo, hi)[:k]
	default: // lhs: one draw per stratum of the degree range
		k := n
		if k > size {
			k = size
		}
		for i := 0; i < k; i++ {
			binLo := lo + int64(i*size/k)
			binHi := lo + int64((i+1)*size/k) - 1
			degrees = append(degrees, intInRange(s.rng, binLo, binHi))
		}
	}

	min, max := degrees[0], degrees[0]
	for _, d := range degrees[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return invariants.P1Family(min, max, s.params.Invariants.Compute)
}

// coeffRange returns the configured [min, max] for a coefficient label, or
// the fallback when the label is absent.
func (s *Sampler) coeffRange(label string, fallback [2]int64) [2]int64 {
	if r, ok := s.params.Constraints.CoefficientRanges[label]; ok {
		return r
	}
	return fallback
}

// sampleElliptic draws (a, b) pairs for y² = x³ + ax + b.
func (s *Sampler) sampleElliptic(n int) ([]invariants.Record, error) {
	aRange := s.coeffRange("a", defaultEllipticRange)
	bRange := s.coeffRange("b", defaultEllipticRange)

	var pairs []invariants.CoefficientPair
	if s.params.Sampling.Strategy == StrategyGrid {
		for a := aRange[0]; a <= aRange[1] && len(pairs) < n; a++ {
			for b := bRange[0]; b <= bRange[1] && len(pairs) < n; b++ {
				pairs = append(pairs, invariants.CoefficientPair{A: a, B: b})
			}
		}
	} else {
		// random and the simplified lhs share independent uniform draws.
		for i := 0; i < n; i++ {
			pairs = append(pairs, invariants.CoefficientPair{
				A: intInRange(s.rng, aRange[0], aRange[1]),
				B: intInRange(s.rng, bRange[0], bRange[1]),
			})
		}
	}

	if s.params.Constraints.CheckSmoothness() {
		smooth := pairs[:0]
		for _, p := range pairs {
			if curve.NewElliptic(p.A, p.B).IsSmooth() {
				smooth = append(smooth, p)
			}
			if len(smooth) >= n {
				break
			}
		}
		pairs = smooth
	}

	return invariants.EllipticFamily(pairs, s.params.Invariants.Compute, 0)
}

// sampleHyperelliptic draws coefficient lists for y² = f(x) with
// deg f = 2g + 1 for the constrained genus g. Coefficient labels a0, a1, …
// index the list highest-degree-first; unlisted labels fall back to the
// default range. Non-squarefree draws are rejected when smoothness_check is
// set, bounded by maxAttemptsFactor·n attempts.
func (s *Sampler) sampleHyperelliptic(n int) ([]invariants.Record, error) {
	g := *s.params.Constraints.Genus
	polyDegree := 2*g + 1

	var lists [][]int64
	for attempts := 0; len(lists) < n && attempts < maxAttemptsFactor*n; attempts++ {
		coeffs := make([]int64, polyDegree+1)
		for i := range coeffs {
			r := s.coeffRange(fmt.Sprintf("a%d", i), defaultCoeffRange)
			coeffs[i] = intInRange(s.rng, r[0], r[1])
		}
		if s.params.Constraints.CheckSmoothness() && !curve.NewHyperelliptic(coeffs).IsSmooth() {
			continue
		}
		lists = append(lists, coeffs)
	}

	return invariants.HyperellipticFamily(lists, s.params.Invariants.Compute, 0)
}

// samplePlane draws monomial coefficient maps for homogeneous F(x,y,z) of
// the constrained degree d: the pure monomials x^d, y^d, z^d plus the mixed
// monomials x^i*y^j, x^i*z^j, y^i*z^j for i + j = d, i ≤ j. The rejection
// cap applies here too, although the plane smoothness placeholder currently
// never rejects.
func (s *Sampler) samplePlane(n int) ([]invariants.Record, error) {
	d, _ := s.params.Constraints.Degree.Single()

	var specs []invariants.PlaneSpec
	for attempts := 0; len(specs) < n && attempts < maxAttemptsFactor*n; attempts++ {
		coefficients := map[string]int64{}

		if d >= 1 {
			for _, v := range []string{"x", "y", "z"} {
				label := fmt.Sprintf("%s^%d", v, d)
				r := s.coeffRange(label, defaultCoeffRange)
				coefficients[label] = intInRange(s.rng, r[0], r[1])
			}
		}
		for i := int64(1); i < d; i++ {
			j := d - i
			if i > j {
				continue
			}
			for _, pair := range []string{"x^%d*y^%d", "x^%d*z^%d", "y^%d*z^%d"} {
				label := fmt.Sprintf(pair, i, j)
				r := s.coeffRange(label, defaultCoeffRange)
				coefficients[label] = intInRange(s.rng, r[0], r[1])
			}
		}

		if s.params.Constraints.CheckSmoothness() && !curve.NewPlane(d, coefficients).IsSmooth() {
			continue
		}
		specs = append(specs, invariants.PlaneSpec{Degree: d, Coefficients: coefficients})
	}

	return invariants.PlaneFamily(specs, s.params.Invariants.Compute, 0)
}
