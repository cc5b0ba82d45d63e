package cohomology

import "github.com/faiazparis/algebraic-moduli-sampler/curve"

// RiemannRochResult reports both sides of the Riemann-Roch identity
// h⁰ − h¹ = d + 1 − g for one (curve, degree) pair.
type RiemannRochResult struct {
	H0         int64 `json:"h0"`
	H1         int64 `json:"h1"`
	Genus      int64 `json:"genus"`
	Degree     int64 `json:"line_bundle_degree"`
	Left       int64 `json:"left_side"`
	Right      int64 `json:"right_side"`
	Satisfied  bool  `json:"riemann_roch_satisfied"`
	Difference int64 `json:"difference"`
}

// CheckRiemannRoch evaluates both sides of Riemann-Roch for the degree-d
// bundle on c. The P1 and elliptic formulas satisfy the identity for every
// degree. The simplified bound used by the hyperelliptic and plane families
// satisfies it for d ≥ 0 and, at negative degree, only when g = 1; Satisfied
// is false and Difference is g − 1 in the remaining cases.
//
// Complexity: O(1) beyond genus computation.
func CheckRiemannRoch(c curve.Curve, d int64) (RiemannRochResult, error) {
	h0, err := H0(c, d)
	if err != nil {
		return RiemannRochResult{}, err
	}
	h1, err := H1(c, d)
	if err != nil {
		return RiemannRochResult{}, err
	}
	g := c.Genus()
	left := h0 - h1
	right := d + 1 - g
	return RiemannRochResult{
		H0:         h0,
		H1:         h1,
		Genus:      g,
		Degree:     d,
		Left:       left,
		Right:      right,
		Satisfied:  left == right,
		Difference: left - right,
	}, nil
}

// SerreDualityResult reports h¹(L) against h⁰(K ⊗ L⁻¹) for one
// (curve, degree) pair.
type SerreDualityResult struct {
	H1              int64 `json:"h1"`
	H0Dual          int64 `json:"h0_dual"`
	CanonicalDegree int64 `json:"canonical_degree"`
	DualDegree      int64 `json:"dual_bundle_degree"`
	Satisfied       bool  `json:"serre_duality_satisfied"`
	Difference      int64 `json:"difference"`
}

// CheckSerreDuality compares h¹ of the degree-d bundle on c with h⁰ of the
// dual bundle K ⊗ L⁻¹ of degree 2g − 2 − d.
//
// The P1 and elliptic formulas satisfy the duality for every degree: on P1,
// h¹(O(d)) = max(−d−1, 0) = h⁰(O(−2−d)). The simplified bound used by the
// hyperelliptic and plane families is only duality-consistent at g = 1;
// elsewhere Satisfied reports the deviation. For a genuinely independent
// cross-check see VerifyP1Cech.
func CheckSerreDuality(c curve.Curve, d int64) (SerreDualityResult, error) {
	h1, err := H1(c, d)
	if err != nil {
		return SerreDualityResult{}, err
	}
	canonical := 2*c.Genus() - 2
	dual := canonical - d
	h0Dual, err := H0(c, dual)
	if err != nil {
		return SerreDualityResult{}, err
	}
	return SerreDualityResult{
		H1:              h1,
		H0Dual:          h0Dual,
		CanonicalDegree: canonical,
		DualDegree:      dual,
		Satisfied:       h1 == h0Dual,
		Difference:      h1 - h0Dual,
	}, nil
}
