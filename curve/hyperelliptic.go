package curve

// Hyperelliptic is the curve y² = f(x), with f given by its integer
// coefficients highest-degree-first: [a_n, a_{n-1}, …, a_0] for
// f(x) = a_n·xⁿ + … + a_0.
//
// The genus is determined by deg f alone: g = ⌊(deg f − 1)/2⌋, covering both
// the deg f = 2g+1 and deg f = 2g+2 presentations.
//
// Reference: Stacks Project 0A1M.
type Hyperelliptic struct {
	// Coefficients of f(x), highest-degree-first. The stored slice is the
	// caller's; curves are treated as read-only values after construction.
	Coefficients []int64
}

// NewHyperelliptic returns the curve y² = f(x) for the given coefficients
// (highest-degree-first). Construction never fails; a non-squarefree f is
// reported by IsSmooth.
func NewHyperelliptic(coefficients []int64) Hyperelliptic {
	return Hyperelliptic{Coefficients: coefficients}
}

// Kind reports KindHyperelliptic.
func (Hyperelliptic) Kind() Kind { return KindHyperelliptic }

// PolynomialDegree returns deg f as implied by the coefficient count,
// i.e. len(Coefficients) − 1. Leading zero coefficients are deliberately
// not stripped here: the genus of the family is read off the presentation,
// matching the parameter-file convention.
func (c Hyperelliptic) PolynomialDegree() int64 {
	return int64(len(c.Coefficients)) - 1
}

// Genus returns ⌊(deg f − 1)/2⌋, clamped at 0 for the degenerate
// presentations deg f ≤ 1 (constant or empty f), where the formula would
// go negative.
//
// Complexity: O(1).
func (c Hyperelliptic) Genus() int64 {
	d := c.PolynomialDegree()
	if d <= 1 {
		return 0
	}
	return (d - 1) / 2
}

// IsSmooth reports whether f is squarefree, i.e. gcd(f, f′) has degree 0.
// The GCD is computed exactly over Q. The zero polynomial is never
// squarefree.
//
// This is an affine-only criterion: it says nothing about the point(s) at
// infinity. Callers needing a full smoothness proof must look elsewhere.
//
// Complexity: O(deg²f) exact-arithmetic coefficient operations.
func (c Hyperelliptic) IsSmooth() bool {
	f := newPolyFromInt64(c.Coefficients)
	if f.isZero() {
		return false
	}
	return polyGCD(f, f.derivative()).degree() == 0
}

// CanonicalDegree returns 2g − 2.
func (c Hyperelliptic) CanonicalDegree() int64 {
	return 2*c.Genus() - 2
}

// Describe returns the JSON-ready description, including the coefficient
// list and polynomial degree.
func (c Hyperelliptic) Describe() map[string]any {
	return map[string]any{
		"type":              string(KindHyperelliptic),
		"genus":             c.Genus(),
		"canonical_degree":  c.CanonicalDegree(),
		"is_smooth":         c.IsSmooth(),
		"coefficients":      c.Coefficients,
		"polynomial_degree": c.PolynomialDegree(),
	}
}
