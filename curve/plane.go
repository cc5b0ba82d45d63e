package curve

// Plane is a plane curve cut out by a homogeneous polynomial F(x,y,z) of the
// given degree. Coefficients map monomial labels (e.g. "x^3", "x^1*y^2") to
// integer values; the map is accepted as-is, with no homogeneity check.
//
// Reference: Stacks Project 01R5 for the genus formula.
type Plane struct {
	// Degree of the defining polynomial.
	Degree int64

	// Coefficients maps monomial labels to integer coefficients. Shared,
	// read-only after construction.
	Coefficients map[string]int64
}

// NewPlane returns the plane curve of the given degree and coefficient map.
// Construction never fails and performs no validation beyond type shape.
func NewPlane(degree int64, coefficients map[string]int64) Plane {
	return Plane{Degree: degree, Coefficients: coefficients}
}

// Kind reports KindPlane.
func (Plane) Kind() Kind { return KindPlane }

// Genus returns (d−1)(d−2)/2, the genus of a smooth plane curve of degree d.
//
// Complexity: O(1).
func (c Plane) Genus() int64 {
	return (c.Degree - 1) * (c.Degree - 2) / 2
}

// IsSmooth always reports true.
//
// This is a placeholder, not a Jacobian-criterion test: a genuine check
// would verify that F, ∂F/∂x, ∂F/∂y, ∂F/∂z have no common projective zero.
// The stub is kept so that downstream records carry an is_smooth field of
// the same shape as the other families; treat the value as unverified.
func (Plane) IsSmooth() bool { return true }

// CanonicalDegree returns 2g − 2.
func (c Plane) CanonicalDegree() int64 {
	return 2*c.Genus() - 2
}

// Describe returns the JSON-ready description, including degree and the
// coefficient map.
func (c Plane) Describe() map[string]any {
	return map[string]any{
		"type":             string(KindPlane),
		"genus":            c.Genus(),
		"canonical_degree": c.CanonicalDegree(),
		"is_smooth":        c.IsSmooth(),
		"degree":           c.Degree,
		"coefficients":     c.Coefficients,
	}
}
