package curve

// Elliptic is the curve y² = x³ + Ax + B in short Weierstrass form.
//
// Smoothness is decided by the discriminant Δ = −16(4A³ + 27B²):
// the curve is smooth exactly when Δ ≠ 0.
//
// Reference: Silverman, GTM 106, III.1.
type Elliptic struct {
	// A is the coefficient of the x term.
	A int64

	// B is the constant term.
	B int64
}

// NewElliptic returns the curve y² = x³ + ax + b. Construction never fails;
// a singular choice of (a, b) is reported by IsSmooth, not rejected here.
func NewElliptic(a, b int64) Elliptic { return Elliptic{A: a, B: b} }

// Kind reports KindElliptic.
func (Elliptic) Kind() Kind { return KindElliptic }

// Genus of an elliptic curve is 1.
func (Elliptic) Genus() int64 { return 1 }

// Discriminant returns Δ = −16(4A³ + 27B²).
//
// Complexity: O(1).
func (c Elliptic) Discriminant() int64 {
	return -16 * (4*c.A*c.A*c.A + 27*c.B*c.B)
}

// IsSmooth reports whether Δ ≠ 0.
func (c Elliptic) IsSmooth() bool { return c.Discriminant() != 0 }

// CanonicalDegree is 0, since 2g − 2 = 0 for g = 1.
func (Elliptic) CanonicalDegree() int64 { return 0 }

// Describe returns the JSON-ready description, including the discriminant.
func (c Elliptic) Describe() map[string]any {
	return map[string]any{
		"type":             string(KindElliptic),
		"genus":            c.Genus(),
		"canonical_degree": c.CanonicalDegree(),
		"is_smooth":        c.IsSmooth(),
		"a":                c.A,
		"b":                c.B,
		"discriminant":     c.Discriminant(),
	}
}
