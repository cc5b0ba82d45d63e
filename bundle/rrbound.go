package bundle

import "github.com/faiazparis/algebraic-moduli-sampler/curve"

// rrBoundH0 and rrBoundH1 implement the simplified Riemann-Roch-bound
// cohomology shared by the hyperelliptic and plane families:
//
//	h⁰ = 0                       for d < 0
//	h⁰ = 1                       for d = 0
//	h⁰ = max(0, d + 1 − g)       for d > 0
//
//	h¹ = −d                      for d < 0
//	h¹ = g                       for d = 0
//	h¹ = max(0, h⁰ − (d + 1 − g)) for d > 0
//
// These are bounds, not exact dimensions: special divisors near d ≈ g are
// not modelled. For d ≥ 0 the pair satisfies Riemann-Roch by construction;
// for d < 0 it satisfies it only at g = 1 (h⁰ − h¹ = d, not d + 1 − g). The
// downstream Riemann-Roch check reports that deviation honestly rather than
// masking it. Do not replace these with a real sheaf computation without
// also revisiting those checks.

// rrBoundH0 returns the simplified h⁰ for genus g and degree d.
//
// Complexity: O(1).
func rrBoundH0(g, d int64) int64 {
	switch {
	case d < 0:
		return 0
	case d == 0:
		return 1
	default:
		if h := d + 1 - g; h > 0 {
			return h
		}
		return 0
	}
}

// rrBoundH1 returns the simplified h¹ for genus g and degree d.
//
// Complexity: O(1).
func rrBoundH1(g, d int64) int64 {
	switch {
	case d < 0:
		return -d
	case d == 0:
		return g
	default:
		if h := rrBoundH0(g, d) - (d + 1 - g); h > 0 {
			return h
		}
		return 0
	}
}

// HyperellipticBundle is a line bundle of degree d on a hyperelliptic curve,
// with cohomology given by the simplified Riemann-Roch bound above.
type HyperellipticBundle struct {
	c curve.Hyperelliptic
	d int64
}

// NewHyperellipticBundle returns the degree-d bundle on c.
func NewHyperellipticBundle(c curve.Hyperelliptic, degree int64) HyperellipticBundle {
	return HyperellipticBundle{c: c, d: degree}
}

// Curve returns the underlying hyperelliptic curve.
func (b HyperellipticBundle) Curve() curve.Hyperelliptic { return b.c }

// Degree returns d.
func (b HyperellipticBundle) Degree() int64 { return b.d }

// H0 returns the simplified Riemann-Roch bound for h⁰.
func (b HyperellipticBundle) H0() int64 { return rrBoundH0(b.c.Genus(), b.d) }

// H1 returns the simplified Riemann-Roch bound for h¹.
func (b HyperellipticBundle) H1() int64 { return rrBoundH1(b.c.Genus(), b.d) }

// EulerCharacteristic returns d + 1 − g.
func (b HyperellipticBundle) EulerCharacteristic() int64 {
	return b.d + 1 - b.c.Genus()
}

// PlaneBundle is a line bundle of degree d on a plane curve, with the same
// simplified Riemann-Roch-bound cohomology as HyperellipticBundle.
type PlaneBundle struct {
	c curve.Plane
	d int64
}

// NewPlaneBundle returns the degree-d bundle on c.
func NewPlaneBundle(c curve.Plane, degree int64) PlaneBundle {
	return PlaneBundle{c: c, d: degree}
}

// Curve returns the underlying plane curve.
func (b PlaneBundle) Curve() curve.Plane { return b.c }

// Degree returns d.
func (b PlaneBundle) Degree() int64 { return b.d }

// H0 returns the simplified Riemann-Roch bound for h⁰.
func (b PlaneBundle) H0() int64 { return rrBoundH0(b.c.Genus(), b.d) }

// H1 returns the simplified Riemann-Roch bound for h¹.
func (b PlaneBundle) H1() int64 { return rrBoundH1(b.c.Genus(), b.d) }

// EulerCharacteristic returns d + 1 − g.
func (b PlaneBundle) EulerCharacteristic() int64 {
	return b.d + 1 - b.c.Genus()
}
