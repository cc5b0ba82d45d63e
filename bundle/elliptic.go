package bundle

import "github.com/faiazparis/algebraic-moduli-sampler/curve"

// EllipticBundle is a line bundle of degree d on an elliptic curve (genus 1).
//
// The d = 0 case hard-codes the trivial bundle O: h⁰(O) = 1 and
// h¹(O) = g = 1. A non-trivial degree-0 bundle would have h⁰ = h¹ = 0; that
// case is not representable, which is a documented limitation rather than a
// bug (the degree alone cannot distinguish the two).
type EllipticBundle struct {
	c curve.Elliptic
	d int64
}

// NewEllipticBundle returns the degree-d bundle on c.
func NewEllipticBundle(c curve.Elliptic, degree int64) EllipticBundle {
	return EllipticBundle{c: c, d: degree}
}

// Curve returns the underlying elliptic curve.
func (b EllipticBundle) Curve() curve.Elliptic { return b.c }

// Degree returns d.
func (b EllipticBundle) Degree() int64 { return b.d }

// H0 returns 0 for d < 0, 1 for d = 0 (the trivial bundle), and d for d > 0
// (Riemann-Roch with h¹ = 0 for positive degree on genus 1).
//
// Complexity: O(1).
func (b EllipticBundle) H0() int64 {
	switch {
	case b.d < 0:
		return 0
	case b.d == 0:
		return 1
	default:
		return b.d
	}
}

// H1 returns −d for d < 0, 1 for d = 0 (h¹(O) = g = 1), and 0 for d > 0.
//
// Complexity: O(1).
func (b EllipticBundle) H1() int64 {
	switch {
	case b.d < 0:
		return -b.d
	case b.d == 0:
		return 1
	default:
		return 0
	}
}

// EulerCharacteristic returns d + 1 − g = d for genus 1.
func (b EllipticBundle) EulerCharacteristic() int64 {
	return b.d + 1 - b.c.Genus()
}
