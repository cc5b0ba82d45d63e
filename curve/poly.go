package curve

import "math/big"

// poly is a univariate polynomial over Q with coefficients stored
// lowest-degree-first. The zero polynomial is the empty (or all-zero) slice.
//
// The squarefreeness test for hyperelliptic curves needs exact arithmetic:
// floating-point GCDs misclassify near-multiple roots, so all work here is
// done on big.Rat values.
type poly []*big.Rat

// newPolyFromInt64 builds a polynomial from integer coefficients given
// highest-degree-first (the order used by curve constructors and parameter
// files) and trims leading zeros.
//
// Complexity: O(n).
func newPolyFromInt64(highFirst []int64) poly {
	n := len(highFirst)
	p := make(poly, n)
	for i, c := range highFirst {
		// highFirst[0] is the coefficient of x^(n-1).
		p[n-1-i] = new(big.Rat).SetInt64(c)
	}
	return p.trim()
}

// trim drops zero leading coefficients so that degree() is meaningful.
func (p poly) trim() poly {
	i := len(p)
	for i > 0 && p[i-1].Sign() == 0 {
		i--
	}
	return p[:i]
}

// isZero reports whether p is the zero polynomial.
func (p poly) isZero() bool { return len(p.trim()) == 0 }

// degree returns the degree of p, or −1 for the zero polynomial.
func (p poly) degree() int {
	return len(p.trim()) - 1
}

// derivative returns p′.
//
// Complexity: O(n).
func (p poly) derivative() poly {
	t := p.trim()
	if len(t) <= 1 {
		return poly{}
	}
	d := make(poly, len(t)-1)
	for i := 1; i < len(t); i++ {
		d[i-1] = new(big.Rat).Mul(t[i], new(big.Rat).SetInt64(int64(i)))
	}
	return d.trim()
}

// mod returns the remainder of p divided by q (q non-zero), via standard
// long division over Q.
//
// Complexity: O(deg p · deg q) coefficient operations.
func (p poly) mod(q poly) poly {
	q = q.trim()
	r := make(poly, len(p))
	for i, c := range p {
		r[i] = new(big.Rat).Set(c)
	}
	r = r.trim()
	qLead := q[len(q)-1]
	for r.degree() >= q.degree() {
		shift := r.degree() - q.degree()
		factor := new(big.Rat).Quo(r[len(r)-1], qLead)
		for i := 0; i < len(q); i++ {
			t := new(big.Rat).Mul(factor, q[i])
			r[i+shift].Sub(r[i+shift], t)
		}
		r = r.trim()
	}
	return r
}

// polyGCD returns the monic greatest common divisor of p and q via the Euclidean
// algorithm over Q. gcd(p, 0) = p (made monic); gcd(0, 0) = 0.
//
// Complexity: O(deg p · deg q) coefficient operations.
func polyGCD(p, q poly) poly {
	a, b := p.trim(), q.trim()
	for !b.isZero() {
		a, b = b, a.mod(b)
	}
	return a.monic()
}

// monic scales p so its leading coefficient is 1. The zero polynomial is
// returned unchanged.
func (p poly) monic() poly {
	t := p.trim()
	if len(t) == 0 {
		return t
	}
	lead := t[len(t)-1]
	m := make(poly, len(t))
	for i, c := range t {
		m[i] = new(big.Rat).Quo(c, lead)
	}
	return m
}
