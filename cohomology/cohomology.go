package cohomology

import (
	"errors"
	"fmt"

	"github.com/faiazparis/algebraic-moduli-sampler/bundle"
	"github.com/faiazparis/algebraic-moduli-sampler/curve"
)

// ErrUnsupportedCurve indicates dispatch received a curve outside the closed
// family set {P1, Elliptic, Hyperelliptic, PlaneCurve}.
var ErrUnsupportedCurve = errors.New("cohomology: unsupported curve type")

// bundleFor constructs the family-specific line bundle of degree d on c.
// It is the single dispatch point: every cohomology entry path goes through
// it, so an unknown curve type fails identically everywhere.
func bundleFor(c curve.Curve, d int64) (bundle.LineBundle, error) {
	switch cc := c.(type) {
	case curve.P1:
		return bundle.NewP1Bundle(d), nil
	case curve.Elliptic:
		return bundle.NewEllipticBundle(cc, d), nil
	case curve.Hyperelliptic:
		return bundle.NewHyperellipticBundle(cc, d), nil
	case curve.Plane:
		return bundle.NewPlaneBundle(cc, d), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCurve, c)
	}
}

// H0 returns h⁰ of the degree-d line bundle on c.
//
// Complexity: O(1) for all families.
func H0(c curve.Curve, d int64) (int64, error) {
	b, err := bundleFor(c, d)
	if err != nil {
		return 0, err
	}
	return b.H0(), nil
}

// H1 returns h¹ of the degree-d line bundle on c.
//
// Complexity: O(1) for all families.
func H1(c curve.Curve, d int64) (int64, error) {
	b, err := bundleFor(c, d)
	if err != nil {
		return 0, err
	}
	return b.H1(), nil
}

// BundleH0 returns h⁰ of an already-constructed bundle. The LineBundle
// interface is the degree capability: there is no runtime accessor probing.
func BundleH0(b bundle.LineBundle) int64 { return b.H0() }

// BundleH1 returns h¹ of an already-constructed bundle.
func BundleH1(b bundle.LineBundle) int64 { return b.H1() }
