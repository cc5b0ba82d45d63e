package invariants

import "github.com/faiazparis/algebraic-moduli-sampler/curve"

// Family computes invariants for an arbitrary curve list, annotating each
// record with its zero-based curve_index. Output order mirrors input order.
func Family(curves []curve.Curve, requested []string, bundleDegree int64) ([]Record, error) {
	records := make([]Record, 0, len(curves))
	for i, c := range curves {
		rec, err := Compute(c, requested, bundleDegree)
		if err != nil {
			return nil, err
		}
		rec["curve_index"] = i
		records = append(records, rec)
	}
	return records, nil
}

// P1Family computes invariants for O(d) on P¹ over the closed degree range
// [minDeg, maxDeg]; the bundle degree for each record is the record's own d.
func P1Family(minDeg, maxDeg int64, requested []string) ([]Record, error) {
	var records []Record
	i := 0
	for d := minDeg; d <= maxDeg; d++ {
		rec, err := Compute(curve.NewP1(), requested, d)
		if err != nil {
			return nil, err
		}
		rec["degree"] = d
		rec["curve_index"] = i
		records = append(records, rec)
		i++
	}
	return records, nil
}

// CoefficientPair is one (a, b) choice for y² = x³ + ax + b.
type CoefficientPair struct {
	A int64
	B int64
}

// EllipticFamily computes invariants for one elliptic curve per coefficient
// pair, annotating each record with its (a, b).
func EllipticFamily(pairs []CoefficientPair, requested []string, bundleDegree int64) ([]Record, error) {
	records := make([]Record, 0, len(pairs))
	for i, p := range pairs {
		rec, err := Compute(curve.NewElliptic(p.A, p.B), requested, bundleDegree)
		if err != nil {
			return nil, err
		}
		rec["a"] = p.A
		rec["b"] = p.B
		rec["curve_index"] = i
		records = append(records, rec)
	}
	return records, nil
}

// HyperellipticFamily computes invariants for one hyperelliptic curve per
// coefficient list (highest-degree-first), annotating each record with its
// coefficients.
func HyperellipticFamily(coefficientLists [][]int64, requested []string, bundleDegree int64) ([]Record, error) {
	records := make([]Record, 0, len(coefficientLists))
	for i, coeffs := range coefficientLists {
		rec, err := Compute(curve.NewHyperelliptic(coeffs), requested, bundleDegree)
		if err != nil {
			return nil, err
		}
		rec["coefficients"] = coeffs
		rec["curve_index"] = i
		records = append(records, rec)
	}
	return records, nil
}

// PlaneSpec is one (degree, monomial-coefficient map) choice for a plane
// curve family member.
type PlaneSpec struct {
	Degree       int64
	Coefficients map[string]int64
}

// PlaneFamily computes invariants for one plane curve per spec, annotating
// each record with its degree and coefficient map.
func PlaneFamily(specs []PlaneSpec, requested []string, bundleDegree int64) ([]Record, error) {
	records := make([]Record, 0, len(specs))
	for i, s := range specs {
		rec, err := Compute(curve.NewPlane(s.Degree, s.Coefficients), requested, bundleDegree)
		if err != nil {
			return nil, err
		}
		rec["degree"] = s.Degree
		rec["coefficients"] = s.Coefficients
		rec["curve_index"] = i
		records = append(records, rec)
	}
	return records, nil
}
