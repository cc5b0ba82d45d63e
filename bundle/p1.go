package bundle

// P1Bundle is the line bundle O(d) on P¹. Cohomology is exact closed form;
// no curve parameters are needed because P¹ carries none.
//
// Reference: Stacks Project 01PZ.
type P1Bundle struct {
	d int64
}

// NewP1Bundle returns O(d) on P¹.
func NewP1Bundle(degree int64) P1Bundle { return P1Bundle{d: degree} }

// Degree returns d.
func (b P1Bundle) Degree() int64 { return b.d }

// H0 returns max(d + 1, 0): global sections of O(d) are the polynomials of
// degree ≤ d in one affine coordinate.
//
// Complexity: O(1).
func (b P1Bundle) H0() int64 {
	if b.d+1 > 0 {
		return b.d + 1
	}
	return 0
}

// H1 returns max(−d − 1, 0), which is h⁰(O(−2−d)) by Serre duality against
// the canonical bundle K = O(−2).
//
// Complexity: O(1).
func (b P1Bundle) H1() int64 {
	if -b.d-1 > 0 {
		return -b.d - 1
	}
	return 0
}

// EulerCharacteristic returns d + 1 (genus 0).
func (b P1Bundle) EulerCharacteristic() int64 { return b.d + 1 }
