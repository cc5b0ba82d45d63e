package curve

// P1 is the projective line. It carries no parameters: genus and canonical
// degree are fixed, and the interesting data (a line bundle degree) lives on
// the bundle, not the curve.
//
// Reference: Stacks Project 01PZ.
type P1 struct{}

// NewP1 returns the projective line.
func NewP1() P1 { return P1{} }

// Kind reports KindP1.
func (P1) Kind() Kind { return KindP1 }

// Genus of P¹ is 0.
func (P1) Genus() int64 { return 0 }

// IsSmooth is always true: P¹ is smooth.
func (P1) IsSmooth() bool { return true }

// CanonicalDegree is −2: the canonical bundle of P¹ is O(−2).
func (P1) CanonicalDegree() int64 { return -2 }

// Describe returns the JSON-ready description of P¹.
func (c P1) Describe() map[string]any {
	return map[string]any{
		"type":             string(KindP1),
		"genus":            c.Genus(),
		"canonical_degree": c.CanonicalDegree(),
		"is_smooth":        c.IsSmooth(),
	}
}
