package curve

// Kind identifies a curve family. The set of kinds is closed: cohomology
// dispatch switches over the concrete curve types and treats anything else
// as a programming error, so adding a fifth family is a deliberate decision
// point rather than a silent fallthrough.
type Kind string

const (
	// KindP1 tags the projective line P¹.
	KindP1 Kind = "P1"

	// KindElliptic tags elliptic curves y² = x³ + Ax + B.
	KindElliptic Kind = "Elliptic"

	// KindHyperelliptic tags hyperelliptic curves y² = f(x).
	KindHyperelliptic Kind = "Hyperelliptic"

	// KindPlane tags plane curves F(x,y,z) = 0 of fixed degree.
	KindPlane Kind = "PlaneCurve"
)

// Curve is the capability set every family provides.
//
// Implementations are pure: the same receiver always yields the same result,
// with no side effects and no internal caching.
type Curve interface {
	// Kind reports the family tag used in records and dispatch.
	Kind() Kind

	// Genus returns the genus of the curve.
	Genus() int64

	// IsSmooth reports the family-specific smoothness criterion.
	// For Plane this is a documented placeholder (see Plane.IsSmooth).
	IsSmooth() bool

	// CanonicalDegree returns deg K = 2·Genus − 2.
	CanonicalDegree() int64

	// Describe returns a flat, JSON-ready description of the curve:
	// family tag, defining parameters, and the basic invariants.
	Describe() map[string]any
}
