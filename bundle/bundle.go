package bundle

// LineBundle is the capability set shared by all line bundle types. It is
// the explicit replacement for "has a degree accessor" duck typing: the
// cohomology dispatch accepts only values implementing this interface.
type LineBundle interface {
	// Degree returns the integer degree of the bundle.
	Degree() int64

	// H0 returns dim H⁰(L), the space of global sections.
	H0() int64

	// H1 returns dim H¹(L), the obstruction space.
	H1() int64

	// EulerCharacteristic returns χ(L) = deg L + 1 − g, per Riemann-Roch.
	EulerCharacteristic() int64
}
