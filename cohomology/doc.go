// Package cohomology computes h⁰/h¹ for line bundles on the supported curve
// families and verifies the structural identities that tie them together.
//
// Dispatch is by concrete curve type over the closed family set; any other
// Curve implementation yields ErrUnsupportedCurve. This is an integration
// error, not a data error: the family set and the dispatch switch are meant
// to change together.
//
// Verification routines:
//
//   - CheckRiemannRoch — h⁰ − h¹ == d + 1 − g. Satisfied by construction for
//     P1 and Elliptic at every degree and for the bound-based families at
//     d ≥ 0; at negative degree on g ≠ 1 the bound deviates and the result
//     reports it. Mostly a regression guard against formula drift.
//   - CheckSerreDuality — h¹(L) == h⁰(K ⊗ L⁻¹) via the dual degree
//     2g − 2 − d. Same satisfaction profile as the Riemann-Roch check.
//   - VerifyP1Cech — a genuinely independent check: a two-chart Čech
//     computation for O(d) on P¹, compared against the closed forms.
//
// Table produces a per-degree cohomology table over a closed degree range.
// TableForDegrees accepts an explicit degree list; a list of two or more
// degrees is collapsed to the contiguous range [min, max], so duplicates and
// gaps are silently filled in. That collapse is a long-standing behavioral
// quirk callers depend on; it is documented, not fixed.
package cohomology
