// Package bundle models line bundles on the curve families and their
// cohomology dimensions h⁰ and h¹.
//
// Every bundle type implements LineBundle, which is also the explicit
// degree-capability interface used by the cohomology package: there is no
// runtime probing for a degree accessor, a value either implements
// LineBundle or it does not.
//
// Exactness varies by family and is part of the contract:
//
//   - P1Bundle      — exact closed forms: h⁰ = max(d+1, 0), h¹ = max(−d−1, 0).
//   - EllipticBundle — exact for d ≠ 0; at d = 0 the bundle is assumed to be
//     the trivial bundle O (h⁰ = 1). Non-trivial degree-0 bundles on a genus-1
//     curve have h⁰ = 0 and are not representable here.
//   - HyperellipticBundle, PlaneBundle — a shared Riemann-Roch-bound
//     approximation, not a genuine sheaf-cohomology computation. It satisfies
//     Riemann-Roch for d ≥ 0 (and at every degree when g = 1) but does not
//     model special divisors near d ≈ g, and at negative degree on g ≠ 1 it
//     deviates from the identity by g − 1. Kept deliberately: downstream
//     verification is calibrated against these exact formulas, so "fixing"
//     them here would silently change every consumer.
//
// The d < 0, d = 0, and d > 0 branches are distinct in every family; the
// d = 0 case is never folded into a neighbouring branch.
//
// Bundles are transient value objects: construct, query, discard. Many
// bundles may reference the same curve; the reference is read-only.
package bundle
