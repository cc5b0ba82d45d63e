// Package curve models the four algebraic curve families supported by the
// sampler and their basic numerical invariants.
//
// Families:
//
//   - P1            — the projective line; genus 0, canonical degree −2.
//   - Elliptic      — y² = x³ + Ax + B; genus 1, smooth iff Δ = −16(4A³+27B²) ≠ 0.
//   - Hyperelliptic — y² = f(x); genus ⌊(deg f − 1)/2⌋, smooth-at-finite-points
//     iff f is squarefree (gcd(f, f′) of degree 0).
//   - Plane         — homogeneous F(x,y,z) = 0 of degree d; genus (d−1)(d−2)/2.
//
// Every family satisfies CanonicalDegree() == 2·Genus() − 2; this identity is
// exercised directly by the test suite.
//
// All types are immutable value objects. Construction never fails: invalid or
// degenerate parameters surface later through IsSmooth, never as constructor
// errors. No function in this package allocates shared state, logs, or blocks,
// so every operation is safe to run concurrently over a family.
//
// Mathematical references:
//   - Stacks Project 01PZ (O(d) on Pⁿ), 0A1M (hyperelliptic genus),
//     01R5 (plane curve genus).
//   - Silverman, The Arithmetic of Elliptic Curves (GTM 106), for the
//     discriminant criterion.
package curve
