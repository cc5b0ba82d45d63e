// Package sampling turns a validated parameter specification into concrete
// curve families and their invariant records.
//
// The flow is: Params (loaded from a JSON or YAML file, validated against
// struct tags plus family-specific rules) → Sampler (seeded, deterministic)
// → parameter tuples per family → the invariants batch functions → records
// annotated with sampling_strategy and seed.
//
// Strategies:
//
//   - grid   — exhaustive walk of the constrained space, truncated to n.
//   - random — seeded draws; without replacement for P¹ degrees, with
//     replacement for coefficient tuples.
//   - lhs    — a simplified Latin-hypercube-like variant of random; it is
//     not a true LHS design and shares the random code path for coefficient
//     families.
//
// Determinism: the same Params (including seed) always produce the same
// records. All randomness flows through the single seeded source created in
// New; nothing reads the clock or global RNG state.
//
// Smoothness filtering (when constraints.smoothness_check is set) uses
// rejection with a 10·n attempt cap for the coefficient families, so a
// pathological constraint box terminates with fewer than n records rather
// than looping forever.
package sampling
