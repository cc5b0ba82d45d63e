// Package invariants builds per-curve invariant records and aggregates them
// over sampled families.
//
// A Record is a flat JSON-ready mapping for one (curve, bundle-degree) pair:
// the requested subset of {genus, degK, h0, h1, canonical_deg} plus the
// always-present curve_type and is_smooth fields. degK and canonical_deg are
// aliases of the canonical degree; requesting both yields both keys.
//
// Records are created fresh per call and never mutated afterwards by this
// package; the per-family batch helpers annotate each record with its
// originating parameters and a zero-based curve_index before returning it.
//
// Summarize and ValidateConsistency are stateless aggregates recomputed from
// scratch on every call. Both tolerate records that have passed through a
// JSON round-trip, where integers resurface as float64.
package invariants
