package invariants

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/faiazparis/algebraic-moduli-sampler/cohomology"
	"github.com/faiazparis/algebraic-moduli-sampler/curve"
)

// ErrUnsupportedInvariant indicates one or more requested invariant names
// fall outside the supported set. The wrapped message lists every offending
// name, not just the first.
var ErrUnsupportedInvariant = errors.New("invariants: unsupported invariants")

// Record is a flat, JSON-ready invariant mapping for one curve.
type Record = map[string]any

// Supported invariant names. InvDegK and InvCanonicalDeg are aliases for the
// same quantity, deg K = 2g − 2.
const (
	InvGenus        = "genus"
	InvDegK         = "degK"
	InvH0           = "h0"
	InvH1           = "h1"
	InvCanonicalDeg = "canonical_deg"
)

// SupportedInvariants returns the supported invariant names, sorted.
func SupportedInvariants() []string {
	return []string{InvCanonicalDeg, InvDegK, InvGenus, InvH0, InvH1}
}

// Compute returns the requested invariants of c, using bundleDegree for the
// cohomological ones. curve_type and is_smooth are always present.
//
// Every invalid requested name is reported at once via
// ErrUnsupportedInvariant; an unsupported curve variant surfaces as
// cohomology.ErrUnsupportedCurve. Identical inputs always produce identical
// output: there is no hidden state or randomness here.
func Compute(c curve.Curve, requested []string, bundleDegree int64) (Record, error) {
	supported := map[string]bool{
		InvGenus: true, InvDegK: true, InvH0: true, InvH1: true, InvCanonicalDeg: true,
	}
	var invalid []string
	for _, name := range requested {
		if !supported[name] {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInvariant, strings.Join(invalid, ", "))
	}

	rec := Record{}
	for _, name := range requested {
		switch name {
		case InvGenus:
			rec[InvGenus] = c.Genus()
		case InvCanonicalDeg:
			rec[InvCanonicalDeg] = c.CanonicalDegree()
		case InvDegK:
			rec[InvDegK] = c.CanonicalDegree()
		case InvH0:
			h0, err := cohomology.H0(c, bundleDegree)
			if err != nil {
				return nil, err
			}
			rec[InvH0] = h0
		case InvH1:
			h1, err := cohomology.H1(c, bundleDegree)
			if err != nil {
				return nil, err
			}
			rec[InvH1] = h1
		}
	}

	rec["curve_type"] = string(c.Kind())
	rec["is_smooth"] = c.IsSmooth()
	return rec, nil
}
