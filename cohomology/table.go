package cohomology

import "github.com/faiazparis/algebraic-moduli-sampler/curve"

// TableRow is one line of a cohomology table: the full cohomology of the
// degree-d bundle on a fixed curve, plus the Riemann-Roch regression flag.
type TableRow struct {
	Degree              int64 `json:"degree"`
	H0                  int64 `json:"h0"`
	H1                  int64 `json:"h1"`
	EulerCharacteristic int64 `json:"euler_characteristic"`
	RiemannRochVerified bool  `json:"riemann_roch_verified"`
	Genus               int64 `json:"genus"`
}

// Table computes one TableRow per degree in the closed range [min, max].
// A range with min > max yields an empty table.
//
// Complexity: O(max − min) rows, O(1) per row.
func Table(c curve.Curve, min, max int64) ([]TableRow, error) {
	var rows []TableRow
	for d := min; d <= max; d++ {
		row, err := tableRow(c, d)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// TableForDegrees computes a cohomology table for an explicit degree list.
//
// Collapse policy (deliberate, long-standing):
//   - empty list      → empty table
//   - single element  → exactly that degree's row
//   - two or more     → the contiguous closed range [min(list), max(list)];
//     duplicates and gaps in the input are silently absorbed.
func TableForDegrees(c curve.Curve, degrees []int64) ([]TableRow, error) {
	switch len(degrees) {
	case 0:
		return nil, nil
	case 1:
		row, err := tableRow(c, degrees[0])
		if err != nil {
			return nil, err
		}
		return []TableRow{row}, nil
	default:
		min, max := degrees[0], degrees[0]
		for _, d := range degrees[1:] {
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
		return Table(c, min, max)
	}
}

func tableRow(c curve.Curve, d int64) (TableRow, error) {
	h0, err := H0(c, d)
	if err != nil {
		return TableRow{}, err
	}
	h1, err := H1(c, d)
	if err != nil {
		return TableRow{}, err
	}
	rr, err := CheckRiemannRoch(c, d)
	if err != nil {
		return TableRow{}, err
	}
	return TableRow{
		Degree:              d,
		H0:                  h0,
		H1:                  h1,
		EulerCharacteristic: h0 - h1,
		RiemannRochVerified: rr.Satisfied,
		Genus:               c.Genus(),
	}, nil
}
