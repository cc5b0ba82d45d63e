package invariants

import "sort"

// numericField reads a numeric record field as float64, tolerating the
// integer widths produced in-process (int, int64) and the float64 that
// encoding/json produces after a round-trip.
func numericField(rec Record, key string) (float64, bool) {
	v, ok := rec[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Summarize computes summary statistics over a family of records: total
// count, smooth count, the distinct curve types seen, and min/max/mean for
// each of {genus, canonical_deg, h0, h1} present in at least one record.
// Statistics for fields absent from every record are omitted entirely.
//
// An empty input yields an empty (non-nil) summary, not an error.
//
// Complexity: O(n) over the record list.
func Summarize(records []Record) map[string]any {
	summary := map[string]any{}
	if len(records) == 0 {
		return summary
	}

	smooth := 0
	typeSet := map[string]bool{}
	for _, rec := range records {
		if s, ok := rec["is_smooth"].(bool); ok && s {
			smooth++
		}
		if t, ok := rec["curve_type"].(string); ok {
			typeSet[t] = true
		}
	}
	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	summary["total_curves"] = len(records)
	summary["smooth_curves"] = smooth
	summary["curve_types"] = types

	for _, name := range []string{InvGenus, InvCanonicalDeg, InvH0, InvH1} {
		var (
			min, max, sum float64
			count         int
		)
		for _, rec := range records {
			v, ok := numericField(rec, name)
			if !ok {
				continue
			}
			if count == 0 || v < min {
				min = v
			}
			if count == 0 || v > max {
				max = v
			}
			sum += v
			count++
		}
		if count == 0 {
			continue
		}
		summary[name+"_min"] = min
		summary[name+"_max"] = max
		summary[name+"_mean"] = sum / float64(count)
	}

	return summary
}
