package record

import "sort"

// Sentinel is the placeholder rendered for a field that could not be resolved.
const Sentinel = "-"

// Record is one extracted job listing. A record only exists if its role was
// extractable; the other fields may be unresolved. Unresolved fields are
// stored either as the empty string (labeled/plain-text parsing, which defers
// placeholder substitution to render time) or as the Sentinel directly
// (structural extraction); OrSentinel collapses the two states.
type Record struct {
	Company  string
	Role     string
	Location string
	Link     string
}

// OrSentinel substitutes the placeholder for an unresolved field value.
func OrSentinel(s string) string {
	if s == "" {
		return Sentinel
	}
	return s
}

// Unresolved reports whether a field value carries no real content.
func Unresolved(s string) bool {
	return s == "" || s == Sentinel
}

// Fields returns the four field values with the sentinel substituted, in
// (company, role, location, link) order.
func (r Record) Fields() [4]string {
	return [4]string{
		OrSentinel(r.Company),
		OrSentinel(r.Role),
		OrSentinel(r.Location),
		OrSentinel(r.Link),
	}
}

// Dedup removes exact duplicates, keyed on the sentinel-substituted field
// tuple. The first occurrence wins and the remaining order is preserved.
func Dedup(records []Record) []Record {
	seen := make(map[[4]string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		key := r.Fields()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Sort orders records lexicographically by (company, role, location),
// ascending and case-sensitive, with unresolved fields comparing as the
// empty string. The input slice is not modified.
func Sort(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(out[i]), sortKey(out[j])
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}

func sortKey(r Record) [3]string {
	return [3]string{emptyIfSentinel(r.Company), emptyIfSentinel(r.Role), emptyIfSentinel(r.Location)}
}

func emptyIfSentinel(s string) string {
	if s == Sentinel {
		return ""
	}
	return s
}
