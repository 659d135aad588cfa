package webrows

import "strings"

// Wildcard is the property sentinel meaning "all canonical fields in their
// declared order".
const Wildcard = "*"

// NormalizeProperties trims and lower-cases requested property names.
// The result preserves order and length.
func NormalizeProperties(requested []string) []string {
	props := make([]string, len(requested))
	for i, p := range requested {
		props[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return props
}

// IsWildcard reports whether a normalized property request is the single
// wildcard entry.
func IsWildcard(props []string) bool {
	return len(props) == 1 && props[0] == Wildcard
}

// ResolveProperties resolves a requested property list against a canonical
// field list. A wildcard request expands to a copy of the canonical list;
// anything else resolves to the normalized request, unknown names included
// (they project as empty strings, never as errors).
func ResolveProperties(requested []string, canonical []string) []string {
	props := NormalizeProperties(requested)
	if IsWildcard(props) {
		out := make([]string, len(canonical))
		copy(out, canonical)
		return out
	}
	return props
}

// Project produces the ordered value tuple for one record. It is total:
// absent or nil fields yield the empty string. len(row) == len(props) and
// positions align with props.
func Project(rec Record, props []string) []any {
	row := make([]any, len(props))
	for i, p := range props {
		v, ok := rec[p]
		if !ok || v == nil {
			row[i] = ""
			continue
		}
		row[i] = v
	}
	return row
}

// Header renders a resolved property list as the leading output row.
func Header(props []string) []any {
	row := make([]any, len(props))
	for i, p := range props {
		row[i] = p
	}
	return row
}
