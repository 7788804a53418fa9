package expand

import "strings"

// rowKeySep joins cell values into a dedupe key. A unit separator cannot
// appear in CSV-sourced cell data that survived trimming.
const rowKeySep = "\x1f"

// Dedupe drops duplicates from a phrase sequence, keeping the first
// occurrence and otherwise preserving order. Applying it twice equals
// applying it once.
func Dedupe(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}
		out = append(out, phrase)
	}
	return out
}

// DedupeRows is Dedupe over output rows, using element-wise tuple equality.
func DedupeRows(rows [][]string) [][]string {
	seen := make(map[string]struct{}, len(rows))
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		key := strings.Join(row, rowKeySep)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}
