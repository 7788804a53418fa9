package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

const maxFilenameFragment = 64

// SanitizeFragment turns a group value into a safe filename fragment:
// anything outside [A-Za-z0-9._-] becomes an underscore, runs collapse to
// one, leading/trailing separators are trimmed, and the result is length
// capped. An empty result falls back to "unknown".
func SanitizeFragment(value string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range value {
		safe := r == '.' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if safe {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.Trim(b.String(), "._-")
	if len(out) > maxFilenameFragment {
		out = out[:maxFilenameFragment]
	}
	if out == "" {
		return "unknown"
	}
	return out
}

// WriteGrouped partitions phrases by their recorded group value and writes one
// file per group next to the requested output path, deriving names as
// stem.<group>.ext. Phrase order within each group and group order both follow
// first appearance. The optional wrap func applies match-type formatting at
// write time, keeping the group mapping keyed by the bare phrases. It returns
// the written paths in group order.
func WriteGrouped(path string, phrases []string, groups map[string]string, wrap func(string) string) ([]string, error) {
	var order []string
	byGroup := make(map[string][]string)
	for _, phrase := range phrases {
		group, ok := groups[phrase]
		if !ok || group == "" {
			group = "unknown"
		}
		if _, exists := byGroup[group]; !exists {
			order = append(order, group)
		}
		byGroup[group] = append(byGroup[group], phrase)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".txt"
	}

	used := make(map[string]int)
	var written []string
	for _, group := range order {
		fragment := SanitizeFragment(group)
		// distinct groups can sanitize to the same fragment
		if n := used[fragment]; n > 0 {
			used[fragment] = n + 1
			fragment = fmt.Sprintf("%s_%d", fragment, n+1)
		} else {
			used[fragment] = 1
		}
		lines := byGroup[group]
		if wrap != nil {
			wrapped := make([]string, len(lines))
			for i, line := range lines {
				wrapped[i] = wrap(line)
			}
			lines = wrapped
		}
		target := stem + "." + fragment + ext
		if err := WriteLines(target, lines); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}
