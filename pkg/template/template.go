// Package template implements the placeholder substitution used by the
// string-template and table-template generation strategies. Placeholders are
// `{name}` tokens, not nested, resolved against a flat string mapping where
// the reserved name "core" carries the core phrase.
package template

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Placeholders extracts every placeholder name from a template, in order of
// appearance, including repeats.
func Placeholders(tmpl string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(tmpl, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// HasPlaceholder reports whether the line contains at least one placeholder.
// Lines without one are labels or headers, not templates.
func HasPlaceholder(line string) bool {
	return placeholderPattern.MatchString(line)
}

// Render substitutes every placeholder with its value from fields, collapses
// whitespace runs to single spaces, and trims the result. A placeholder that
// is missing from fields or maps to an empty value makes the whole render a
// skip, reported as ok=false: the caller drops the combination silently. An
// empty or all-whitespace result after substitution is also a skip.
//
// Substitution is literal: no escaping, no recursive expansion of values.
func Render(tmpl string, fields map[string]string) (string, bool) {
	names := Placeholders(tmpl)
	for _, name := range names {
		value, present := fields[name]
		if !present || value == "" {
			return "", false
		}
	}

	result := tmpl
	for _, name := range names {
		result = strings.ReplaceAll(result, "{"+name+"}", fields[name])
	}

	result = strings.Join(strings.Fields(result), " ")
	if result == "" {
		return "", false
	}
	return result, true
}
