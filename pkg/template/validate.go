package template

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownPlaceholderError reports placeholder names that resolve against
// neither the reserved core name nor any declared secondary field. It is a
// fatal validation failure raised before any expansion work begins.
type UnknownPlaceholderError struct {
	Unknown []string
	Allowed []string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("template: unknown placeholders: %s (allowed: %s)",
		braceList(e.Unknown), braceList(e.Allowed))
}

func braceList(names []string) string {
	wrapped := make([]string, len(names))
	for i, name := range names {
		wrapped[i] = "{" + name + "}"
	}
	return strings.Join(wrapped, ", ")
}

// Validate checks every placeholder referenced by any template against the
// allowed names. Allowed should contain the reserved core name plus the union
// of declared secondary headers, in declaration order. Unknown names are
// collected across all templates and reported once, sorted.
func Validate(templates []string, allowed []string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	unknownSet := make(map[string]struct{})
	for _, tmpl := range templates {
		for _, name := range Placeholders(tmpl) {
			if _, ok := allowedSet[name]; !ok {
				unknownSet[name] = struct{}{}
			}
		}
	}
	if len(unknownSet) == 0 {
		return nil
	}

	unknown := make([]string, 0, len(unknownSet))
	for name := range unknownSet {
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)

	return &UnknownPlaceholderError{Unknown: unknown, Allowed: allowed}
}

// ValidateTable applies Validate across every cell of a template table.
func ValidateTable(rows [][]string, allowed []string) error {
	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return Validate(flat, allowed)
}
