package keyword

import "fmt"

// MatchType selects the output wrapping applied to final phrases, mirroring
// search-engine keyword match syntax. Wrapping happens strictly after
// generation and de-duplication; wrapped strings never re-enter combinatorics.
type MatchType int

const (
	MatchBroad MatchType = iota
	MatchPhrase
	MatchExact
)

// ParseMatchType accepts the CLI spellings for a match type.
func ParseMatchType(value string) (MatchType, error) {
	switch value {
	case "", "0", "b", "broad":
		return MatchBroad, nil
	case "1", "p", "phrase":
		return MatchPhrase, nil
	case "2", "e", "exact":
		return MatchExact, nil
	default:
		return MatchBroad, fmt.Errorf("keyword: unknown match type %q (want broad, phrase, or exact)", value)
	}
}

func (m MatchType) String() string {
	switch m {
	case MatchPhrase:
		return "phrase"
	case MatchExact:
		return "exact"
	default:
		return "broad"
	}
}

// Wrap formats a single phrase for this match type.
func (m MatchType) Wrap(phrase string) string {
	switch m {
	case MatchPhrase:
		return `"` + phrase + `"`
	case MatchExact:
		return "[" + phrase + "]"
	default:
		return phrase
	}
}

// WrapAll maps Wrap over a phrase list, returning a new slice.
func (m MatchType) WrapAll(phrases []string) []string {
	out := make([]string, len(phrases))
	for i, phrase := range phrases {
		out[i] = m.Wrap(phrase)
	}
	return out
}
