package keyword

// GroupKey names the attribute used to partition generated output for
// split-file writing. The zero value disables grouping. GroupCore groups by
// the core phrase that produced each output; any other non-empty value is a
// secondary field name resolved against the producing row.
type GroupKey string

const (
	GroupNone GroupKey = ""
	GroupCore GroupKey = CoreField
)

// Group values recorded for phrases when grouping is disabled or the chosen
// field is absent/empty on the producing row.
const (
	GroupValueAll     = "all"
	GroupValueUnknown = "unknown"
)

// Enabled reports whether output should be partitioned at all.
func (g GroupKey) Enabled() bool { return g != GroupNone }

// ValueFor derives the group value for a phrase produced from the given core
// phrase and secondary row.
func (g GroupKey) ValueFor(core string, row Row) string {
	switch {
	case g == GroupNone:
		return GroupValueAll
	case g == GroupCore:
		return core
	default:
		value, ok := row.Value(string(g))
		if !ok || value == "" {
			return GroupValueUnknown
		}
		return value
	}
}
