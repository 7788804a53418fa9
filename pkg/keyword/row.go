package keyword

// CoreField is the reserved placeholder name that always resolves to the core
// phrase during template expansion. A secondary column with the same name is
// shadowed: Mapping overwrites its value with the core phrase.
const CoreField = "core"

// RowKind discriminates the secondary-row representations. Positional rows
// carry column identity by position; keyed rows resolve fields by header name
// and are required whenever templates are in play.
type RowKind int

const (
	RowPositional RowKind = iota
	RowKeyed
)

func (k RowKind) String() string {
	switch k {
	case RowPositional:
		return "positional"
	case RowKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// Row is a tagged variant over the two secondary-row shapes. Rows are value
// data: constructed once from an input source and read-only afterwards.
type Row struct {
	kind    RowKind
	fields  []string
	headers []string
	values  map[string]string
}

// NewPositionalRow builds a positional row from pre-trimmed non-empty fields.
func NewPositionalRow(fields ...string) Row {
	copied := make([]string, len(fields))
	copy(copied, fields)
	return Row{kind: RowPositional, fields: copied}
}

// NewKeyedRow builds a keyed row. The header slice fixes field order for
// callers that need deterministic iteration; values holds the cell data.
func NewKeyedRow(headers []string, values map[string]string) Row {
	copiedHeaders := make([]string, len(headers))
	copy(copiedHeaders, headers)
	copiedValues := make(map[string]string, len(values))
	for name, value := range values {
		copiedValues[name] = value
	}
	return Row{kind: RowKeyed, headers: copiedHeaders, values: copiedValues}
}

// Kind reports which representation this row carries.
func (r Row) Kind() RowKind { return r.kind }

// Fields returns the positional field values. Empty for keyed rows.
func (r Row) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Headers returns the declared header names of a keyed row in source order.
func (r Row) Headers() []string {
	out := make([]string, len(r.headers))
	copy(out, r.headers)
	return out
}

// Value resolves a field by name on a keyed row.
func (r Row) Value(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Mapping returns the substitution map for template rendering: the keyed
// fields plus the reserved core entry.
func (r Row) Mapping(core string) map[string]string {
	out := make(map[string]string, len(r.values)+1)
	for name, value := range r.values {
		out[name] = value
	}
	out[CoreField] = core
	return out
}
