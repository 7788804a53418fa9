package keyword

// TemplateTable holds a multi-column template source: a fixed header schema
// plus rows of cell templates. Each cell may carry placeholders under the same
// naming rules as single-column templates. The header list defines the shape
// of every output row produced from the table.
type TemplateTable struct {
	Headers []string
	Rows    [][]string
}

// IsTable reports whether the source should be treated as a multi-column
// template table. Single-column sources are the plain string-template form.
// Classification happens once per source, before any expansion.
func (t TemplateTable) IsTable() bool { return len(t.Headers) > 1 }

// Templates flattens a single-column source into its template strings.
func (t TemplateTable) Templates() []string {
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if len(row) > 0 {
			out = append(out, row[0])
		}
	}
	return out
}
