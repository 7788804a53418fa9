package tabular

import "errors"

// Sentinel errors surfaced by the loaders. Callers match with errors.Is and
// report the wrapped detail once on stderr.
var (
	// ErrMissingColumn signals that the requested core column is absent from
	// the core file's header row.
	ErrMissingColumn = errors.New("tabular: column not found")

	// ErrNoHeaderRow signals that keyed-row loading was requested on a file
	// without a usable header row. Template mode requires headers.
	ErrNoHeaderRow = errors.New("tabular: header row required")

	// ErrHeaderCollision signals that two secondary sources declare the same
	// field name. Field names must be unique across all merged sources.
	ErrHeaderCollision = errors.New("tabular: duplicate column names across secondary sources")
)
