package orchestrator

import "github.com/goliatone/go-kwgen/pkg/expand"

// Stats summarises one generation run for user-facing reporting. RenderSkips
// is the only trace a skipped combination leaves.
type Stats struct {
	Cores              int
	SecondaryRows      int
	Templates          int
	SkippedNonTemplate int
	RenderSkips        int
	Raw                int
	Unique             int
}

// Result carries the output of one generation run. Phrase strategies fill
// Phrases and Groups; table mode fills Header and Rows instead.
type Result struct {
	// Phrases holds the final phrase list, match-type wrapping applied,
	// first-occurrence order (raw order when duplicates are kept).
	Phrases []string

	// Groups maps each bare (unwrapped) phrase to the group value recorded on
	// its first raw occurrence.
	Groups map[string]string

	// TopDuplicates lists up to ten phrases generated more than once, most
	// frequent first, for duplicate-analysis reporting.
	TopDuplicates []expand.DuplicateCount

	// TableMode reports whether Header/Rows carry the output instead of
	// Phrases.
	TableMode bool
	Header    []string
	Rows      [][]string

	// WrittenPaths lists every file the run produced, in write order.
	WrittenPaths []string

	Stats Stats
}
