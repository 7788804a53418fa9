package expand

import (
	"strings"

	"github.com/goliatone/go-kwgen/pkg/keyword"
)

// Recorder is the run-scoped state for one phrase-producing generation run:
// a streaming first-occurrence de-duplicator plus the phrase-to-group-value
// mapping consumed by split output. It replaces any notion of session-global
// seen sets; construct one per run and discard it afterwards.
//
// Group values are recorded on the FIRST raw occurrence of a phrase, so a
// phrase generated again later from a different row keeps its original group.
type Recorder struct {
	key     keyword.GroupKey
	seen    map[string]struct{}
	phrases []string
	groups  map[string]string
	raw     int
	counts  map[string]int
}

// NewRecorder builds a Recorder for the given grouping key. GroupNone records
// every phrase under the "all" group.
func NewRecorder(key keyword.GroupKey) *Recorder {
	return &Recorder{
		key:    key,
		seen:   make(map[string]struct{}),
		groups: make(map[string]string),
		counts: make(map[string]int),
	}
}

// Observe folds one raw phrase into the run state. It reports whether the
// phrase was a first occurrence.
func (r *Recorder) Observe(phrase, core string, row keyword.Row) bool {
	r.raw++
	r.counts[phrase]++
	if _, dup := r.seen[phrase]; dup {
		return false
	}
	r.seen[phrase] = struct{}{}
	r.phrases = append(r.phrases, phrase)
	r.groups[phrase] = r.key.ValueFor(core, row)
	return true
}

// Phrases returns the de-duplicated phrases in first-occurrence order.
func (r *Recorder) Phrases() []string { return r.phrases }

// Groups returns the phrase-to-group-value mapping.
func (r *Recorder) Groups() map[string]string { return r.groups }

// Raw returns the raw (pre-dedup) phrase count.
func (r *Recorder) Raw() int { return r.raw }

// Unique returns the de-duplicated phrase count.
func (r *Recorder) Unique() int { return len(r.phrases) }

// Duplicates returns how many raw phrases were dropped as repeats.
func (r *Recorder) Duplicates() int { return r.raw - len(r.phrases) }

// TopDuplicates returns up to limit (phrase, count) pairs for phrases seen
// more than once, most frequent first, ties broken by first-occurrence order.
func (r *Recorder) TopDuplicates(limit int) []DuplicateCount {
	var dups []DuplicateCount
	for _, phrase := range r.phrases {
		if c := r.counts[phrase]; c > 1 {
			dups = append(dups, DuplicateCount{Phrase: phrase, Count: c})
		}
	}
	// stable selection sort by count desc; duplicate lists are small
	for i := 0; i < len(dups); i++ {
		best := i
		for j := i + 1; j < len(dups); j++ {
			if dups[j].Count > dups[best].Count {
				best = j
			}
		}
		if best != i {
			picked := dups[best]
			copy(dups[i+1:best+1], dups[i:best])
			dups[i] = picked
		}
	}
	if limit > 0 && len(dups) > limit {
		dups = dups[:limit]
	}
	return dups
}

// DuplicateCount pairs a repeated phrase with its raw occurrence count.
type DuplicateCount struct {
	Phrase string
	Count  int
}

// RowRecorder is the table-mode counterpart of Recorder: streaming dedupe over
// output rows keyed by element-wise equality. Table mode has no grouping.
type RowRecorder struct {
	seen map[string]struct{}
	rows [][]string
	raw  int
}

// NewRowRecorder builds an empty RowRecorder.
func NewRowRecorder() *RowRecorder {
	return &RowRecorder{seen: make(map[string]struct{})}
}

// Observe folds one raw output row into the run state, copying cells on first
// occurrence. It reports whether the row was new.
func (r *RowRecorder) Observe(cells []string) bool {
	r.raw++
	key := strings.Join(cells, rowKeySep)
	if _, dup := r.seen[key]; dup {
		return false
	}
	r.seen[key] = struct{}{}
	copied := make([]string, len(cells))
	copy(copied, cells)
	r.rows = append(r.rows, copied)
	return true
}

// Rows returns the de-duplicated rows in first-occurrence order.
func (r *RowRecorder) Rows() [][]string { return r.rows }

// Raw returns the raw row count.
func (r *RowRecorder) Raw() int { return r.raw }

// Unique returns the de-duplicated row count.
func (r *RowRecorder) Unique() int { return len(r.rows) }
