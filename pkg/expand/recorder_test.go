package expand

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kwgen/pkg/keyword"
)

func TestRecorder_GroupFollowsFirstOccurrence(t *testing.T) {
	reno := keyword.NewKeyedRow([]string{"city"}, map[string]string{"city": "Reno"})
	boise := keyword.NewKeyedRow([]string{"city"}, map[string]string{"city": "Boise"})

	r := NewRecorder(keyword.GroupKey("city"))
	if !r.Observe("shoes", "shoes", reno) {
		t.Fatalf("first occurrence should be new")
	}
	if r.Observe("shoes", "shoes", boise) {
		t.Fatalf("second occurrence should be a duplicate")
	}

	if got := r.Groups()["shoes"]; got != "Reno" {
		t.Fatalf("group should follow first occurrence, got %q", got)
	}
}

func TestRecorder_GroupModes(t *testing.T) {
	row := keyword.NewKeyedRow([]string{"city"}, map[string]string{"city": "Reno"})

	none := NewRecorder(keyword.GroupNone)
	none.Observe("p", "shoes", row)
	if got := none.Groups()["p"]; got != keyword.GroupValueAll {
		t.Fatalf("disabled grouping should record %q, got %q", keyword.GroupValueAll, got)
	}

	byCore := NewRecorder(keyword.GroupCore)
	byCore.Observe("p", "shoes", row)
	if got := byCore.Groups()["p"]; got != "shoes" {
		t.Fatalf("core grouping should record the core phrase, got %q", got)
	}

	missing := NewRecorder(keyword.GroupKey("state"))
	missing.Observe("p", "shoes", row)
	if got := missing.Groups()["p"]; got != keyword.GroupValueUnknown {
		t.Fatalf("absent field should record %q, got %q", keyword.GroupValueUnknown, got)
	}
}

func TestRecorder_Counts(t *testing.T) {
	row := keyword.NewPositionalRow("a")
	r := NewRecorder(keyword.GroupNone)
	for _, phrase := range []string{"a", "b", "a", "c", "a", "b"} {
		r.Observe(phrase, "core", row)
	}
	if r.Raw() != 6 || r.Unique() != 3 || r.Duplicates() != 3 {
		t.Fatalf("unexpected counts raw=%d unique=%d dup=%d", r.Raw(), r.Unique(), r.Duplicates())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, r.Phrases()); diff != "" {
		t.Fatalf("unexpected phrases (-want +got):\n%s", diff)
	}

	top := r.TopDuplicates(10)
	want := []DuplicateCount{{Phrase: "a", Count: 3}, {Phrase: "b", Count: 2}}
	if diff := cmp.Diff(want, top); diff != "" {
		t.Fatalf("unexpected top duplicates (-want +got):\n%s", diff)
	}

	if got := r.TopDuplicates(1); len(got) != 1 || got[0].Phrase != "a" {
		t.Fatalf("limit not applied: %v", got)
	}
}

func TestRowRecorder_Dedupes(t *testing.T) {
	r := NewRowRecorder()
	if !r.Observe([]string{"a", "b"}) {
		t.Fatalf("first row should be new")
	}
	if r.Observe([]string{"a", "b"}) {
		t.Fatalf("identical row should be a duplicate")
	}
	if !r.Observe([]string{"a", "c"}) {
		t.Fatalf("distinct row should be new")
	}
	if r.Raw() != 3 || r.Unique() != 2 {
		t.Fatalf("unexpected counts raw=%d unique=%d", r.Raw(), r.Unique())
	}
	want := [][]string{{"a", "b"}, {"a", "c"}}
	if diff := cmp.Diff(want, r.Rows()); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}
