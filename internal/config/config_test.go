package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kwgen/pkg/keyword"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, `
core: data/core.csv
core_column: core
secondary:
  - data/cities.csv
  - data/venues.csv
template: data/templates.csv
output: out/keywords.txt
min_fields: 2
match_type: phrase
group_by: city
skip_header: true
`)
	job, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"data/cities.csv", "data/venues.csv"}, job.Secondary); diff != "" {
		t.Fatalf("unexpected secondary (-want +got):\n%s", diff)
	}
	if job.MinFields == nil || *job.MinFields != 2 {
		t.Fatalf("unexpected min_fields: %v", job.MinFields)
	}
	if job.Match() != keyword.MatchPhrase {
		t.Fatalf("unexpected match type %v", job.Match())
	}
	if job.Group() != keyword.GroupKey("city") {
		t.Fatalf("unexpected group %q", job.Group())
	}
	if !job.SkipHeader {
		t.Fatalf("skip_header not decoded")
	}
}

func TestLoad_PartialJobDefersValidation(t *testing.T) {
	// required fields may arrive as flag overrides after loading
	path := writeJob(t, `
core: core.csv
secondary: [s.csv]
`)
	job, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Output != "" {
		t.Fatalf("unexpected output %q", job.Output)
	}
	if err := job.Validate(); err == nil {
		t.Fatalf("expected the incomplete job to fail validation")
	}
	job.Output = "out.txt"
	if err := job.Validate(); err != nil {
		t.Fatalf("unexpected error after completing the job: %v", err)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeJob(t, `
core: core.csv
secondary: [s.csv]
output: out.txt
not_a_field: true
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	base := Job{Core: "c.csv", Secondary: []string{"s.csv"}, Output: "o.txt"}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		edit func(*Job)
		want string
	}{
		{"missing core", func(j *Job) { j.Core = "" }, "core file"},
		{"missing secondary", func(j *Job) { j.Secondary = nil }, "secondary file"},
		{"missing output", func(j *Job) { j.Output = "" }, "output path"},
		{"bad match type", func(j *Job) { j.MatchType = "fuzzy" }, "match type"},
		{"negative min fields", func(j *Job) { n := -1; j.MinFields = &n }, "min_fields"},
		{"group with keep dupes", func(j *Job) { j.GroupBy = "city"; j.KeepDupes = true }, "keep_duplicates"},
	}
	for _, tc := range cases {
		job := base
		tc.edit(&job)
		err := job.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestGroupSpellings(t *testing.T) {
	if (Job{}).Group() != keyword.GroupNone {
		t.Fatalf("empty group_by should disable grouping")
	}
	if (Job{GroupBy: "none"}).Group() != keyword.GroupNone {
		t.Fatalf(`"none" should disable grouping`)
	}
	if (Job{GroupBy: "core"}).Group() != keyword.GroupCore {
		t.Fatalf(`"core" should group by core phrase`)
	}
}
