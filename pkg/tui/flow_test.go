package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptDriver answers prompts from pre-seeded queues, running each prompt's
// validator the way the terminal driver would.
type scriptDriver struct {
	t        *testing.T
	inputs   []string
	confirms []bool
	selects  []int
	infos    []string
}

func (d *scriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected Input prompt: %s", cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", fmt.Errorf("answer %q rejected for %q: %w", answer, cfg.Message, err)
		}
	}
	return answer, nil
}

func (d *scriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected Confirm prompt: %s", cfg.Message)
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected Select prompt: %s", cfg.Message)
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	if answer < 0 || answer >= len(cfg.Options) {
		d.t.Fatalf("scripted choice %d out of range for %q (%d options)", answer, cfg.Message, len(cfg.Options))
	}
	return answer, nil
}

func (d *scriptDriver) Info(ctx context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func (d *scriptDriver) sawInfo(substr string) bool {
	for _, msg := range d.infos {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFlow_PermutationRun(t *testing.T) {
	dir := t.TempDir()
	core := writeFixture(t, dir, "core.csv", "core\nX\n")
	secondary := writeFixture(t, dir, "sec.csv", "a,b\n")
	out := filepath.Join(dir, "keywords.txt")

	driver := &scriptDriver{
		t:        t,
		inputs:   []string{core, secondary, out},
		confirms: []bool{false /* add more */, false /* use template */, false /* skip header */, true /* proceed */},
		selects:  []int{0 /* core column */, 0 /* no grouping */, 1 /* phrase match */},
	}

	if err := NewFlow(driver).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "\"X a b\"\n\"a X b\"\n\"a b X\"\n\"X b a\"\n\"b X a\"\n\"b a X\"\n"
	if string(data) != want {
		t.Fatalf("unexpected output %q", string(data))
	}
	if !driver.sawInfo("Wrote output to " + out) {
		t.Fatalf("summary missing output path; infos: %v", driver.infos)
	}
}

func TestFlow_TemplatedGroupedRun(t *testing.T) {
	dir := t.TempDir()
	core := writeFixture(t, dir, "core.csv", "core\nshoes\n")
	secondary := writeFixture(t, dir, "cities.csv", "city\nReno\nBoise\n")
	tmpl := writeFixture(t, dir, "templates.csv", "{core} in {city}\n")
	out := filepath.Join(dir, "keywords.txt")

	driver := &scriptDriver{
		t:        t,
		inputs:   []string{core, secondary, tmpl, out},
		confirms: []bool{false /* add more */, true /* use template */, true /* proceed */},
		// grouping options are [no grouping, core, city]
		selects: []int{0 /* core column */, 2 /* group by city */, 2 /* exact match */},
	}

	if err := NewFlow(driver).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reno := filepath.Join(dir, "keywords.Reno.txt")
	data, err := os.ReadFile(reno)
	if err != nil {
		t.Fatalf("read grouped output: %v", err)
	}
	if string(data) != "[shoes in Reno]\n" {
		t.Fatalf("unexpected grouped content %q", string(data))
	}
	if _, err := os.Stat(filepath.Join(dir, "keywords.Boise.txt")); err != nil {
		t.Fatalf("missing second group file: %v", err)
	}
	if !driver.sawInfo("Total generated (raw): 2") {
		t.Fatalf("duplicate analysis missing; infos: %v", driver.infos)
	}
}

func TestFlow_DeclinedAtPreview(t *testing.T) {
	dir := t.TempDir()
	core := writeFixture(t, dir, "core.csv", "core\nX\n")
	secondary := writeFixture(t, dir, "sec.csv", "a\n")

	driver := &scriptDriver{
		t:        t,
		inputs:   []string{core, secondary},
		confirms: []bool{false /* add more */, false /* use template */, false /* skip header */, false /* proceed */},
		selects:  []int{0 /* core column */, 0 /* no grouping */},
	}

	if err := NewFlow(driver).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !driver.sawInfo("Canceled.") {
		t.Fatalf("expected cancellation notice; infos: %v", driver.infos)
	}
}

type abortDriver struct{}

func (abortDriver) Input(context.Context, InputConfig) (string, error) { return "", ErrAborted }

func (abortDriver) Confirm(context.Context, ConfirmConfig) (bool, error) { return false, ErrAborted }

func (abortDriver) Select(context.Context, SelectConfig) (int, error) { return 0, ErrAborted }

func (abortDriver) Info(context.Context, string) error { return nil }

func TestFlow_InterruptSurfacesErrAborted(t *testing.T) {
	if err := NewFlow(abortDriver{}).Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestParseMultiPaths(t *testing.T) {
	got, err := parseMultiPaths(`a.csv, b.csv "my file.csv" a.csv`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a.csv", "b.csv", "my file.csv"}
	if len(got) != len(want) {
		t.Fatalf("unexpected paths %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected paths %v", got)
		}
	}
}

func TestSniffHeader(t *testing.T) {
	dir := t.TempDir()
	headered := writeFixture(t, dir, "h.csv", "city,venue\nReno,Arena\n")
	if !sniffHeader(headered) {
		t.Fatalf("expected header detection")
	}
	numeric := writeFixture(t, dir, "n.csv", "12,34\n56,78\n")
	if sniffHeader(numeric) {
		t.Fatalf("numeric first row misdetected as header")
	}
}
