package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender_Substitutes(t *testing.T) {
	got, ok := Render("{core} in {city}", map[string]string{"core": "shoes", "city": "Reno"})
	if !ok {
		t.Fatalf("expected render to succeed")
	}
	if got != "shoes in Reno" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestRender_MissingFieldSkips(t *testing.T) {
	if _, ok := Render("{core} in {city}", map[string]string{"core": "shoes"}); ok {
		t.Fatalf("expected skip when a placeholder is missing")
	}
}

func TestRender_EmptyValueSkips(t *testing.T) {
	if _, ok := Render("{core} in {city}", map[string]string{"core": "shoes", "city": ""}); ok {
		t.Fatalf("expected skip when a placeholder value is empty")
	}
}

func TestRender_CollapsesWhitespace(t *testing.T) {
	got, ok := Render("  {a}   near   {b}  ", map[string]string{"a": " x ", "b": "y\tz"})
	if !ok {
		t.Fatalf("expected render to succeed")
	}
	if strings.Contains(got, "  ") {
		t.Fatalf("result contains consecutive spaces: %q", got)
	}
	if got != strings.TrimSpace(got) {
		t.Fatalf("result has leading/trailing whitespace: %q", got)
	}
	if got != "x near y z" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	got, ok := Render("{w} {w}", map[string]string{"w": "go"})
	if !ok || got != "go go" {
		t.Fatalf("unexpected result %q ok=%v", got, ok)
	}
}

func TestRender_AllWhitespaceResultSkips(t *testing.T) {
	// no placeholders and nothing but whitespace
	if _, ok := Render("   ", map[string]string{}); ok {
		t.Fatalf("expected skip for all-whitespace result")
	}
}

func TestRender_LiteralSubstitution(t *testing.T) {
	// values are not re-expanded
	got, ok := Render("{a}", map[string]string{"a": "{b}", "b": "nope"})
	if !ok || got != "{b}" {
		t.Fatalf("expected literal substitution, got %q ok=%v", got, ok)
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{core} gigs {city} {core}")
	want := []string{"core", "city", "core"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected placeholders (-want +got):\n%s", diff)
	}
	if Placeholders("no tokens here") != nil {
		t.Fatalf("expected nil for a placeholder-free line")
	}
}

func TestHasPlaceholder(t *testing.T) {
	if !HasPlaceholder("{core} tickets") {
		t.Fatalf("expected placeholder detection")
	}
	if HasPlaceholder("CORE + Locale") {
		t.Fatalf("label line misdetected as template")
	}
	if HasPlaceholder("{}") {
		t.Fatalf("empty braces are not a placeholder")
	}
}

func TestValidate_UnknownPlaceholders(t *testing.T) {
	err := Validate(
		[]string{"{core} in {city}", "{venue} {zip}"},
		[]string{"core", "city", "venue"},
	)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var unknown *UnknownPlaceholderError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPlaceholderError, got %T", err)
	}
	if diff := cmp.Diff([]string{"zip"}, unknown.Unknown); diff != "" {
		t.Fatalf("unexpected unknown names (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "{zip}") || !strings.Contains(err.Error(), "{core}") {
		t.Fatalf("error should list offending and allowed names: %v", err)
	}
}

func TestValidate_AllowedPasses(t *testing.T) {
	if err := Validate([]string{"{core} in {city}"}, []string{"core", "city"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTable(t *testing.T) {
	rows := [][]string{
		{"{core}", "{city} {state}"},
		{"{core} tickets", "{city}"},
	}
	if err := ValidateTable(rows, []string{"core", "city"}); err == nil {
		t.Fatalf("expected error for {state}")
	}
	if err := ValidateTable(rows, []string{"core", "city", "state"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
