package permute

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate_FullSetOrder(t *testing.T) {
	got := Generate("X", []string{"a", "b"}, nil)
	want := []string{
		"X a b", "a X b", "a b X",
		"X b a", "b X a", "b a X",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected phrases (-want +got):\n%s", diff)
	}
}

func TestGenerate_CountMatchesFactorial(t *testing.T) {
	fields := []string{"a", "b", "c", "d"}
	got := Generate("core", fields, nil)
	// n! * (n+1) for the full-set default
	want := 24 * 5
	if len(got) != want {
		t.Fatalf("expected %d phrases, got %d", want, len(got))
	}
	if Count(len(fields), nil) != want {
		t.Fatalf("Count disagrees: %d != %d", Count(len(fields), nil), want)
	}
}

func TestGenerate_EmptyFields(t *testing.T) {
	if got := Generate("X", nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := Generate("X", nil, Min(0)); len(got) != 0 {
		t.Fatalf("expected empty result with minFields=0, got %v", got)
	}
}

func TestGenerate_MinFieldsZeroIncludesLoneCore(t *testing.T) {
	got := Generate("X", []string{"a"}, Min(0))
	want := []string{"X", "X a", "a X"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected phrases (-want +got):\n%s", diff)
	}
}

func TestGenerate_MinFieldsRange(t *testing.T) {
	got := Generate("X", []string{"a", "b"}, Min(1))
	want := []string{
		// length 1: subsets {a}, {b}
		"X a", "a X",
		"X b", "b X",
		// length 2
		"X a b", "a X b", "a b X",
		"X b a", "b X a", "b a X",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected phrases (-want +got):\n%s", diff)
	}
}

func TestGenerate_MinFieldsClamped(t *testing.T) {
	full := Generate("X", []string{"a", "b"}, nil)
	clamped := Generate("X", []string{"a", "b"}, Min(99))
	if diff := cmp.Diff(full, clamped); diff != "" {
		t.Fatalf("minFields above n should clamp to n (-full +clamped):\n%s", diff)
	}
}

func TestEach_StopsEarly(t *testing.T) {
	var seen []string
	completed := Each("X", []string{"a", "b", "c"}, nil, func(phrase string) bool {
		seen = append(seen, phrase)
		return len(seen) < 5
	})
	if completed {
		t.Fatalf("expected early stop to report incomplete enumeration")
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 phrases before stopping, got %d", len(seen))
	}
	if seen[0] != "X a b c" {
		t.Fatalf("unexpected first phrase %q", seen[0])
	}
}

func TestCount_MinFields(t *testing.T) {
	// n=2, minFields=0: lengths 0,1,2 -> 1*1 + 2*2 + 2*3 = 11
	if got := Count(2, Min(0)); got != 11 {
		t.Fatalf("Count(2, 0) = %d, want 11", got)
	}
	if got := Count(0, nil); got != 0 {
		t.Fatalf("Count(0, nil) = %d, want 0", got)
	}
}
