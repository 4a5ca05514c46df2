package builder_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/builder"
)

// assertPanics fails the test if the provided function does not panic.
// It recovers from a panic and marks the test as failed if none occurred.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn implementation with table-driven subtests.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input string
		want  string
	}{
		{"Slug_simple", builder.SlugIDFn, "Library", "library"},
		{"Slug_spaces", builder.SlugIDFn, "Main Gate", "main_gate"},
		{"Slug_runs", builder.SlugIDFn, "  Old \t Science   Hall ", "old_science_hall"},
		{"Slug_blank", builder.SlugIDFn, "   ", ""},
		{"Slug_keeps_punct", builder.SlugIDFn, "Lab-2 (East)", "lab-2_(east)"},
		{"Exact_trims", builder.ExactIDFn, "  Main Gate ", "Main Gate"},
		{"Exact_blank", builder.ExactIDFn, "\t", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%q) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}

// TestIDSchemeOptions checks the option constructors.
func TestIDSchemeOptions(t *testing.T) {
	assertPanics(t, func() { builder.WithIDScheme(nil) }, "WithIDScheme(nil)")

	g, err := builder.Chain([]builder.Mark{{Name: "Main Gate"}}, builder.WithExactIDs())
	if err != nil {
		t.Fatal(err)
	}
	if !g.Contains("Main Gate") {
		t.Errorf("exact ids: keys = %v", g.Keys())
	}

	g, err = builder.Chain([]builder.Mark{{Name: "Main Gate"}}, builder.WithExactIDs(), builder.WithSlugIDs())
	if err != nil {
		t.Fatal(err)
	}
	if !g.Contains("main_gate") {
		t.Errorf("last option wins: keys = %v", g.Keys())
	}
}
