package domain

import (
	"testing"

	m "github.com/exagit/codemaid/internal/model"
)

func TestDirectiveSorter_ExtractReferenceName(t *testing.T) {
	s := NewDirectiveSorter("System", ";")

	cases := []struct {
		in   string
		want string
	}{
		{"using System.Threading.Tasks;", "System.Threading.Tasks"},
		{"using   System.Threading.Tasks ;", "System.Threading.Tasks"},
		{"using\tMyApp.Utils;", "MyApp.Utils"},
		{"using System;;", "System;"},
		{"using", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := s.ExtractReferenceName(tc.in); got != tc.want {
			t.Fatalf("ExtractReferenceName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDirectiveSorter_IsStandardLibrary(t *testing.T) {
	s := NewDirectiveSorter("System", ";")

	cases := []struct {
		name string
		want bool
	}{
		{"System", true},
		{"System.Linq", true},
		{"System.Collections.Generic", true},
		{"SystemX", false},
		{"MyApp.System", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := s.IsStandardLibrary(tc.name); got != tc.want {
			t.Fatalf("IsStandardLibrary(%q) = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestDirectiveSorter_CustomRoot(t *testing.T) {
	s := NewDirectiveSorter("Core", ";")

	if !s.IsStandardLibrary("Core.IO") {
		t.Fatalf("expected Core.IO to count as standard library")
	}

	if s.IsStandardLibrary("System") {
		t.Fatalf("expected System to be ordinary under a Core root")
	}
}

func TestDirectiveSorter_EmptyRootFallsBack(t *testing.T) {
	s := NewDirectiveSorter("", ";")

	if !s.IsStandardLibrary("System.Linq") {
		t.Fatalf("expected empty root to fall back to System")
	}
}

func TestDirectiveSorter_Compare(t *testing.T) {
	s := NewDirectiveSorter("System", ";")

	cases := []struct {
		a, b string
		want int
	}{
		{"using System;", "using MyApp;", -1},
		{"using MyApp;", "using System.Linq;", 1},
		{"using System;", "using System.Linq;", -1},
		{"using MyApp.A;", "using MyApp.B;", -1},
		{"using System.Linq;", "using   System.Linq ;", 0},
		{"using Zebra;", "using Alpha;", 1},
	}

	for _, tc := range cases {
		if got := s.Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDirectiveSorter_Sort(t *testing.T) {
	s := NewDirectiveSorter("System", ";")

	directives := []m.ImportDirective{
		{Text: "using MyApp.Utils;"},
		{Text: "using System.Linq;"},
		{Text: "using Alpha;"},
		{Text: "using System;"},
	}

	sorted := s.Sort(directives)

	wantRefs := []string{"System", "System.Linq", "Alpha", "MyApp.Utils"}
	for i, want := range wantRefs {
		if sorted[i].Reference != want {
			t.Fatalf("position %d: got %q, want %q", i, sorted[i].Reference, want)
		}
	}

	if !sorted[0].StandardLibrary || !sorted[1].StandardLibrary {
		t.Fatalf("expected the first two entries to be flagged standard library")
	}

	if sorted[2].StandardLibrary || sorted[3].StandardLibrary {
		t.Fatalf("expected non-System entries to be unflagged")
	}

	// The input must stay untouched.
	if directives[0].Text != "using MyApp.Utils;" || directives[0].Reference != "" {
		t.Fatalf("input slice was mutated: %+v", directives[0])
	}
}

func TestDirectiveSorter_SortIdempotent(t *testing.T) {
	s := NewDirectiveSorter("System", ";")

	directives := []m.ImportDirective{
		{Text: "using System;"},
		{Text: "using System.Text;"},
		{Text: "using MyApp;"},
	}

	once := s.Sort(directives)
	twice := s.Sort(once)

	for i := range once {
		if once[i].Text != twice[i].Text {
			t.Fatalf("re-sorting changed position %d: %q vs %q", i, once[i].Text, twice[i].Text)
		}
	}
}
