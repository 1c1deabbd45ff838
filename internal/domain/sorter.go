package domain

import (
	"sort"
	"strings"

	m "github.com/exagit/codemaid/internal/model"
)

// DirectiveSorter extracts reference names from raw directive text and
// orders directives: standard-library references first, then ordinal order
// on the reference name within each class.
type DirectiveSorter struct {
	root       string
	terminator string
}

// NewDirectiveSorter builds a sorter for the given standard-library root
// token and statement terminator. An empty root falls back to "System".
func NewDirectiveSorter(root, terminator string) *DirectiveSorter {
	if root == "" {
		root = "System"
	}

	return &DirectiveSorter{root: root, terminator: terminator}
}

// ExtractReferenceName tokenizes the raw directive text on whitespace,
// skips the leading keyword token and returns the next token with a single
// trailing statement terminator trimmed. Malformed input yields "".
func (s *DirectiveSorter) ExtractReferenceName(directiveText string) string {
	fields := strings.Fields(directiveText)
	if len(fields) < 2 {
		return ""
	}

	return strings.TrimSuffix(fields[1], s.terminator)
}

// IsStandardLibrary reports whether name is the reserved root token or is
// nested under it.
func (s *DirectiveSorter) IsStandardLibrary(name string) bool {
	return name == s.root || strings.HasPrefix(name, s.root+".")
}

// Compare orders two raw directive texts by their extracted reference
// names: standard-library names strictly first, ordinal comparison within
// the same class. Equal reference names compare equal regardless of
// differences in the surrounding directive text.
func (s *DirectiveSorter) Compare(a, b string) int {
	na, nb := s.ExtractReferenceName(a), s.ExtractReferenceName(b)

	if sa, sb := s.IsStandardLibrary(na), s.IsStandardLibrary(nb); sa != sb {
		if sa {
			return -1
		}

		return 1
	}

	return strings.Compare(na, nb)
}

// Sort returns a new slice with the directives in cleanup order and their
// Reference and StandardLibrary fields populated. The sort is stable.
func (s *DirectiveSorter) Sort(directives []m.ImportDirective) []m.ImportDirective {
	out := make([]m.ImportDirective, len(directives))
	copy(out, directives)

	for i := range out {
		out[i].Reference = s.ExtractReferenceName(out[i].Text)
		out[i].StandardLibrary = s.IsStandardLibrary(out[i].Reference)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return s.Compare(out[i].Text, out[j].Text) < 0
	})

	return out
}
