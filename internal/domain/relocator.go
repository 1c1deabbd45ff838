package domain

import (
	"strings"

	"github.com/exagit/codemaid/internal/adapter"
	m "github.com/exagit/codemaid/internal/model"
)

// ScopeRelocator moves directives inside the sole enclosing scope block,
// preserving the caller-supplied order in their final document positions.
type ScopeRelocator struct{}

// NewScopeRelocator constructs a ScopeRelocator.
func NewScopeRelocator() *ScopeRelocator {
	return &ScopeRelocator{}
}

// Relocate deletes each directive from its original location and re-inserts
// it, in the order given, on the first line interior to the scope block.
// Zero or multiple scope blocks are unsupported: the call returns without
// modifying anything. The cut-and-paste per directive also covers
// directives that start outside the scope, such as at the top of the file.
func (r *ScopeRelocator) Relocate(doc adapter.Document, sorted []m.ImportDirective, scopes []m.ScopeBlock) {
	if len(scopes) != 1 || len(sorted) == 0 {
		return
	}

	// Live spans first: every deletion and insertion below shifts the
	// remaining directives' offsets.
	type liveSpan struct {
		start, end adapter.Position
	}

	spans := make([]liveSpan, len(sorted))
	for i, d := range sorted {
		spans[i] = liveSpan{start: doc.PositionAt(d.Span.Start), end: doc.PositionAt(d.Span.End)}
	}

	cursor := doc.PositionAt(scopes[0].Span.Start)
	cursor.MoveLineDown(1)
	cursor.MoveRight(1)
	cursor.Insert(doc.LineTerminator())

	for _, s := range spans {
		text := strings.TrimSpace(s.start.TextUntil(s.end))

		s.start.Delete(s.end)

		cursor.Insert(text)
		cursor.Indent(1)
		cursor.Insert(doc.LineTerminator())
	}
}
