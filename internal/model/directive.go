package model

// Path represents a file system path.
type Path string

// Span is a half-open [Start, End) byte range inside a document.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// ImportDirective is a single import directive found in a document. The span
// covers the full source line, including leading indentation and the line
// terminator, so deleting it removes the line without leaving a gap.
// Directives live only for the duration of one cleanup pass.
type ImportDirective struct {
	Span Span
	// Text is the raw directive statement with surrounding whitespace trimmed.
	Text string
	// Reference is the extracted reference name, e.g. "System.Linq".
	Reference string
	// StandardLibrary reports whether Reference is rooted in the reserved
	// standard-library namespace.
	StandardLibrary bool
}

// ScopeBlock is one enclosing namespace/module region directives may be
// relocated into. Start points at the first character of the scope
// declaration line; End is just past the closing brace.
type ScopeBlock struct {
	Span Span
	Name string
}
