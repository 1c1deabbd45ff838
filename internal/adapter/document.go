package adapter

// Document is the narrow host-document capability set the cleanup logic
// relies on. It intentionally hides the underlying buffer so the domain
// layer can be exercised against any host editor adapter.
type Document interface {
	// FindMatches scans the document top to bottom and returns a position
	// and the raw line text for every line whose trimmed text equals the
	// trimmed pattern. The pattern is a literal line match, not a wildcard.
	FindMatches(pattern string) []Match

	// PositionAt returns a live position anchored at the given byte offset.
	PositionAt(offset int) Position

	// Content returns the full document text.
	Content() string

	// LineTerminator returns the terminator used for inserted lines.
	LineTerminator() string
}

// Match pairs a live position with the raw text of the matched line.
type Match struct {
	Pos  Position
	Line string
}

// Position is a live marker into a document. Markers track document
// mutations: an insertion strictly before a marker shifts it right by the
// inserted length, a deletion covering a marker clamps it to the deletion
// start. The position performing an Insert advances past its own insertion.
type Position interface {
	// Offset returns the current byte offset.
	Offset() int

	// Line returns the text of the line containing the position, without
	// the line terminator.
	Line() string

	// TextUntil returns the document text between this position and other.
	TextUntil(other Position) string

	// MoveRight advances the position n bytes, clamped to the document.
	MoveRight(n int)

	// MoveLineDown moves the position n lines down, preserving the column
	// where possible.
	MoveLineDown(n int)

	// MoveToLineStart moves the position to the start of its line.
	MoveToLineStart()

	// Insert writes text at the position and advances past it.
	Insert(text string)

	// Delete removes the text between this position and other.
	Delete(other Position)

	// Indent inserts the given number of indentation levels at the start
	// of the line containing the position.
	Indent(levels int)
}
