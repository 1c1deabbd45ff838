package adapter

import (
	"strings"
)

// BufferDocument is an in-memory Document backed by a byte buffer. Every
// position handed out stays registered with the buffer so it can be
// adjusted on each mutation. One pass owns the document exclusively; the
// buffer performs no locking.
type BufferDocument struct {
	content []byte
	markers []*bufferPosition
	term    string
	indent  string
}

// NewBufferDocument wraps content in a BufferDocument using term as the
// line terminator for inserted lines and indent as one indentation level.
func NewBufferDocument(content, term, indent string) *BufferDocument {
	return &BufferDocument{
		content: []byte(content),
		term:    term,
		indent:  indent,
	}
}

// FindMatches returns a position and raw line text for every line whose
// trimmed text equals the trimmed pattern, in document order.
func (d *BufferDocument) FindMatches(pattern string) []Match {
	want := strings.TrimSpace(pattern)
	if want == "" {
		return nil
	}

	var matches []Match

	for ls := 0; ls <= len(d.content); {
		le := d.lineEnd(ls)
		line := string(d.content[ls:le])

		if strings.TrimSpace(line) == want {
			matches = append(matches, Match{Pos: d.PositionAt(ls), Line: line})
		}

		if le >= len(d.content) {
			break
		}

		ls = le + 1
	}

	return matches
}

// PositionAt returns a live position anchored at offset.
func (d *BufferDocument) PositionAt(offset int) Position {
	p := &bufferPosition{doc: d, off: d.clamp(offset)}
	d.markers = append(d.markers, p)

	return p
}

// Content returns the full document text.
func (d *BufferDocument) Content() string {
	return string(d.content)
}

// LineTerminator returns the terminator used for inserted lines.
func (d *BufferDocument) LineTerminator() string {
	return d.term
}

func (d *BufferDocument) clamp(off int) int {
	if off < 0 {
		return 0
	}

	if off > len(d.content) {
		return len(d.content)
	}

	return off
}

// lineStart returns the offset of the first byte of the line containing off.
func (d *BufferDocument) lineStart(off int) int {
	return strings.LastIndexByte(string(d.content[:off]), '\n') + 1
}

// lineEnd returns the offset of the terminator of the line containing off,
// or len(content) for the last line.
func (d *BufferDocument) lineEnd(off int) int {
	if i := strings.IndexByte(string(d.content[off:]), '\n'); i >= 0 {
		return off + i
	}

	return len(d.content)
}

// insert splices text into the buffer at off. The acting position (may be
// nil) advances past the inserted text; every other marker shifts only if
// the insertion happened strictly before it.
func (d *BufferDocument) insert(off int, text string, acting *bufferPosition) {
	if text == "" {
		return
	}

	buf := make([]byte, 0, len(d.content)+len(text))
	buf = append(buf, d.content[:off]...)
	buf = append(buf, text...)
	buf = append(buf, d.content[off:]...)
	d.content = buf

	for _, m := range d.markers {
		switch {
		case m == acting:
			m.off = off + len(text)
		case m.off > off:
			m.off += len(text)
		}
	}
}

// deleteRange removes [from, to) from the buffer. Markers past the range
// shift left; markers inside it clamp to the deletion start.
func (d *BufferDocument) deleteRange(from, to int) {
	if from >= to {
		return
	}

	d.content = append(d.content[:from:from], d.content[to:]...)

	for _, m := range d.markers {
		switch {
		case m.off >= to:
			m.off -= to - from
		case m.off > from:
			m.off = from
		}
	}
}

// bufferPosition is a live marker registered with its BufferDocument.
type bufferPosition struct {
	doc *BufferDocument
	off int
}

func (p *bufferPosition) Offset() int {
	return p.off
}

func (p *bufferPosition) Line() string {
	ls := p.doc.lineStart(p.off)

	return string(p.doc.content[ls:p.doc.lineEnd(ls)])
}

func (p *bufferPosition) TextUntil(other Position) string {
	from, to := ordered(p.off, other.Offset())

	return string(p.doc.content[from:to])
}

func (p *bufferPosition) MoveRight(n int) {
	p.off = p.doc.clamp(p.off + n)
}

func (p *bufferPosition) MoveLineDown(n int) {
	col := p.off - p.doc.lineStart(p.off)

	for i := 0; i < n; i++ {
		le := p.doc.lineEnd(p.off)
		if le >= len(p.doc.content) {
			p.off = le
			return
		}

		p.off = le + 1
	}

	if end := p.doc.lineEnd(p.off); p.off+col <= end {
		p.off += col
	} else {
		p.off = end
	}
}

func (p *bufferPosition) MoveToLineStart() {
	p.off = p.doc.lineStart(p.off)
}

func (p *bufferPosition) Insert(text string) {
	p.doc.insert(p.off, text, p)
}

func (p *bufferPosition) Delete(other Position) {
	from, to := ordered(p.off, other.Offset())
	p.doc.deleteRange(from, to)
}

func (p *bufferPosition) Indent(levels int) {
	if levels <= 0 {
		return
	}

	p.doc.insert(p.doc.lineStart(p.off), strings.Repeat(p.doc.indent, levels), nil)
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
