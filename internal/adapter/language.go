package adapter

import (
	"regexp"
	"strings"

	m "github.com/exagit/codemaid/internal/model"
)

// LanguageProfile carries the handful of lexical facts the scanner needs to
// recognize import directives and enclosing scopes. Full grammar parsing is
// deliberately out of scope; a directive is a single line.
type LanguageProfile struct {
	// DirectiveKeyword introduces an import directive line, e.g. "using".
	DirectiveKeyword string
	// ScopeKeyword introduces an enclosing scope, e.g. "namespace".
	ScopeKeyword string
	// Terminator is the statement terminator character, e.g. ";".
	Terminator string
	// IndentUnit is the text of one indentation level.
	IndentUnit string
	// LineTerminator is the terminator used for inserted lines.
	LineTerminator string
	// Extensions lists the file extensions the profile applies to.
	Extensions []string
}

// DefaultProfile returns the C#-style profile the tool ships with.
func DefaultProfile() LanguageProfile {
	return LanguageProfile{
		DirectiveKeyword: "using",
		ScopeKeyword:     "namespace",
		Terminator:       ";",
		IndentUnit:       "    ",
		LineTerminator:   "\n",
		Extensions:       []string{".cs"},
	}
}

var scopeNamePattern = regexp.MustCompile(`^\s*\S+\s+([A-Za-z_][\w.]*)`)

// ScanDirectives returns every import directive line in document order.
// A directive line starts with the directive keyword, ends with the
// statement terminator and contains no parenthesis, which keeps resource
// statements such as `using (var f = ...)` out of the result.
func (p LanguageProfile) ScanDirectives(doc Document) []m.ImportDirective {
	var directives []m.ImportDirective

	content := doc.Content()

	forEachLine(content, func(ls, le int) {
		line := content[ls:le]
		trimmed := strings.TrimSpace(line)

		if !strings.HasPrefix(trimmed, p.DirectiveKeyword+" ") {
			return
		}

		if !strings.HasSuffix(trimmed, p.Terminator) || strings.ContainsRune(trimmed, '(') {
			return
		}

		end := le
		if end < len(content) {
			end++ // take the line terminator with the span
		}

		directives = append(directives, m.ImportDirective{
			Span: m.Span{Start: ls, End: end},
			Text: trimmed,
		})
	})

	return directives
}

// ScanScopeBlocks returns every enclosing scope block in document order.
// The block starts at the scope declaration line and ends just past the
// brace matching the first opening brace that follows the declaration.
func (p LanguageProfile) ScanScopeBlocks(doc Document) []m.ScopeBlock {
	var blocks []m.ScopeBlock

	content := doc.Content()

	forEachLine(content, func(ls, le int) {
		trimmed := strings.TrimSpace(content[ls:le])
		if !strings.HasPrefix(trimmed, p.ScopeKeyword+" ") {
			return
		}

		open := strings.IndexByte(content[ls:], '{')
		if open < 0 {
			return
		}

		end := matchBrace(content, ls+open)
		if end < 0 {
			return
		}

		name := ""
		if sub := scopeNamePattern.FindStringSubmatch(content[ls:le]); sub != nil {
			name = sub[1]
		}

		blocks = append(blocks, m.ScopeBlock{
			Span: m.Span{Start: ls, End: end + 1},
			Name: name,
		})
	})

	return blocks
}

// forEachLine calls fn with the [start, end) byte range of every line,
// where end excludes the terminator.
func forEachLine(content string, fn func(ls, le int)) {
	for ls := 0; ls <= len(content); {
		le := len(content)
		if i := strings.IndexByte(content[ls:], '\n'); i >= 0 {
			le = ls + i
		}

		fn(ls, le)

		if le >= len(content) {
			return
		}

		ls = le + 1
	}
}

// matchBrace returns the offset of the brace closing the one at open,
// or -1 when the braces are unbalanced.
func matchBrace(content string, open int) int {
	depth := 0

	for i := open; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
