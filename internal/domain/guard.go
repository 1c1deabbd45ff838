package domain

import (
	"github.com/exagit/codemaid/internal/adapter"
)

// ProtectionGuard captures the positions of protected lines before the
// destructive host cleanup command runs and silently restores any captured
// line whose text no longer matches afterwards.
type ProtectionGuard struct {
	settings Settings
}

// NewProtectionGuard builds a guard bound to the given settings.
func NewProtectionGuard(settings Settings) *ProtectionGuard {
	return &ProtectionGuard{settings: settings}
}

// capturedLine pairs a live marker with the original line text at capture
// time. The marker is shared mutable state between the scan and restore
// phases of a single call.
type capturedLine struct {
	pos  adapter.Position
	text string
}

// ProtectAndClean runs the destructive command exactly once, bracketed by
// the capture and restore phases. It returns nil without touching the
// document when the feature flag is off, or when autosave suppression and
// an autosave context both hold; those are precondition checks, not
// errors. Restoration is silent: callers are not told which lines came
// back.
func (g *ProtectionGuard) ProtectAndClean(doc adapter.Document, patterns []string, command adapter.CleanupCommand, autosave bool) error {
	if !g.settings.RunBuiltinCleanupEnabled {
		return nil
	}

	if g.settings.SkipDuringAutosave && autosave {
		return nil
	}

	// A line matching several patterns is captured once per pattern; the
	// restore check below makes the extra attempts no-ops.
	var captured []capturedLine

	for _, pattern := range patterns {
		for _, match := range doc.FindMatches(pattern) {
			captured = append(captured, capturedLine{pos: match.Pos, text: match.Line})
		}
	}

	// Later-occurring captures are processed first.
	for i, j := 0, len(captured)-1; i < j; i, j = i+1, j-1 {
		captured[i], captured[j] = captured[j], captured[i]
	}

	// A marker left exactly at a line start would stay put when text is
	// later inserted at that offset; one step right gives line-start
	// insertions push-right behavior.
	for _, c := range captured {
		c.pos.MoveRight(1)
	}

	if err := command.Run(doc); err != nil {
		return err
	}

	for _, c := range captured {
		if c.pos.Line() == c.text {
			continue
		}

		c.pos.MoveToLineStart()
		c.pos.Insert(c.text)
		c.pos.Insert(doc.LineTerminator())
	}

	return nil
}
