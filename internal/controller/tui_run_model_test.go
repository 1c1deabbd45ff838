package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/exagit/codemaid/internal/model"
)

func TestRunModel_ProgressView(t *testing.T) {
	rm := newRunModel()

	model, _ := rm.Update(runStartMsg{files: 3, threads: 2})
	rm = model.(runModel)

	model, _ = rm.Update(fileResultMsg{report: m.FileReport{Origin: "a.cs", Status: m.StatusCleaned}})
	rm = model.(runModel)

	view := rm.View()

	if !strings.Contains(view, "1/3 files") {
		t.Fatalf("missing progress counter:\n%s", view)
	}

	if !strings.Contains(view, "a.cs") {
		t.Fatalf("missing recent result:\n%s", view)
	}

	if !strings.Contains(view, "workers") {
		t.Fatalf("missing worker count:\n%s", view)
	}
}

func TestRunModel_CountsByStatus(t *testing.T) {
	rm := newRunModel()

	for _, status := range []m.CleanupStatus{m.StatusCleaned, m.StatusCleaned, m.StatusFailed, m.StatusUnchanged} {
		model, _ := rm.Update(fileResultMsg{report: m.FileReport{Origin: "f.cs", Status: status}})
		rm = model.(runModel)
	}

	if rm.done != 4 || rm.cleaned != 2 || rm.failed != 1 {
		t.Fatalf("unexpected counters done=%d cleaned=%d failed=%d", rm.done, rm.cleaned, rm.failed)
	}
}

func TestRunModel_RecentResultsBounded(t *testing.T) {
	rm := newRunModel()

	for i := 0; i < recentResultLimit+5; i++ {
		model, _ := rm.Update(fileResultMsg{report: m.FileReport{Origin: "f.cs", Status: m.StatusCleaned}})
		rm = model.(runModel)
	}

	if len(rm.recent) != recentResultLimit {
		t.Fatalf("expected %d recent entries, got %d", recentResultLimit, len(rm.recent))
	}
}

func TestRunModel_SummaryQuits(t *testing.T) {
	rm := newRunModel()

	run := m.RunReport{
		Reports: []m.FileReport{{Origin: "a.cs", Status: m.StatusCleaned, Directives: 2, Scopes: 1}},
	}

	model, cmd := rm.Update(summaryMsg{run: run})
	rm = model.(runModel)

	if cmd == nil {
		t.Fatalf("expected a quit command")
	}

	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %#v", msg)
	}

	view := rm.View()

	if !strings.Contains(view, "a.cs") || !strings.Contains(view, "TOTAL FILES 1") {
		t.Fatalf("summary view incomplete:\n%s", view)
	}
}

func TestRunModel_QuitKey(t *testing.T) {
	rm := newRunModel()

	_, cmd := rm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Fatalf("expected quit on q")
	}

	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %#v", msg)
	}
}
