package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	m "github.com/exagit/codemaid/internal/model"
)

func TestReportStore_SaveAndLoad(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewReportStore()

	first := m.RunReport{
		StartedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Reports: []m.FileReport{
			{Origin: "a.cs", Status: m.StatusCleaned, Directives: 3, Scopes: 1},
		},
	}
	second := m.RunReport{
		StartedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Reports: []m.FileReport{
			{Origin: "a.cs", Status: m.StatusUnchanged, Directives: 3, Scopes: 1},
		},
	}

	if err := store.SaveRun(dir, second); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	if err := store.SaveRun(dir, first); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := store.LoadRuns(dir)
	if err != nil {
		t.Fatalf("LoadRuns failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	if !runs[0].StartedAt.Equal(first.StartedAt) || !runs[1].StartedAt.Equal(second.StartedAt) {
		t.Fatalf("expected runs ordered oldest first, got %v then %v", runs[0].StartedAt, runs[1].StartedAt)
	}

	if runs[0].Reports[0].Status != m.StatusCleaned {
		t.Fatalf("expected cleaned status, got %q", runs[0].Reports[0].Status)
	}
}

func TestReportStore_LoadRuns_MissingDir(t *testing.T) {
	store := NewReportStore()

	runs, err := store.LoadRuns(m.Path(filepath.Join(t.TempDir(), "nope")))
	if err != nil {
		t.Fatalf("LoadRuns failed: %v", err)
	}

	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}

func TestReportStore_LoadRuns_SkipsNonJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewReportStore()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a report"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := store.SaveRun(m.Path(dir), m.RunReport{StartedAt: time.Now()}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := store.LoadRuns(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadRuns failed: %v", err)
	}

	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}
