package adapter

import (
	"os/exec"
	"strings"
	"testing"
)

func testExtract(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}

	return strings.TrimSuffix(fields[1], ";")
}

func TestNaiveUnusedRemover_DeletesUnreferenced(t *testing.T) {
	content := `using System;
using System.Text;

namespace App
{
    class C
    {
        void M()
        {
            var sb = new Text.StringBuilder();
        }
    }
}
`

	doc := newTestDoc(content)
	remover := NewNaiveUnusedRemover(DefaultProfile(), testExtract)

	if err := remover.Run(doc); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := doc.Content()

	if strings.Contains(out, "using System;") {
		t.Fatalf("expected unreferenced directive to be removed:\n%s", out)
	}

	if !strings.Contains(out, "using System.Text;") {
		t.Fatalf("expected referenced directive to survive:\n%s", out)
	}
}

func TestNaiveUnusedRemover_NoDirectives(t *testing.T) {
	doc := newTestDoc("class C { }\n")
	remover := NewNaiveUnusedRemover(DefaultProfile(), testExtract)

	if err := remover.Run(doc); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if doc.Content() != "class C { }\n" {
		t.Fatalf("expected document to be unchanged")
	}
}

func TestReconcileDeletions_RemovesMissingLines(t *testing.T) {
	doc := newTestDoc("a\nb\nc\n")

	reconcileDeletions(doc, "a\nc\n")

	if got := doc.Content(); got != "a\nc\n" {
		t.Fatalf("expected b to be deleted, got %q", got)
	}
}

func TestReconcileDeletions_DuplicateLines(t *testing.T) {
	doc := newTestDoc("x\nx\ny\n")

	reconcileDeletions(doc, "x\ny\n")

	if got := doc.Content(); got != "x\ny\n" {
		t.Fatalf("expected one x to remain, got %q", got)
	}
}

func TestReconcileDeletions_NoChanges(t *testing.T) {
	doc := newTestDoc("a\nb\n")

	reconcileDeletions(doc, "a\nb\n")

	if got := doc.Content(); got != "a\nb\n" {
		t.Fatalf("expected document to be unchanged, got %q", got)
	}
}

func TestExecCleanupCommand_DeletesLines(t *testing.T) {
	if _, err := exec.LookPath("sed"); err != nil {
		t.Skip("sed not available")
	}

	doc := newTestDoc("using System;\nusing System.Text;\nclass C { }\n")

	cmd := NewExecCleanupCommand(true, []string{"sed", "-i", "/System.Text/d"}, nil, ".cs")

	if err := cmd.Run(doc); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := doc.Content()

	if strings.Contains(out, "using System.Text;") {
		t.Fatalf("expected line to be deleted:\n%s", out)
	}

	if !strings.Contains(out, "using System;") || !strings.Contains(out, "class C { }") {
		t.Fatalf("expected other lines to survive:\n%s", out)
	}
}

func TestExecCleanupCommand_FailurePropagates(t *testing.T) {
	doc := newTestDoc("using System;\n")

	cmd := NewExecCleanupCommand(true, []string{"false"}, nil, ".cs")

	if err := cmd.Run(doc); err == nil {
		t.Fatalf("expected command failure to propagate")
	}
}

func TestExecCleanupCommand_Sequential(t *testing.T) {
	cmd := NewExecCleanupCommand(false, []string{"remove"}, []string{"sort"}, ".cs")
	if len(cmd.argvs) != 2 {
		t.Fatalf("expected 2 commands in sequential form, got %d", len(cmd.argvs))
	}

	merged := NewExecCleanupCommand(true, []string{"remove"}, []string{"sort"}, ".cs")
	if len(merged.argvs) != 1 {
		t.Fatalf("expected 1 command in merged form, got %d", len(merged.argvs))
	}
}
