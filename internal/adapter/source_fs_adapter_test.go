package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/exagit/codemaid/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestLocalSourceFSAdapter_Collect_Recursive(t *testing.T) {
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "a.cs"), "using System;\n")
	writeTestFile(t, filepath.Join(dir, "sub", "b.cs"), "using System;\n")
	writeTestFile(t, filepath.Join(dir, "sub", "ignore.txt"), "not source\n")

	fs := NewLocalSourceFSAdapter()

	files, err := fs.Collect([]m.Path{m.Path(dir + "/...")}, []string{".cs"})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}

	if filepath.Base(string(files[0])) != "a.cs" || filepath.Base(string(files[1])) != "b.cs" {
		t.Fatalf("expected sorted a.cs, b.cs, got %v", files)
	}
}

func TestLocalSourceFSAdapter_Collect_NonRecursive(t *testing.T) {
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "a.cs"), "using System;\n")
	writeTestFile(t, filepath.Join(dir, "sub", "b.cs"), "using System;\n")

	fs := NewLocalSourceFSAdapter()

	files, err := fs.Collect([]m.Path{m.Path(dir)}, []string{".cs"})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(files) != 1 || filepath.Base(string(files[0])) != "a.cs" {
		t.Fatalf("expected only the top-level file, got %v", files)
	}
}

func TestLocalSourceFSAdapter_Collect_SingleFileAndDedup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")

	writeTestFile(t, path, "using System;\n")

	fs := NewLocalSourceFSAdapter()

	files, err := fs.Collect([]m.Path{m.Path(path), m.Path(dir + "/...")}, []string{".cs"})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected deduplicated single file, got %v", files)
	}
}

func TestLocalSourceFSAdapter_Collect_MissingRoot(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	if _, err := fs.Collect([]m.Path{"/definitely/not/there"}, []string{".cs"}); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestParseRootPath(t *testing.T) {
	cases := []struct {
		in        string
		path      string
		recursive bool
	}{
		{"./...", ".", true},
		{"./src/...", "./src", true},
		{"...", ".", true},
		{"./src", "./src", false},
		{"file.cs", "file.cs", false},
	}

	for _, tc := range cases {
		path, recursive := parseRootPath(tc.in)
		if path != tc.path || recursive != tc.recursive {
			t.Fatalf("parseRootPath(%q) = (%q, %t), want (%q, %t)", tc.in, path, recursive, tc.path, tc.recursive)
		}
	}
}

func TestLocalSourceFSAdapter_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "a.cs"))

	fs := NewLocalSourceFSAdapter()

	if err := fs.WriteFile(path, []byte("using System;\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(content) != "using System;\n" {
		t.Fatalf("unexpected content %q", content)
	}
}
