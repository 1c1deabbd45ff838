package adapter

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CleanupCommand is the destructive host operation invoked between the
// protection capture and restore phases. From the caller's point of view
// the contract is opaque: some subset of matching lines may disappear.
type CleanupCommand interface {
	Run(doc Document) error
}

// ExecCleanupCommand runs one or two external commands over a temporary
// copy of the document. Hosts with the merged capability expose a single
// "remove unused and sort" operation; older hosts expose "remove unused"
// and "sort" as two sequential operations. Both forms receive the file
// path as their final argument.
type ExecCleanupCommand struct {
	argvs [][]string
	ext   string
}

// NewExecCleanupCommand selects the merged or sequential invocation form
// based on the host capability flag. Empty argvs are skipped.
func NewExecCleanupCommand(merged bool, cleanupArgv, sortArgv []string, ext string) *ExecCleanupCommand {
	var argvs [][]string

	if merged {
		argvs = append(argvs, cleanupArgv)
	} else {
		argvs = append(argvs, cleanupArgv, sortArgv)
	}

	cmd := &ExecCleanupCommand{ext: ext}

	for _, argv := range argvs {
		if len(argv) > 0 {
			cmd.argvs = append(cmd.argvs, argv)
		}
	}

	return cmd
}

// Run writes the document to a temp file, invokes the configured commands
// against it and reconciles the result back into the live document.
func (c *ExecCleanupCommand) Run(doc Document) error {
	if len(c.argvs) == 0 {
		return nil
	}

	tmp, err := os.CreateTemp("", "codemaid-*"+c.ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	path := tmp.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := tmp.WriteString(doc.Content()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	for _, argv := range c.argvs {
		args := append(append([]string{}, argv[1:]...), path)

		out, err := exec.Command(argv[0], args...).CombinedOutput()
		if err != nil {
			return fmt.Errorf("cleanup command %q failed: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
		}
	}

	after, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read temp file: %w", err)
	}

	reconcileDeletions(doc, string(after))

	return nil
}

// reconcileDeletions removes from doc every line that no longer appears in
// after, walking top to bottom and treating after as a line multiset. Only
// deletions are applied: the cleanup contract is that a subset of lines may
// disappear, and ordering is owned by the relocation step.
func reconcileDeletions(doc Document, after string) {
	remaining := map[string]int{}
	for _, line := range strings.Split(after, "\n") {
		remaining[line]++
	}

	content := doc.Content()

	type span struct{ start, end Position }

	var doomed []span

	forEachLine(content, func(ls, le int) {
		line := content[ls:le]

		if remaining[line] > 0 {
			remaining[line]--
			return
		}

		end := le
		if end < len(content) {
			end++
		}

		doomed = append(doomed, span{doc.PositionAt(ls), doc.PositionAt(end)})
	})

	for _, s := range doomed {
		s.start.Delete(s.end)
	}
}

// NaiveUnusedRemover is the built-in fallback command used when no external
// cleanup command is configured. It deletes directive lines whose reference
// name's final segment never occurs outside a directive line. The heuristic
// is deliberately blunt; the protection guard exists because commands like
// this over-delete.
type NaiveUnusedRemover struct {
	profile LanguageProfile
	extract func(directiveText string) string
}

// NewNaiveUnusedRemover builds the fallback remover around a language
// profile and a reference-name extractor.
func NewNaiveUnusedRemover(profile LanguageProfile, extract func(string) string) *NaiveUnusedRemover {
	return &NaiveUnusedRemover{profile: profile, extract: extract}
}

// Run deletes unused directive lines from the live document.
func (r *NaiveUnusedRemover) Run(doc Document) error {
	directives := r.profile.ScanDirectives(doc)
	if len(directives) == 0 {
		return nil
	}

	rest := doc.Content()
	for i := len(directives) - 1; i >= 0; i-- {
		d := directives[i]
		rest = rest[:d.Span.Start] + rest[d.Span.End:]
	}

	type span struct{ start, end Position }

	var doomed []span

	for _, d := range directives {
		name := r.extract(d.Text)
		if name == "" {
			continue
		}

		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}

		if !strings.Contains(rest, name) {
			doomed = append(doomed, span{doc.PositionAt(d.Span.Start), doc.PositionAt(d.Span.End)})
		}
	}

	for _, s := range doomed {
		s.start.Delete(s.end)
	}

	return nil
}
