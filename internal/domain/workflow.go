// Package domain contains the core cleanup logic: the protection guard,
// the directive sorter, the scope relocator and the workflow driving them.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/exagit/codemaid/internal/adapter"
	"github.com/exagit/codemaid/internal/controller"
	m "github.com/exagit/codemaid/internal/model"
)

// CleanArgs parameterizes a cleanup run.
type CleanArgs struct {
	Paths    []m.Path
	Exclude  []string
	Reports  m.Path
	Threads  int
	Autosave bool
	DryRun   bool
}

// EstimateArgs parameterizes a dry-run inventory.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ViewArgs parameterizes report viewing.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the cleanup operations the commands drive.
type Workflow interface {
	Clean(args CleanArgs) error
	Estimate(args EstimateArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fs        adapter.SourceFSAdapter
	store     adapter.ReportStore
	ui        controller.UI
	settings  Settings
	profile   adapter.LanguageProfile
	sorter    *DirectiveSorter
	guard     *ProtectionGuard
	relocator *ScopeRelocator
	command   adapter.CleanupCommand
}

// NewWorkflow wires a Workflow from the provided adapters and settings.
// When no external cleanup command is configured the built-in heuristic
// remover backs the destructive step.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI, settings Settings) Workflow {
	profile := adapter.DefaultProfile()
	sorter := NewDirectiveSorter(settings.RootNamespace, profile.Terminator)

	var command adapter.CleanupCommand
	if len(settings.CleanupCommand) > 0 {
		command = adapter.NewExecCleanupCommand(
			settings.MergedCleanup,
			settings.CleanupCommand,
			settings.SortCommand,
			profile.Extensions[0],
		)
	} else {
		command = adapter.NewNaiveUnusedRemover(profile, sorter.ExtractReferenceName)
	}

	return &workflow{
		fs:        fs,
		store:     store,
		ui:        ui,
		settings:  settings,
		profile:   profile,
		sorter:    sorter,
		guard:     NewProtectionGuard(settings),
		relocator: NewScopeRelocator(),
		command:   command,
	}
}

// Clean collects the target files, runs the cleanup pass over each with a
// bounded worker pool and reports the aggregated outcome. Per-file
// failures are recorded in the run report, not surfaced as errors.
func (w *workflow) Clean(args CleanArgs) error {
	files, err := w.collect(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayRunStart(len(files), threads)

	run := m.RunReport{
		StartedAt: time.Now(),
		Reports:   make([]m.FileReport, len(files)),
	}

	var g errgroup.Group

	g.SetLimit(threads)

	var mu sync.Mutex

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			report := w.cleanFile(file, args)

			mu.Lock()
			run.Reports[i] = report
			mu.Unlock()

			w.ui.DisplayFileResult(report)

			return nil
		})
	}

	_ = g.Wait()

	if args.Reports != "" && !args.DryRun {
		if err := w.store.SaveRun(args.Reports, run); err != nil {
			return err
		}
	}

	return w.ui.DisplaySummary(run)
}

// cleanFile runs one cleanup pass: protect-and-clean, then sort and
// relocate. The document is owned by this call alone; nothing else mutates
// it between capture and restore.
func (w *workflow) cleanFile(path m.Path, args CleanArgs) m.FileReport {
	start := time.Now()
	report := m.FileReport{Origin: path}

	fail := func(err error) m.FileReport {
		report.Status = m.StatusFailed
		report.Error = err.Error()
		report.Duration = time.Since(start)

		return report
	}

	content, err := w.fs.ReadFile(path)
	if err != nil {
		return fail(err)
	}

	if fileIgnored(string(content)) {
		report.Status = m.StatusSkipped
		report.Duration = time.Since(start)

		return report
	}

	doc := adapter.NewBufferDocument(string(content), w.profile.LineTerminator, w.profile.IndentUnit)

	if err := w.guard.ProtectAndClean(doc, w.settings.ProtectedPatterns(), w.command, args.Autosave); err != nil {
		return fail(err)
	}

	directives := w.profile.ScanDirectives(doc)
	scopes := w.profile.ScanScopeBlocks(doc)
	sorted := w.sorter.Sort(directives)

	// Relocation always reopens the gap below the scope brace, so a file
	// whose directives already sit in place would gain a blank line on
	// every run. Skip it when there is nothing to move.
	if len(scopes) != 1 || !alreadyOrdered(doc.Content(), directives, sorted, scopes[0]) {
		w.relocator.Relocate(doc, sorted, scopes)
	}

	report.Directives = len(directives)
	report.Scopes = len(scopes)
	report.Duration = time.Since(start)

	out := doc.Content()
	if out == string(content) {
		report.Status = m.StatusUnchanged

		return report
	}

	if !args.DryRun {
		info, err := w.fs.FileInfo(path)
		if err != nil {
			return fail(err)
		}

		if err := w.fs.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
			return fail(err)
		}
	}

	report.Status = m.StatusCleaned

	return report
}

// Estimate scans the target files without mutating them and displays the
// directive inventory.
func (w *workflow) Estimate(args EstimateArgs) error {
	files, err := w.collect(args.Paths, args.Exclude)
	if err != nil {
		return w.ui.DisplayEstimation(nil, err)
	}

	estimates := make([]m.FileEstimate, 0, len(files))

	for _, file := range files {
		content, err := w.fs.ReadFile(file)
		if err != nil {
			return w.ui.DisplayEstimation(nil, err)
		}

		doc := adapter.NewBufferDocument(string(content), w.profile.LineTerminator, w.profile.IndentUnit)
		scopes := w.profile.ScanScopeBlocks(doc)

		estimates = append(estimates, m.FileEstimate{
			Origin:      file,
			Directives:  len(w.profile.ScanDirectives(doc)),
			Scopes:      len(scopes),
			Relocatable: len(scopes) == 1,
		})
	}

	return w.ui.DisplayEstimation(estimates, nil)
}

// View loads stored run reports and displays them.
func (w *workflow) View(args ViewArgs) error {
	runs, err := w.store.LoadRuns(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayRuns(runs)
}

// alreadyOrdered reports whether the directives already sit, in sorted
// order, as a contiguous block on the first lines interior to the scope.
func alreadyOrdered(content string, current, sorted []m.ImportDirective, scope m.ScopeBlock) bool {
	if len(current) == 0 || len(current) != len(sorted) {
		return false
	}

	for i := range current {
		if current[i].Span != sorted[i].Span {
			return false
		}
	}

	open := strings.IndexByte(content[scope.Span.Start:], '{')
	if open < 0 {
		return false
	}

	brace := scope.Span.Start + open

	term := strings.IndexByte(content[brace:], '\n')
	if term < 0 {
		return false
	}

	if current[0].Span.Start != brace+term+1 {
		return false
	}

	for i := 1; i < len(current); i++ {
		if current[i].Span.Start != current[i-1].Span.End {
			return false
		}
	}

	return true
}

func (w *workflow) collect(paths []m.Path, exclude []string) ([]m.Path, error) {
	files, err := w.fs.Collect(paths, w.profile.Extensions)
	if err != nil {
		return nil, err
	}

	if len(exclude) == 0 {
		return files, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	kept := files[:0]

	for _, file := range files {
		excluded := false

		for _, re := range patterns {
			if re.MatchString(string(file)) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, file)
		}
	}

	return kept, nil
}
