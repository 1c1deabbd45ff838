package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/exagit/codemaid/internal/model"
)

// TUI implements UI using Bubble Tea for interactive terminals. Run
// progress streams into the program as messages; tabular output that needs
// no interaction is written directly.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start() error {
	t.done = make(chan struct{})
	t.program = tea.NewProgram(newRunModel(), tea.WithOutput(t.output))

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
		<-t.done
		t.program = nil
	}
}

// DisplayRunStart announces the number of files and workers.
func (t *TUI) DisplayRunStart(files, threads int) {
	t.send(runStartMsg{files: files, threads: threads})
}

// DisplayFileResult streams one completed file into the model.
func (t *TUI) DisplayFileResult(report m.FileReport) {
	t.send(fileResultMsg{report: report})
}

// DisplaySummary hands the final run to the model and waits for the
// program to render it and exit.
func (t *TUI) DisplaySummary(run m.RunReport) error {
	if t.program == nil {
		_, _ = fmt.Fprint(t.output, renderSummaryTable(run))
		return nil
	}

	t.program.Send(summaryMsg{run: run})
	<-t.done
	t.program = nil

	return nil
}

// DisplayEstimation renders the dry-run inventory table or error.
func (t *TUI) DisplayEstimation(estimates []m.FileEstimate, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)
		return err
	}

	_, _ = fmt.Fprint(t.output, renderEstimateTable(estimates))

	return nil
}

// DisplayRuns renders stored run reports.
func (t *TUI) DisplayRuns(runs []m.RunReport) error {
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(t.output, "No stored reports found")
		return nil
	}

	_, _ = fmt.Fprint(t.output, renderRunsTable(runs))
	_, _ = fmt.Fprintf(t.output, "\nLatest run:\n%s", renderSummaryTable(runs[len(runs)-1]))

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}
