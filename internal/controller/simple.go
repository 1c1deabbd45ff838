package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/exagit/codemaid/internal/model"
)

// SimpleUI implements UI with plain text written through the cobra
// Command's output, suitable for pipes and CI logs.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayRunStart announces the number of files and workers.
func (s *SimpleUI) DisplayRunStart(files, threads int) {
	s.printf("Cleaning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayFileResult prints one line per completed file.
func (s *SimpleUI) DisplayFileResult(report m.FileReport) {
	if report.Error != "" {
		s.printf("%s %s: %s\n", styledStatus(report.Status), report.Origin, report.Error)
		return
	}

	s.printf("%s %s\n", styledStatus(report.Status), report.Origin)
}

// DisplaySummary prints the run summary table.
func (s *SimpleUI) DisplaySummary(run m.RunReport) error {
	s.printf("\n%s", renderSummaryTable(run))

	return nil
}

// DisplayEstimation prints the dry-run inventory table or error.
func (s *SimpleUI) DisplayEstimation(estimates []m.FileEstimate, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimateTable(estimates))

	return nil
}

// DisplayRuns prints one row per stored run, newest last, followed by the
// latest run's file table.
func (s *SimpleUI) DisplayRuns(runs []m.RunReport) error {
	if len(runs) == 0 {
		s.printf("No stored reports found\n")
		return nil
	}

	s.printf("\n%s", renderRunsTable(runs))
	s.printf("\nLatest run:\n%s", renderSummaryTable(runs[len(runs)-1]))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
