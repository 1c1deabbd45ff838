// Package controller provides output adapters for presenting cleanup
// progress and results.
package controller

import (
	m "github.com/exagit/codemaid/internal/model"
)

// UI is the interface the workflow drives to present a cleanup run.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	// Start initializes the UI before a cleanup run begins.
	Start() error
	// Close finalizes the UI.
	Close()
	// DisplayRunStart announces the number of files and workers.
	DisplayRunStart(files, threads int)
	// DisplayFileResult streams the outcome of one file as it completes.
	DisplayFileResult(report m.FileReport)
	// DisplaySummary renders the aggregated run outcome.
	DisplaySummary(run m.RunReport) error
	// DisplayEstimation renders the dry-run inventory or the error that
	// prevented it.
	DisplayEstimation(estimates []m.FileEstimate, err error) error
	// DisplayRuns renders previously stored run reports.
	DisplayRuns(runs []m.RunReport) error
}
