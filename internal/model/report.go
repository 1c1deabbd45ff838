// Package model defines the data structures shared by the cleanup pipeline.
package model

import "time"

// CleanupStatus describes the outcome of cleaning a single file.
type CleanupStatus string

const (
	// StatusCleaned means the file content changed and was written back.
	StatusCleaned CleanupStatus = "cleaned"
	// StatusUnchanged means the pass ran but produced no changes.
	StatusUnchanged CleanupStatus = "unchanged"
	// StatusSkipped means a precondition check stopped the pass before any
	// mutation (feature disabled, autosave suppression, no single scope).
	StatusSkipped CleanupStatus = "skipped"
	// StatusFailed means an adapter error aborted the pass for this file.
	StatusFailed CleanupStatus = "failed"
)

// FileReport records the outcome of one cleanup pass over one file.
type FileReport struct {
	Origin     Path          `json:"origin"`
	Status     CleanupStatus `json:"status"`
	Directives int           `json:"directives"`
	Scopes     int           `json:"scopes"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// RunReport aggregates the file reports of one invocation.
type RunReport struct {
	StartedAt time.Time    `json:"started_at"`
	Reports   []FileReport `json:"reports"`
}

// Changed returns the number of files whose content was modified.
func (r RunReport) Changed() int {
	n := 0

	for _, fr := range r.Reports {
		if fr.Status == StatusCleaned {
			n++
		}
	}

	return n
}

// FileEstimate is the dry-run inventory for a single file.
type FileEstimate struct {
	Origin      Path
	Directives  int
	Scopes      int
	Relocatable bool
}
