package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	m "github.com/exagit/codemaid/internal/model"
)

// ReportStore persists and retrieves cleanup run reports.
type ReportStore interface {
	SaveRun(dir m.Path, run m.RunReport) error
	LoadRuns(dir m.Path) ([]m.RunReport, error)
}

type reportStore struct{}

// NewReportStore constructs a file-backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// SaveRun writes the run as a timestamped JSON file under dir.
func (rs *reportStore) SaveRun(dir m.Path, run m.RunReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run report: %w", err)
	}

	name := fmt.Sprintf("run-%s.json", run.StartedAt.UTC().Format("20060102-150405.000000000"))

	if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}

	return nil
}

// LoadRuns reads every run report under dir, oldest first. A missing dir
// yields an empty slice, not an error.
func (rs *reportStore) LoadRuns(dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return []m.RunReport{}, nil
		}

		return nil, fmt.Errorf("failed to read report dir: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}

	sort.Strings(names)

	runs := make([]m.RunReport, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, fmt.Errorf("failed to read run report %s: %w", name, err)
		}

		var run m.RunReport
		if err := json.Unmarshal(data, &run); err != nil {
			return nil, fmt.Errorf("failed to decode run report %s: %w", name, err)
		}

		runs = append(runs, run)
	}

	return runs, nil
}
