package controller

import (
	m "github.com/exagit/codemaid/internal/model"
)

// Message types.
type runStartMsg struct {
	files   int
	threads int
}

type fileResultMsg struct {
	report m.FileReport
}

type summaryMsg struct {
	run m.RunReport
}
