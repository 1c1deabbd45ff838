package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/exagit/codemaid/internal/model"
)

const recentResultLimit = 8

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// runModel is the Bubble Tea model for an interactive cleanup run: a
// spinner with progress counters while files complete, replaced by the
// summary table when the run finishes.
type runModel struct {
	spinner  spinner.Model
	files    int
	threads  int
	done     int
	cleaned  int
	failed   int
	recent   []m.FileReport
	summary  *m.RunReport
	finished bool
}

func newRunModel() runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return runModel{spinner: sp}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case runStartMsg:
		rm.files = msg.files
		rm.threads = msg.threads

	case fileResultMsg:
		rm.done++

		switch msg.report.Status {
		case m.StatusCleaned:
			rm.cleaned++
		case m.StatusFailed:
			rm.failed++
		}

		rm.recent = append(rm.recent, msg.report)
		if len(rm.recent) > recentResultLimit {
			rm.recent = rm.recent[len(rm.recent)-recentResultLimit:]
		}

	case summaryMsg:
		run := msg.run
		rm.summary = &run
		rm.finished = true

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("codemaid cleanup"))
	b.WriteString("\n\n")

	if rm.finished && rm.summary != nil {
		b.WriteString(renderSummaryTable(*rm.summary))

		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %d/%d files", rm.spinner.View(), rm.done, rm.files))

	if rm.threads > 1 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d workers)", rm.threads)))
	}

	b.WriteString("\n\n")

	for _, fr := range rm.recent {
		b.WriteString(fmt.Sprintf("  %s %s\n", styledStatus(fr.Status), pathStyle.Render(string(fr.Origin))))
	}

	b.WriteString(dimStyle.Render("\npress q to abort display\n"))

	return b.String()
}
