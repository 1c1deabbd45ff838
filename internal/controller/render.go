package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/exagit/codemaid/internal/model"
)

var (
	styleCleaned   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleUnchanged = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleSkipped   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFailed    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func styledStatus(status m.CleanupStatus) string {
	switch status {
	case m.StatusCleaned:
		return styleCleaned.Render(string(status))
	case m.StatusSkipped:
		return styleSkipped.Render(string(status))
	case m.StatusFailed:
		return styleFailed.Render(string(status))
	default:
		return styleUnchanged.Render(string(status))
	}
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func renderSummaryTable(run m.RunReport) string {
	var buf bytes.Buffer

	table := newTable(&buf)
	table.SetHeader([]string{"Path", "Status", "Directives", "Scopes"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, fr := range run.Reports {
		table.Append([]string{
			string(fr.Origin),
			styledStatus(fr.Status),
			fmt.Sprintf("%d", fr.Directives),
			fmt.Sprintf("%d", fr.Scopes),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(run.Reports)),
		fmt.Sprintf("Cleaned %d", run.Changed()),
		"",
		"",
	})

	table.Render()

	return buf.String()
}

func renderEstimateTable(estimates []m.FileEstimate) string {
	var buf bytes.Buffer

	totalDirectives := 0

	table := newTable(&buf)
	table.SetHeader([]string{"Path", "Directives", "Scopes", "Relocatable"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, e := range estimates {
		table.Append([]string{
			string(e.Origin),
			fmt.Sprintf("%d", e.Directives),
			fmt.Sprintf("%d", e.Scopes),
			fmt.Sprintf("%t", e.Relocatable),
		})

		totalDirectives += e.Directives
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)),
		fmt.Sprintf("%d", totalDirectives),
		"",
		"",
	})

	table.Render()

	return buf.String()
}

func renderRunsTable(runs []m.RunReport) string {
	var buf bytes.Buffer

	table := newTable(&buf)
	table.SetHeader([]string{"Started", "Files", "Cleaned"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, run := range runs {
		table.Append([]string{
			run.StartedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", len(run.Reports)),
			fmt.Sprintf("%d", run.Changed()),
		})
	}

	table.Render()

	return buf.String()
}
