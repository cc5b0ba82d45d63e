package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Console styling shared by all subcommands.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

func renderSuccess(msg string) string {
	return successStyle.Render("✓") + " " + msg
}

func renderError(err error) string {
	return errorStyle.Render("✗") + " " + err.Error()
}

func renderWarning(msg string) string {
	return warnStyle.Render("⚠") + " " + msg
}

func renderField(name string, value any) string {
	return name + ": " + labelStyle.Render(fmt.Sprintf("%v", value))
}

// renderSummaryTable renders a metric/value table for a family summary,
// with keys sorted for stable output.
func renderSummaryTable(title string, summary map[string]any) string {
	if len(summary) == 0 {
		return ""
	}
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value")
	for _, k := range keys {
		t.Row(k, fmt.Sprintf("%v", summary[k]))
	}
	return titleStyle.Render(title) + "\n" + t.Render()
}
