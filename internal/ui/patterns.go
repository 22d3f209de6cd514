package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PatternRow describes one entry of the pattern table.
type PatternRow struct {
	Name   string
	Width  int
	Height int
	Cells  int
}

// PatternTable renders the available patterns as a bordered table.
func PatternTable(rows []PatternRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelStyle).
		Headers("PATTERN", "SIZE", "CELLS")
	for _, r := range rows {
		t.Row(r.Name, fmt.Sprintf("%dx%d", r.Width, r.Height), fmt.Sprintf("%d", r.Cells))
	}
	return t.String()
}
