package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette for CLI output. Muted next to the richer theme a TUI would
// carry; commands print once and exit.
var (
	colPrimary = lipgloss.Color("#8B5CF6")
	colSuccess = lipgloss.Color("#22C55E")
	colWarn    = lipgloss.Color("#F97316")
	colDim     = lipgloss.Color("#94A3B8")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colPrimary)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colDim)
	styleGood   = lipgloss.NewStyle().Foreground(colSuccess)
	styleWarn   = lipgloss.NewStyle().Foreground(colWarn)
	styleDim    = lipgloss.NewStyle().Foreground(colDim)
)

// renderTable prints a header row and data rows with columns padded to the
// widest cell. Styling is applied after measurement so ANSI codes don't
// skew the widths.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(styleHeader.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// progressBar renders a fixed-width bar for a fraction in [0,1].
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if fraction >= 1 {
		return styleGood.Render(bar)
	}
	return styleDim.Render(bar)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
