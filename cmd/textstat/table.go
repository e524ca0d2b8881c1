package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"textstat/internal/history"
	"textstat/internal/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderTable renders rows as a padded two-or-more column table.
func renderTable(headers []string, rows [][]string) string {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(headerStyle.Render(pad(h, colWidths[i])))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(pad(cell, colWidths[i]))
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// renderReport renders one report for terminal output.
func renderReport(rep report.Report) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(rep.Source))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("words: %d   unique: %d   avg length: %.2f   ~tokens: %d\n",
		rep.Stats.Words, rep.Stats.Unique, rep.Stats.AvgLen, rep.TokenEstimate))

	if len(rep.TopWords) > 0 {
		rows := make([][]string, 0, len(rep.TopWords))
		for _, wc := range rep.TopWords {
			rows = append(rows, []string{wc.Term, fmt.Sprintf("%d", wc.Count)})
		}
		sb.WriteString(renderTable([]string{"WORD", "COUNT"}, rows))
	} else {
		sb.WriteString(dimStyle.Render("no words") + "\n")
	}

	return sb.String()
}

// renderHistory renders stored records, newest first.
func renderHistory(records []history.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Source,
			fmt.Sprintf("%d", rec.Words),
			fmt.Sprintf("%d", rec.Unique),
			fmt.Sprintf("%.2f", rec.AvgLen),
			fmt.Sprintf("%d", rec.TokenEstimate),
		})
	}
	return renderTable([]string{"WHEN", "SOURCE", "WORDS", "UNIQUE", "AVG LEN", "~TOKENS"}, rows)
}
