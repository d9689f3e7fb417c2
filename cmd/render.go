package cmd

import (
	"strings"

	"pss-assistant/core/entity"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	descStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#9E9E9E"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

// renderResult renders text result lines for a terminal. Chat markup
// (**bold**, _italic_) becomes terminal styling.
func renderResult(result entity.Result) string {
	if !result.Found {
		return warningStyle.Render(stripMarkup(strings.Join(result.Lines, "\n")))
	}

	var sb strings.Builder
	for _, line := range result.Lines {
		sb.WriteString(renderLine(line))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func renderLine(line string) string {
	switch {
	case len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		return titleStyle.Render(line[2 : len(line)-2])
	case len(line) > 2 && strings.HasPrefix(line, "_") && strings.HasSuffix(line, "_"):
		return descStyle.Render(line[1 : len(line)-1])
	}
	if label, value, ok := strings.Cut(line, " = "); ok {
		return labelStyle.Render(label) + " = " + value
	}
	return line
}

func stripMarkup(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

// renderReport renders key/value rows as an aligned two-column block.
func renderReport(title string, rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > width {
			width = w
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	for _, row := range rows {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Width(width + 2).Render(row[0]))
		sb.WriteString(row[1])
	}
	return sb.String()
}
