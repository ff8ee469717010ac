package passes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/maeplot/internal/util"
)

const maxCellRunes = 48

var (
	summaryTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	summaryCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	summarySepStyle    = lipgloss.NewStyle().Faint(true)
	summaryStatus      = map[string]lipgloss.Style{
		"saved":   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"skipped": lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	}
)

// RenderSummary renders one line per result: basis, pass, status, rows,
// category means and the output path or skip reason.
func RenderSummary(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	headers := []string{"Basis", "Pass", "Status", "Rows", "Means", "Output"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status, detail := "saved", r.Output
		if r.Skipped {
			status, detail = "skipped", r.Reason
		}
		pass := r.Pass
		if r.Best != "" {
			pass = fmt.Sprintf("%s (%s)", r.Pass, strings.ToUpper(r.Best))
		}
		rows = append(rows, []string{
			r.Basis,
			pass,
			status,
			fmt.Sprint(r.Rows),
			util.TruncateRunes(means(r), maxCellRunes),
			util.TruncateRunes(detail, maxCellRunes),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	sb.WriteString(summaryTitleStyle.Render("Summary"))
	sb.WriteString("\n")

	sep := summarySepStyle.Render("|")
	for i, h := range headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(summaryHeaderStyle.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(summarySepStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(sep)
			}
			style := summaryCellStyle
			if i == 2 {
				if s, ok := summaryStatus[cell]; ok {
					style = s.Padding(0, 1)
				}
			}
			sb.WriteString(style.Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func means(r Result) string {
	parts := make([]string, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		parts = append(parts, fmt.Sprintf("%s=%.2f", s.Category, s.Mean))
	}
	return strings.Join(parts, " ")
}
