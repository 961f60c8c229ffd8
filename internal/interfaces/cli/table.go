package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mntm.dev/fbt/internal/core/domain/options"
)

// optionsTable renders resolved options as aligned columns. Styling follows
// the color profile of the output writer, so redirected output is plain.
type optionsTable struct {
	withSource bool
	rows       [][]string

	header  lipgloss.Style
	name    lipgloss.Style
	source  lipgloss.Style
	divider lipgloss.Style
}

func newOptionsTable(w io.Writer, withSource bool) *optionsTable {
	r := lipgloss.NewRenderer(w)
	return &optionsTable{
		withSource: withSource,
		header:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		name:       r.NewStyle().Bold(true),
		source:     r.NewStyle().Foreground(lipgloss.Color("245")),
		divider:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Add appends a row for e.
func (t *optionsTable) Add(e options.Entry) {
	row := []string{e.Key, options.Literal(e.Value)}
	if t.withSource {
		src := string(e.Source)
		if e.SourcePath != "" {
			src = fmt.Sprintf("%s (%s)", e.Source, e.SourcePath)
		}
		row = append(row, src)
	}
	t.rows = append(t.rows, row)
}

// Render returns the table without a trailing newline.
func (t *optionsTable) Render() string {
	headers := []string{"NAME", "VALUE"}
	if t.withSource {
		headers = append(headers, "SOURCE")
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := []string{t.header.Render(t.line(headers, widths))}
	for _, row := range t.rows {
		cells := append([]string(nil), row...)
		cells[0] = t.name.Render(pad(cells[0], widths[0]))
		if t.withSource {
			last := len(cells) - 1
			cells[last] = t.source.Render(cells[last])
		}
		lines = append(lines, t.line(cells, widths))
	}
	return strings.Join(lines, "\n")
}

// line joins cells with a styled divider, padding all but the last column.
func (t *optionsTable) line(cells []string, widths []int) string {
	sep := t.divider.Render(" │ ")
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(sep)
		}
		if i < len(cells)-1 {
			cell = pad(cell, widths[i])
		}
		b.WriteString(cell)
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
