// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/husonlab/emptytab/matrix"
)

// cellStyle pads every cell and right-aligns the 0/1 columns.
func cellStyle(_, col int) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if col > 0 {
		s = s.Align(lipgloss.Right)
	}

	return s
}

// Markdown renders r as a markdown table: an empty corner cell followed by
// the column labels, a separator row, then one row per label with its N
// cell values. Both axes follow the universe order.
func Markdown(r *matrix.Relation) (string, error) {
	if r == nil {
		return "", ErrNilRelation
	}
	labels := r.Labels()
	cells := r.Cells()

	rows := make([][]string, len(labels))
	for i, label := range labels {
		row := make([]string, 0, len(labels)+1)
		row = append(row, label)
		for _, v := range cells[i] {
			row = append(row, strconv.Itoa(int(v)))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(append([]string{""}, labels...)...).
		Rows(rows...).
		StyleFunc(cellStyle)

	return strings.TrimRight(t.String(), "\n"), nil
}

// heading returns the optional "## name" prefix.
func heading(t Table, opts Options) string {
	if !opts.Headings || t.Name == "" {
		return ""
	}

	return "## " + t.Name + "\n\n"
}

// markdownDocument is the markdown text of one table including its heading.
func markdownDocument(t Table, opts Options) (string, error) {
	md, err := Markdown(t.Relation)
	if err != nil {
		return "", err
	}

	return heading(t, opts) + md + "\n", nil
}

func writeMarkdown(w io.Writer, t Table, opts Options) error {
	doc, err := markdownDocument(t, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)

	return err
}

// ParseMarkdown reads a table produced by Markdown back into its labels and
// 0/1 grid, ignoring markdown syntax, headings and blank lines. Row labels
// must repeat the header labels in the same order.
func ParseMarkdown(text string) ([]string, [][]uint8, error) {
	var (
		labels []string
		cells  [][]uint8
		header = true
	)
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if isSeparator(line) {
			continue
		}
		fields := splitRow(line)
		if header {
			if len(fields) < 2 {
				return nil, nil, fmt.Errorf("line %d: header: %w", n+1, ErrMalformedTable)
			}
			labels = fields[1:]
			header = false
			continue
		}

		i := len(cells)
		if i >= len(labels) || len(fields) != len(labels)+1 || fields[0] != labels[i] {
			return nil, nil, fmt.Errorf("line %d: row %q: %w", n+1, fields[0], ErrMalformedTable)
		}
		row := make([]uint8, len(labels))
		for j, f := range fields[1:] {
			switch f {
			case "0":
			case "1":
				row[j] = 1
			default:
				return nil, nil, fmt.Errorf("line %d: cell %q: %w", n+1, f, ErrMalformedTable)
			}
		}
		cells = append(cells, row)
	}
	if header || len(cells) != len(labels) {
		return nil, nil, fmt.Errorf("want %d rows, got %d: %w", len(labels), len(cells), ErrMalformedTable)
	}

	return labels, cells, nil
}

// isSeparator reports whether line is a header separator such as |---|:--:|.
func isSeparator(line string) bool {
	return strings.Trim(line, "|-: ") == "" && strings.Contains(line, "-")
}

// splitRow strips the outer pipes and trims each cell.
func splitRow(line string) []string {
	line = strings.TrimPrefix(strings.TrimSuffix(line, "|"), "|")
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
