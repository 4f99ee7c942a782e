package ui

import "strings"

// Column is a table column. A zero Width sizes the column to its widest cell.
type Column struct {
	Title string
	Width int
}

// Row holds one cell per column. Missing trailing cells render empty.
type Row []string

// Table renders plain-text rows under a header and a dashed rule.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable creates an empty table with the given columns.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols}
}

// AddRow appends r below the existing rows.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// widths resolves auto-sized columns against the current rows.
func (t *Table) widths() []int {
	w := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		if col.Width > 0 {
			w[i] = col.Width
			continue
		}
		w[i] = len(col.Title)
		for _, r := range t.Rows {
			if i < len(r) && len(r[i]) > w[i] {
				w[i] = len(r[i])
			}
		}
	}
	return w
}

// Render pads every cell before styling it, so escape codes never skew the
// column widths. Values wider than a fixed column are cut.
func (t *Table) Render() string {
	w := t.widths()
	var sb strings.Builder
	emit := func(style func(string) string, cell func(i int) string) {
		parts := make([]string, len(w))
		for i := range w {
			parts[i] = style(pad(cell(i), w[i]))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, " "), " "))
		sb.WriteByte('\n')
	}

	emit(header, func(i int) string { return t.Columns[i].Title })
	emit(Meta, func(i int) string { return strings.Repeat("-", w[i]) })
	for _, r := range t.Rows {
		emit(Val, func(i int) string {
			if i < len(r) {
				return r[i]
			}
			return ""
		})
	}
	return sb.String()
}

func header(s string) string { return headerStyle.Render(s) }

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// KeyValueBlock renders labelled values inside a rounded border. Keys are
// aligned to the longest one.
func KeyValueBlock(title string, pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		keyWidth = max(keyWidth, len(p[0])+1)
	}

	var lines []string
	if title != "" {
		lines = append(lines, Title(title))
	}
	for _, p := range pairs {
		lines = append(lines, Meta(pad(p[0]+":", keyWidth))+"  "+p[1])
	}
	return blockStyle.Render(strings.Join(lines, "\n"))
}
