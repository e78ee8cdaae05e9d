package stepreport

import (
	"strings"

	messages "github.com/cucumber/messages/go/v21"
	"github.com/mattn/go-runewidth"
)

// Layout characters for rendered data tables. Padding and indent use
// U+00A0 so report viewers that collapse ordinary whitespace keep the
// columns aligned.
const (
	tableIndent    = "\u00A0\u00A0\u00A0\u00A0"
	tableColumnSep = "|"
	tableRowSep    = "-"
	paddingSpace   = "\u00A0"
	lineTerminator = "\r\n"
)

// FormatDataTable renders a grid of text cells as a column-aligned text
// block. The first row is treated as a header and a dashed separator line
// is emitted beneath it. Rows may be jagged; a short row simply occupies
// the leading columns. An empty table renders as an empty string.
func FormatDataTable(table [][]string) string {
	widths := columnWidths(table)

	var sb strings.Builder
	header := true
	for _, row := range table {
		sb.WriteString(tableIndent)
		sb.WriteString(tableColumnSep)
		for i, cell := range row {
			pad := widths[i] - runewidth.StringWidth(cell) + 2
			left := pad / 2
			sb.WriteString(strings.Repeat(paddingSpace, left))
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(paddingSpace, pad-left))
			sb.WriteString(tableColumnSep)
		}
		if header {
			header = false
			sb.WriteString(lineTerminator)
			sb.WriteString(tableIndent)
			sb.WriteString(tableColumnSep)
			// The separator row follows the header row's own cell count,
			// not the widest row's.
			for i := range row {
				sb.WriteString(strings.Repeat(tableRowSep, widths[i]+2))
				sb.WriteString(tableColumnSep)
			}
		}
		sb.WriteString(lineTerminator)
	}
	return trimASCIISpace(sb.String())
}

// FormatTable renders a Gherkin pickle table attached to a step. A nil
// table renders as an empty string.
func FormatTable(table *messages.PickleTable) string {
	if table == nil {
		return ""
	}
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.Value)
		}
		rows = append(rows, cells)
	}
	return FormatDataTable(rows)
}

// columnWidths returns the display width of each column: the maximum cell
// width among the rows that reach that column index.
func columnWidths(table [][]string) []int {
	cols := 0
	for _, row := range table {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// trimASCIISpace trims surrounding control characters and ordinary spaces.
// strings.TrimSpace is unsuitable here: it also strips U+00A0, which would
// eat the first line's indent.
func trimASCIISpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
