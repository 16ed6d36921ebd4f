package cmdutil

import (
	"fmt"

	"github.com/InVisionApp/tabular"
)

// ColumnHeader describes a short and long name for a column.
type ColumnHeader struct {
	ShortName, FullName string
}

// longestFieldFromColumn returns the length of the longest string for a
// particular column index from the provided table.
func longestFieldFromColumn(rows [][]string, colIdx int) int {
	max := 0
	for _, row := range rows {
		if l := len(row[colIdx]); l > max {
			max = l
		}
	}
	return max
}

// FormatTable formats the provided headers and string table to display
// with sufficient padding to align columns.
func FormatTable(headers []ColumnHeader, rows [][]string) string {
	tab := tabular.New()
	for i, column := range headers {
		// Don't pad the last column
		var width int
		if i < len(headers)-1 {
			width = longestFieldFromColumn(rows, i) + 2
		}
		tab.Col(column.ShortName, column.FullName, width)
	}

	table := tab.Parse("*")
	out := fmt.Sprintln(table.Header)

	values := make([]interface{}, len(headers))
	for _, row := range rows {
		if len(values) != len(row) {
			panic("all rows must be the same length")
		}
		for i, item := range row {
			values[i] = item
		}
		out += fmt.Sprintf(table.Format, values...)
	}
	return out
}
