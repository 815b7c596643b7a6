package display

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Table is tabular data for the table format.
type Table struct {
	Headers []string
	Rows    [][]string
}

// TableFormatter handles table output formatting
type TableFormatter struct{}

// Format outputs a Table; other values are rejected.
func (f *TableFormatter) Format(data interface{}, options FormatOptions) error {
	var table Table
	switch t := data.(type) {
	case Table:
		table = t
	case *Table:
		table = *t
	default:
		return fmt.Errorf("table output is not supported for %T", data)
	}

	w := tabwriter.NewWriter(options.Writer, 0, 8, 1, '\t', 0)
	if len(table.Headers) > 0 {
		fmt.Fprintln(w, strings.Join(table.Headers, "\t"))
	}
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
