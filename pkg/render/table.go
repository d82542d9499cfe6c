// Package render turns analysis results into console tables and LaTeX
// tabular fragments ready for inclusion in a paper.
package render

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Table is a rendered-format-independent table: a title, a header row
// and string cells. The first column is the row label; remaining cells
// are treated as numeric for alignment.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Missing is the cell marker for absent pivot values.
const Missing = "--"

var grouped = message.NewPrinter(language.English)

// Num formats a numeric cell rounded to two decimals.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// GroupedNum formats a numeric cell with two decimals and thousands
// separators, as used for the summed times in the LaTeX summary.
func GroupedNum(v float64) string {
	return grouped.Sprintf("%.2f", v)
}

// Int formats an integer cell.
func Int(v int) string {
	return fmt.Sprintf("%d", v)
}
