package render

import "strings"

// LaTeX renders the table as a booktabs tabular fragment: no vertical
// rules, no row separators, label column left-aligned and numeric
// columns right-aligned. The fragment is meant for direct \input into a
// paper.
func LaTeX(t Table) string {
	var sb strings.Builder

	sb.WriteString(`\begin{tabular}{l`)
	sb.WriteString(strings.Repeat("r", len(t.Columns)-1))
	sb.WriteString("}\n")
	sb.WriteString("\\toprule\n")

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(escape(cell))
		}
		sb.WriteString(" \\\\\n")
	}

	writeRow(t.Columns)
	sb.WriteString("\\midrule\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
	sb.WriteString("\\bottomrule\n")
	sb.WriteString("\\end{tabular}\n")
	return sb.String()
}

// escape protects the characters that occur in benchmark identifiers.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\textbackslash{}`)
	s = strings.ReplaceAll(s, "_", `\_`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "&", `\&`)
	s = strings.ReplaceAll(s, "#", `\#`)
	return s
}
