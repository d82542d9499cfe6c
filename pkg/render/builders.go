package render

import (
	"fmt"

	"github.com/solvestat/solvestat/pkg/analysis"
)

// DescribeLong builds the readable dataset statistics table: one row per
// group, one column per metric.
func DescribeLong(groups []analysis.DatasetStats, byPriorities bool) Table {
	t := Table{Title: "Dataset statistics"}
	t.Columns = []string{"dataset"}
	if byPriorities {
		t.Title = "Dataset statistics by priorities"
		t.Columns = append(t.Columns, "priorities")
	}
	t.Columns = append(t.Columns,
		"models", "mean nodes", "max nodes", "mean edges", "max edges", "mean e/n", "max e/n")

	for _, g := range groups {
		row := []string{g.Dataset}
		if byPriorities {
			row = append(row, Int(int(g.Priorities)))
		}
		row = append(row,
			Int(g.Models),
			Num(g.MeanNodes), Num(g.MaxNodes),
			Num(g.MeanEdges), Num(g.MaxEdges),
			Num(g.MeanRatio), Num(g.MaxRatio))
		t.Rows = append(t.Rows, row)
	}
	return t
}

// DescribeMatrix builds the publication reshape of the dataset
// statistics: groups become columns, one row per metric.
func DescribeMatrix(groups []analysis.DatasetStats, byPriorities bool) Table {
	t := Table{Columns: []string{""}}
	for _, g := range groups {
		label := g.Dataset
		if byPriorities {
			label = fmt.Sprintf("%s (%d)", g.Dataset, g.Priorities)
		}
		t.Columns = append(t.Columns, label)
	}

	metrics := []struct {
		name string
		cell func(analysis.DatasetStats) string
	}{
		{"models", func(g analysis.DatasetStats) string { return Int(g.Models) }},
		{"mean nodes", func(g analysis.DatasetStats) string { return Num(g.MeanNodes) }},
		{"max nodes", func(g analysis.DatasetStats) string { return Num(g.MaxNodes) }},
		{"mean edges", func(g analysis.DatasetStats) string { return Num(g.MeanEdges) }},
		{"max edges", func(g analysis.DatasetStats) string { return Num(g.MaxEdges) }},
		{"mean edges/nodes", func(g analysis.DatasetStats) string { return Num(g.MeanRatio) }},
		{"max edges/nodes", func(g analysis.DatasetStats) string { return Num(g.MaxRatio) }},
	}
	for _, m := range metrics {
		row := []string{m.name}
		for _, g := range groups {
			row = append(row, m.cell(g))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// SummaryTable builds the cross-solver summary: one row per dataset, one
// column per solver, cells are summed mean times. The LaTeX variant uses
// thousands separators.
func SummaryTable(s analysis.Summary, thousands bool) Table {
	t := Table{
		Title:   "Summed mean times over the consistently solved models",
		Columns: append([]string{"dataset"}, s.Solvers...),
	}
	format := Num
	if thousands {
		format = GroupedNum
	}
	for _, row := range s.Rows {
		cells := []string{row.Dataset}
		for _, solver := range s.Solvers {
			if sum, ok := row.Totals[solver]; ok {
				cells = append(cells, format(sum))
			} else {
				cells = append(cells, Missing)
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// SetsReport builds the free-text status lines reporting the cardinality
// of each consistency set.
func SetsReport(sets analysis.ConsistencySets, datasets []string) []string {
	lines := []string{
		fmt.Sprintf("Models done or timed out by every solver: %d", len(sets.AllDoneOrTimedOut)),
		fmt.Sprintf("Models solved by every solver: %d", len(sets.AllSolved)),
	}
	for _, dataset := range datasets {
		lines = append(lines, fmt.Sprintf("Models solved by every solver in %s: %d",
			dataset, len(sets.AllSolvedByDataset[dataset])))
	}
	return lines
}
