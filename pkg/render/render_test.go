package render

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/solvestat/solvestat/pkg/analysis"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestNumFormatting(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2.0, "2.00"},
		{2.345, "2.35"},
		{1234.5678, "1234.57"},
		{0.0, "0.00"},
	}
	for _, tt := range tests {
		if got := Num(tt.v); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestGroupedNumFormatting(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{89.1, "89.10"},
		{1234.5678, "1,234.57"},
		{1000000.13, "1,000,000.13"},
	}
	for _, tt := range tests {
		if got := GroupedNum(tt.v); got != tt.want {
			t.Errorf("GroupedNum(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPlain(t *testing.T) {
	table := Table{
		Columns: []string{"id", "val"},
		Rows: [][]string{
			{"a", "1.00"},
			{"bb", "22.00"},
		},
	}

	want := "id    val\n" +
		"--  -----\n" +
		"a    1.00\n" +
		"bb  22.00\n"
	if got := Plain(table); got != want {
		t.Errorf("Plain:\n%s\nwant:\n%s", got, want)
	}
}

func TestLaTeXEscapesIdentifiers(t *testing.T) {
	table := Table{
		Columns: []string{"model", "time"},
		Rows:    [][]string{{"two_counters", "1.00"}},
	}
	got := LaTeX(table)
	if want := `two\_counters & 1.00 \\`; !strings.Contains(got, want) {
		t.Errorf("LaTeX output missing %q:\n%s", want, got)
	}
}

func TestSummaryTableLaTeXGolden(t *testing.T) {
	summary := analysis.Summary{
		Solvers: []string{"rtl", "ortl"},
		Rows: []analysis.SummaryRow{
			{Dataset: "modelchecking", Totals: map[string]float64{"rtl": 1234.5678, "ortl": 89.1}},
			{Dataset: "synt", Totals: map[string]float64{"rtl": 4.5, "ortl": 1000000.13}},
		},
	}

	out := LaTeX(SummaryTable(summary, true))
	golden(t).Assert(t, "summary_latex", []byte(out))
}

func TestSummaryTableMissingCell(t *testing.T) {
	summary := analysis.Summary{
		Solvers: []string{"rtl", "ortl"},
		Rows: []analysis.SummaryRow{
			{Dataset: "synt", Totals: map[string]float64{"rtl": 4.5}},
		},
	}

	table := SummaryTable(summary, false)
	if got := table.Rows[0][2]; got != Missing {
		t.Errorf("absent solver cell = %q, want %q", got, Missing)
	}
}

func TestDescribeMatrixLaTeXGolden(t *testing.T) {
	groups := []analysis.DatasetStats{
		{
			Dataset: "modelchecking", Priorities: analysis.UnsplitPriorities,
			Models: 2, MeanNodes: 55, MaxNodes: 100, MeanEdges: 120, MaxEdges: 200,
			MeanRatio: 3, MaxRatio: 4,
		},
		{
			Dataset: "synt", Priorities: analysis.UnsplitPriorities,
			Models: 1, MeanNodes: 50, MaxNodes: 50, MeanEdges: 100, MaxEdges: 100,
			MeanRatio: 2, MaxRatio: 2,
		},
	}

	out := LaTeX(DescribeMatrix(groups, false))
	golden(t).Assert(t, "describe_latex", []byte(out))
}

func TestSetsReport(t *testing.T) {
	sets := analysis.ConsistencySets{
		AllSolved:         []analysis.ModelKey{{Model: "m1", Dataset: "synt"}},
		AllDoneOrTimedOut: []analysis.ModelKey{{Model: "m1", Dataset: "synt"}, {Model: "m2", Dataset: "synt"}},
		AllSolvedByDataset: map[string][]analysis.ModelKey{
			"synt": {{Model: "m1", Dataset: "synt"}},
		},
	}

	lines := SetsReport(sets, []string{"synt"})
	want := []string{
		"Models done or timed out by every solver: 2",
		"Models solved by every solver: 1",
		"Models solved by every solver in synt: 1",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
