package pipe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvestat/solvestat/pkg/analysis"
	"github.com/solvestat/solvestat/pkg/results"
)

const sampleResults = `junk; modelchecking; rtl; 1.0; 1; 0; 0; 0; 0; 0
m1; modelchecking; rtl; 1.0; 1; 100; 200; 2; 0; 5
m1; modelchecking; rtl; 2.0; 1; 100; 200; 2; 0; 5
m1; modelchecking; rtl; 3.0; 1; 100; 200; 2; 0; 5
m1; modelchecking; ortl; 2.0; 1; 100; 200; 2; 0; 5
m1; modelchecking; ortl; 300.0; 0; 100; 200; 2; -1; -1
m2; modelchecking; rtl; 5.0; 1; 10; 40; 3; 0; 5
m2; modelchecking; ortl; 300.0; 0; 10; 40; 3; -1; -1
s1; synt; rtl; 1.5; 1; 50; 100; 2; 0; 5
s1; synt; ortl; 2.5; 1; 50; 100; 2; 0; 5
`

func testPipeline() *Pipeline {
	return New(Config{
		Datasets:    []string{"modelchecking", "equivchecking", "synt"},
		SolverOrder: []string{"tl", "rtl", "ortl", "fpi", "fpj", "npp", "zlk"},
	})
}

func TestLoadBuildsAllTables(t *testing.T) {
	rep, err := testPipeline().LoadFrom(strings.NewReader(sampleResults))
	require.NoError(t, err)

	assert.Equal(t, 10, rep.RawRows)
	assert.Len(t, rep.Cleaned, 9) // the zero-node row is dropped

	// m1-ortl completed once, so its timeout row is preempted; only
	// m2-ortl remains a timeout.
	ids := make([]string, len(rep.Times))
	for i, ts := range rep.Times {
		ids[i] = ts.ID
	}
	assert.ElementsMatch(t, []string{"m1-rtl", "m1-ortl", "m2-rtl", "s1-rtl", "s1-ortl"}, ids)
	require.Len(t, rep.Timeouts, 1)
	assert.Equal(t, "m2-ortl", rep.Timeouts[0].ID)
	assert.Equal(t, 300.0, rep.Timeouts[0].MaxTime)

	// m2 is done-or-timed-out but not solved by every solver.
	assert.Equal(t, []analysis.ModelKey{
		{Model: "m1", Dataset: "modelchecking"},
		{Model: "s1", Dataset: "synt"},
	}, rep.Sets.AllSolved)
	assert.Len(t, rep.Sets.AllDoneOrTimedOut, 3)

	// Summary columns follow the declared order restricted to the data.
	assert.Equal(t, []string{"rtl", "ortl"}, rep.Summary.Solvers)
	require.Len(t, rep.Summary.Rows, 2)
	mc := rep.Summary.Rows[0]
	assert.Equal(t, "modelchecking", mc.Dataset)
	assert.InDelta(t, 2.0, mc.Totals["rtl"], 1e-9) // mean of 1,2,3
	assert.InDelta(t, 2.0, mc.Totals["ortl"], 1e-9)
	synt := rep.Summary.Rows[1]
	assert.InDelta(t, 1.5, synt.Totals["rtl"], 1e-9)
	assert.InDelta(t, 2.5, synt.Totals["ortl"], 1e-9)
}

func TestLoadDescriptiveStatistics(t *testing.T) {
	rep, err := testPipeline().LoadFrom(strings.NewReader(sampleResults))
	require.NoError(t, err)

	require.Len(t, rep.ByDataset, 2)
	mc := rep.ByDataset[0]
	assert.Equal(t, "modelchecking", mc.Dataset)
	assert.Equal(t, 2, mc.Models)
	assert.InDelta(t, 55.0, mc.MeanNodes, 1e-9)
	assert.InDelta(t, 100.0, mc.MaxNodes, 1e-9)
	assert.InDelta(t, 3.0, mc.MeanRatio, 1e-9)
	assert.InDelta(t, 4.0, mc.MaxRatio, 1e-9)

	// Split view: modelchecking has models at 2 and 3 priorities.
	require.Len(t, rep.ByPriorities, 3)
	assert.Equal(t, int64(2), rep.ByPriorities[0].Priorities)
	assert.Equal(t, int64(3), rep.ByPriorities[1].Priorities)
}

func TestRenderReport(t *testing.T) {
	pipeline := testPipeline()
	rep, err := pipeline.LoadFrom(strings.NewReader(sampleResults))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pipeline.Render(&buf, rep, RenderOptions{Plain: true, LaTeX: true}))
	out := buf.String()

	assert.Contains(t, out, "Models done or timed out by every solver: 3")
	assert.Contains(t, out, "Models solved by every solver: 2")
	assert.Contains(t, out, "Models solved by every solver in modelchecking: 1")
	assert.Contains(t, out, "Models solved by every solver in equivchecking: 0")
	assert.Contains(t, out, "Models solved by every solver in synt: 1")

	assert.Contains(t, out, "Dataset statistics")
	assert.Contains(t, out, `\begin{tabular}`)
	assert.Contains(t, out, `\toprule`)
	assert.Contains(t, out, "modelchecking & 2.00 & 2.00")
}

func TestRenderLaTeXOnly(t *testing.T) {
	pipeline := testPipeline()
	rep, err := pipeline.LoadFrom(strings.NewReader(sampleResults))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pipeline.Render(&buf, rep, RenderOptions{LaTeX: true}))
	out := buf.String()

	assert.Contains(t, out, `\begin{tabular}`)
	assert.NotContains(t, out, "Dataset statistics\n")
}

func TestLoadCrossTimeoutsEmptyAllSolved(t *testing.T) {
	// Each solver solves one model and times out on the other, so no
	// model is solved by every solver. The report must still succeed
	// and carry the set cardinalities; only the summary is empty.
	input := `m1; synt; s1; 1.0; 1; 10; 20; 2; 0; 5
m1; synt; s2; 300.0; 0; 10; 20; 2; 0; 0
m2; synt; s2; 2.0; 1; 10; 20; 2; 0; 5
m2; synt; s1; 300.0; 0; 10; 20; 2; 0; 0
`
	pipeline := testPipeline()
	rep, err := pipeline.LoadFrom(strings.NewReader(input))
	require.NoError(t, err)

	assert.Empty(t, rep.Sets.AllSolved)
	assert.Len(t, rep.Sets.AllDoneOrTimedOut, 2)
	assert.Empty(t, rep.Summary.Rows)

	var buf bytes.Buffer
	require.NoError(t, pipeline.Render(&buf, rep, RenderOptions{Plain: true, LaTeX: true}))
	out := buf.String()
	assert.Contains(t, out, "Models done or timed out by every solver: 2")
	assert.Contains(t, out, "Models solved by every solver: 0")
	assert.NotContains(t, out, "Summed mean times")
}

func TestLoadMalformedInput(t *testing.T) {
	_, err := testPipeline().LoadFrom(strings.NewReader("not a results file\n"))
	assert.ErrorIs(t, err, results.ErrMalformedRow)
}

func TestLoadAllRowsCleanedAway(t *testing.T) {
	input := "junk; synt; rtl; 1.0; 1; 0; 0; 0; 0; 0\n"
	_, err := testPipeline().LoadFrom(strings.NewReader(input))
	assert.ErrorIs(t, err, analysis.ErrEmptyResultSet)
}
